// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"bytes"
	"encoding/json"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/helper/gc"
)

// EnclaveIdentity is a decoded identity record in its saved JSON form.
// Signature carries no "0x" prefix.
type EnclaveIdentity struct {
	EnclaveIdentity json.RawMessage `json:"enclaveIdentity"`
	Signature       string          `json:"signature"`
}

// MarshalJSON encodes the record compactly without HTML escaping.
func (e *EnclaveIdentity) MarshalJSON() ([]byte, error) {
	type plain EnclaveIdentity
	return encodeJSON((*plain)(e))
}

// encodeJSON marshals v in compact form, leaving <, > and & unescaped.
func encodeJSON(v any) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Copy out of the pooled buffer before it is reused.
	return bytes.Clone(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
