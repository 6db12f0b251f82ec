// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

const upsertFunctionName = UpsertEnclaveIdentityMethod + "()"

// IdentityObject is the EnclaveIdentityJsonObj argument of an upsert call.
type IdentityObject struct {
	IdentityStr string `json:"identityStr"`
	Signature   string `json:"signature"`
}

// UpsertCall is the ordered (functionName, id, version, object) tuple
// handed to an external broadcaster.
type UpsertCall struct {
	Function string
	ID       *big.Int
	Version  *big.Int
	Object   IdentityObject
}

// Tuple returns the call as an ordered slice. Integers are rendered as
// decimal strings so that uint256 values survive JSON consumers.
func (u *UpsertCall) Tuple() []any {
	return []any{u.Function, u.ID.String(), u.Version.String(), u.Object}
}

// MarshalJSON encodes the call as a JSON array in tuple order.
func (u *UpsertCall) MarshalJSON() ([]byte, error) { return encodeJSON(u.Tuple()) }

// BuildUpsertCall assembles the upsertEnclaveIdentity call tuple.
//
// The identity document is serialized compactly with its original key order,
// since the signature covers those exact bytes.
//
// Parameters:
//   - id: Identity id (e.g. QE, QVE or TD_QE)
//   - version: Identity version
//   - enclaveIdentity: JSON identity document
//   - signature: Hex signature, with or without "0x"
//
// Returns:
//   - *UpsertCall: Ready-to-encode call tuple
//   - error: ErrInvalidNumber for a nil id/version, ErrParse for invalid JSON
func BuildUpsertCall(id, version *big.Int, enclaveIdentity json.RawMessage, signature string) (*UpsertCall, error) {
	if id == nil || version == nil {
		return nil, fmt.Errorf("%w: id and version are required", ErrInvalidNumber)
	}

	doc, err := compactJSON(enclaveIdentity)
	if err != nil {
		return nil, err
	}

	return &UpsertCall{
		Function: upsertFunctionName,
		ID:       new(big.Int).Set(id),
		Version:  new(big.Int).Set(version),
		Object: IdentityObject{
			IdentityStr: string(doc),
			Signature:   NormalizeSignaturePrefix(signature),
		},
	}, nil
}

// ParseUint256 parses a decimal or "0x" hexadecimal unsigned integer of at most 256 bits.
func ParseUint256(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}

	n, ok := math.ParseBig256(s)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}
