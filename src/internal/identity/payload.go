// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/helper/gc"
	"github.com/xeipuuv/gojsonschema"
)

// payloadSchemaJSON describes the identity payload file accepted by the upsert command.
const payloadSchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["enclaveIdentity", "signature"],
	"properties": {
		"enclaveIdentity": {"type": "object"},
		"signature": {"type": "string", "minLength": 1}
	}
}`

var (
	payloadSchemaOnce sync.Once
	payloadSchema     *gojsonschema.Schema
	payloadSchemaErr  error
)

// Payload is the content of an identity payload file.
type Payload struct {
	EnclaveIdentity json.RawMessage `json:"enclaveIdentity"`
	Signature       string          `json:"signature"`
}

func compiledPayloadSchema() (*gojsonschema.Schema, error) {
	payloadSchemaOnce.Do(func() {
		payloadSchema, payloadSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(payloadSchemaJSON))
	})
	return payloadSchema, payloadSchemaErr
}

// ParsePayload validates data against the payload schema and decodes it.
//
// Parameters:
//   - data: Raw JSON payload
//
// Returns:
//   - *Payload: Decoded payload with the identity document kept verbatim
//   - error: ErrInvalidPayload if the data is not JSON or violates the schema
func ParsePayload(data []byte) (*Payload, error) {
	schema, err := compiledPayloadSchema()
	if err != nil {
		return nil, fmt.Errorf("identity: failed to compile payload schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if !result.Valid() {
		var b strings.Builder
		for _, e := range result.Errors() {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			b.WriteString(e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, b.String())
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &p, nil
}

// LoadPayload reads and validates an identity payload file.
func LoadPayload(path string) (*Payload, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	defer f.Close()

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: error reading %s: %v", ErrInvalidPayload, path, err)
	}

	// json.Unmarshal copies RawMessage contents, so the pooled bytes are safe to release.
	return ParsePayload(buf.Bytes())
}
