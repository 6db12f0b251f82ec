// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/internal/helper/gc"
)

const (
	// GetEnclaveIdentityMethod is the contract view function returning a stored identity record.
	GetEnclaveIdentityMethod = "getEnclaveIdentity"

	// UpsertEnclaveIdentityMethod is the contract function storing an identity record.
	UpsertEnclaveIdentityMethod = "upsertEnclaveIdentity"
)

//go:embed abi/EnclaveIdentityDao.json
var enclaveIdentityDaoABI []byte

// defaultContract is built once at package initialization and never mutated.
var defaultContract = mustContract(enclaveIdentityDaoABI)

// identityTuple mirrors the EnclaveIdentityJsonObj struct of the contract.
// Field order matters: ABI tuples are copied positionally.
type identityTuple struct {
	IdentityStr string
	Signature   []byte
}

// Contract is an immutable lookup table over the EnclaveIdentityDao [ABI].
//
// [ABI]: https://docs.soliditylang.org/en/latest/abi-spec.html
type Contract struct{ abi abi.ABI }

// NewContract parses an ABI definition, given either as a bare JSON array or
// as a compiler artifact object carrying it under "abi".
//
// Overloaded functions are disambiguated by go-ethereum in declaration order,
// so the plain name always refers to the first declared function.
//
// Parameters:
//   - r: Reader over the ABI JSON
//
// Returns:
//   - *Contract: Parsed contract definition
//   - error: ErrABI if the definition cannot be parsed
func NewContract(r io.Reader) (*Contract, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrABI, err)
	}

	definition := bytes.TrimSpace(buf.Bytes())
	if len(definition) > 0 && definition[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(definition, &artifact); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrABI, err)
		}
		if len(artifact.ABI) == 0 {
			return nil, fmt.Errorf("%w: artifact has no \"abi\" field", ErrABI)
		}
		definition = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrABI, err)
	}
	return &Contract{abi: parsed}, nil
}

func mustContract(definition []byte) *Contract {
	c, err := NewContract(bytes.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultContract returns the process-wide contract built from the embedded EnclaveIdentityDao ABI.
func DefaultContract() *Contract { return defaultContract }

// identityOutput returns the getEnclaveIdentity definition after checking that
// it returns a single (string, bytes) tuple.
func (c *Contract) identityOutput() (abi.Method, error) {
	m, ok := c.abi.Methods[GetEnclaveIdentityMethod]
	if !ok {
		return abi.Method{}, fmt.Errorf("%w: contract has no %s function", ErrDecode, GetEnclaveIdentityMethod)
	}

	if len(m.Outputs) != 1 {
		return abi.Method{}, fmt.Errorf("%w: %s must return one tuple, got %d outputs", ErrDecode, m.Sig, len(m.Outputs))
	}

	t := m.Outputs[0].Type
	if t.T != abi.TupleTy || len(t.TupleElems) != 2 ||
		t.TupleElems[0].T != abi.StringTy || t.TupleElems[1].T != abi.BytesTy {
		return abi.Method{}, fmt.Errorf("%w: %s must return (string,bytes), got %s", ErrDecode, m.Sig, t.String())
	}

	return m, nil
}

// DecodeIdentityResult decodes getEnclaveIdentity return data into an identity record.
//
// Parameters:
//   - data: Raw ABI-encoded return data
//
// Returns:
//   - *EnclaveIdentity: Parsed identity document and signature hex without "0x"
//   - error: ErrDecode on ABI mismatch, ErrParse if the identity string is not JSON
func (c *Contract) DecodeIdentityResult(data []byte) (*EnclaveIdentity, error) {
	m, err := c.identityOutput()
	if err != nil {
		return nil, err
	}

	values, err := m.Outputs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%w: expected 1 value, got %d", ErrDecode, len(values))
	}

	obj := *abi.ConvertType(values[0], new(identityTuple)).(*identityTuple)

	doc, err := compactJSON([]byte(obj.IdentityStr))
	if err != nil {
		return nil, err
	}

	return &EnclaveIdentity{
		EnclaveIdentity: doc,
		// hexutil.Encode always yields a lowercase "0x" prefix; drop it.
		Signature: hexutil.Encode(obj.Signature)[len(hexPrefix):],
	}, nil
}

// PackUpsert ABI-encodes an upsert tuple into raw upsertEnclaveIdentity call data,
// including the 4-byte function selector.
func (c *Contract) PackUpsert(call *UpsertCall) ([]byte, error) {
	sig, err := hexutil.Decode(call.Object.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %v", ErrDecode, err)
	}

	data, err := c.abi.Pack(UpsertEnclaveIdentityMethod, call.ID, call.Version, identityTuple{
		IdentityStr: call.Object.IdentityStr,
		Signature:   sig,
	})
	if err != nil {
		return nil, fmt.Errorf("identity: failed to pack %s: %w", UpsertEnclaveIdentityMethod, err)
	}

	return data, nil
}

// DecodeIdentityResult decodes getEnclaveIdentity return data using the default contract.
func DecodeIdentityResult(data []byte) (*EnclaveIdentity, error) {
	return defaultContract.DecodeIdentityResult(data)
}

// PackUpsert encodes call data for an upsert tuple using the default contract.
func PackUpsert(call *UpsertCall) ([]byte, error) { return defaultContract.PackUpsert(call) }

// compactJSON validates raw as JSON and returns its compact form with key order preserved.
func compactJSON(raw []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return json.RawMessage(buf.Bytes()), nil
}
