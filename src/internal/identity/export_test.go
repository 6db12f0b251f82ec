// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HasMethod reports whether the contract declares a function with the given name.
func (c *Contract) HasMethod(name string) bool {
	_, ok := c.abi.Methods[name]
	return ok
}

// UnpackUpsert reverses PackUpsert so tests can inspect generated call data.
func (c *Contract) UnpackUpsert(data []byte) (*UpsertCall, error) {
	m, ok := c.abi.Methods[UpsertEnclaveIdentityMethod]
	if !ok {
		return nil, fmt.Errorf("%w: contract has no %s function", ErrDecode, UpsertEnclaveIdentityMethod)
	}
	if len(data) < 4 || !bytes.Equal(data[:4], m.ID) {
		return nil, fmt.Errorf("%w: call data does not start with the %s selector", ErrDecode, m.Sig)
	}

	values, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("%w: expected 3 arguments, got %d", ErrDecode, len(values))
	}

	id, okID := values[0].(*big.Int)
	version, okVersion := values[1].(*big.Int)
	if !okID || !okVersion {
		return nil, fmt.Errorf("%w: id and version must be uint256", ErrDecode)
	}
	obj := *abi.ConvertType(values[2], new(identityTuple)).(*identityTuple)

	return &UpsertCall{
		Function: upsertFunctionName,
		ID:       id,
		Version:  version,
		Object: IdentityObject{
			IdentityStr: obj.IdentityStr,
			Signature:   hexutil.Encode(obj.Signature),
		},
	}, nil
}
