// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import "errors"

var (
	// ErrDecode indicates that contract data or hex input does not match the expected layout.
	ErrDecode = errors.New("identity: decode error")

	// ErrParse indicates that an identity document is not valid JSON.
	ErrParse = errors.New("identity: invalid identity JSON")

	// ErrInvalidNumber indicates that an id or version is not an unsigned 256-bit integer.
	ErrInvalidNumber = errors.New("identity: invalid number")

	// ErrInvalidPayload indicates that an identity payload file is unreadable or fails schema validation.
	ErrInvalidPayload = errors.New("identity: invalid identity payload")

	// ErrABI indicates that a contract ABI definition could not be parsed.
	ErrABI = errors.New("identity: invalid contract ABI")
)
