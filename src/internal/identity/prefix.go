// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const hexPrefix = "0x"

// NormalizeSignaturePrefix returns challenge lowercased and guaranteed to start with "0x".
//
// Only an exact lowercase "0x" counts as an existing prefix; anything else gets
// one prepended before case folding. The remainder is not validated as hex.
//
// Parameters:
//   - challenge: Hex string with or without a leading "0x"
//
// Returns:
//   - string: Lowercase, "0x"-prefixed string
func NormalizeSignaturePrefix(challenge string) string {
	if !strings.HasPrefix(challenge, hexPrefix) {
		challenge = hexPrefix + challenge
	}
	return strings.ToLower(challenge)
}

// DecodeHexData decodes contract return data supplied as hex text.
// The "0x" prefix is optional and either letter case is accepted.
func DecodeHexData(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, hexPrefix) && !strings.HasPrefix(s, "0X") {
		s = hexPrefix + s
	} else {
		s = hexPrefix + s[2:]
	}

	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}
