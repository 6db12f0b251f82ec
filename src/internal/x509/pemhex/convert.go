// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemhex

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrDecode indicates malformed base64 in a PEM body or malformed DER hex.
var ErrDecode = errors.New("pemhex: decode error")

// body returns the base64 payload of a block: every line except the first
// and the last, concatenated without separator.
func body(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) < 3 {
		return ""
	}
	return strings.Join(lines[1:len(lines)-1], "")
}

// PemToDerHex returns the DER content of a single PEM block as lowercase hex.
//
// The first line (header) and last line (footer) are dropped positionally;
// they are not checked.
//
// Parameters:
//   - pemBlock: One block as produced by SplitBundle
//
// Returns:
//   - string: Lowercase DER hex
//   - error: ErrDecode if the body is not valid base64
func PemToDerHex(pemBlock string) (string, error) {
	der, err := base64.StdEncoding.DecodeString(body(pemBlock))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return hex.EncodeToString(der), nil
}

// DerHexToBase64 re-encodes DER hex as standard padded base64 without PEM armor.
func DerHexToBase64(derHex string) (string, error) {
	der, err := hex.DecodeString(derHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}
