// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509codec converts PEM certificate and CRL bundles to hex-encoded DER, the
// form expected by on-chain PCCS contracts, and converts DER hex back to base64.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/pccs-calldata-tools/cmd/x509codec@latest
//
// # Usage
//
//	x509codec (-d|--decode) <pemFilePath> [--table]
//	x509codec (-e|--encode) <derHex...>
//
// # Examples
//
// Print every block of a PCK certificate chain as DER hex:
//
//	x509codec -d ./pck-chain.pem
//
// Summarize the bundle as a markdown table:
//
//	x509codec -d ./pck-chain.pem --table
//
// Convert two DER hex strings back to base64:
//
//	x509codec -e deadbeef cafebabe
//
// Blocks are recognized by their "-----END CERTIFICATE-----" or
// "-----END X509 CRL-----" footer line. Text after the last footer is
// ignored with a warning.
//
// # Exit Status
//
// 0 on success, 1 on any error, 130 when interrupted. The error is written
// once to standard error, as a JSON record at level "error" when the log
// format is json.
package main
