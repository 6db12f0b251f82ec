// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemhex converts between [PEM] bundles of [X.509] certificates or CRLs
// and the raw DER hex strings consumed by on-chain certificate registries.
//
// A bundle is split line by line on the certificate and CRL footers, each
// block's base64 body is decoded to DER and rendered as lowercase hex, and DER
// hex can be turned back into a bare base64 payload. No signature or chain
// validation is performed.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package pemhex
