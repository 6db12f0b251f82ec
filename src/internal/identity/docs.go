// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package identity builds and decodes contract call data for the on-chain
// EnclaveIdentityDao registry. An enclave identity record is an opaque JSON
// document plus a hex signature; this package turns a record into the
// upsertEnclaveIdentity call tuple (and its [ABI] encoding), and turns
// getEnclaveIdentity return data back into the record.
//
// The contract interface is parsed once from an embedded ABI definition and
// shared for the lifetime of the process. Nothing in this package talks to a
// blockchain node; call data is broadcast by an external process.
//
// [ABI]: https://docs.soliditylang.org/en/latest/abi-spec.html
package identity
