// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// identity builds and decodes call data for the on-chain EnclaveIdentityDao
// registry of an automated PCCS.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/pccs-calldata-tools/cmd/identity@latest
//
// # Usage
//
//	identity (-u|--upsert) <id> <version> <path> [--calldata]
//	identity (-p|--parse) <data> [-s|--save] [--out-dir DIR]
//
// # Flags
//
//	-u, --upsert      Print the upsertEnclaveIdentity call tuple for the identity file at <path>
//	    --calldata    With --upsert, print ABI-encoded call data instead of the tuple
//	-p, --parse       Decode getEnclaveIdentity return data given as hex
//	-s, --save        With --parse, also write <timestamp>-identity.json
//	    --out-dir     Directory for saved snapshots (default: current directory)
//	    --config      Configuration file (JSON or YAML)
//	    --log-format  Diagnostic log format: text or json
//
// The identity file is JSON of the form:
//
//	{"enclaveIdentity": {...}, "signature": "<hex>"}
//
// # Environment Variables
//
//	PCCS_TOOLS_CONFIG_FILE  Configuration file (alternative to --config)
//	PCCS_TOOLS_LOG_FORMAT   Diagnostic log format
//	PCCS_TOOLS_OUTPUT_DIR   Snapshot directory
//	PCCS_TOOLS_ABI_FILE     EnclaveIdentityDao ABI replacing the embedded one
//
// # Exit Status
//
// 0 on success, 1 on any error (usage, decoding or I/O), 130 when
// interrupted. The error is written once to standard error, as a JSON
// record at level "error" when the log format is json.
package main
