// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads settings shared by the identity and x509codec commands.
//
// Settings are resolved in three layers, each overriding the previous one:
//
//  1. Built-in defaults
//  2. A JSON or YAML file, chosen with the --config flag or the
//     PCCS_TOOLS_CONFIG_FILE environment variable (.json, .yaml, .yml)
//  3. Environment variables (PCCS_TOOLS_LOG_FORMAT, PCCS_TOOLS_OUTPUT_DIR,
//     PCCS_TOOLS_ABI_FILE)
//
// A .env file in the working directory, if present, is read into the process
// environment before the layers are applied. Variables already set in the
// environment are not overwritten by it.
//
// Example YAML configuration:
//
//	log:
//	  format: json
//	identity:
//	  abiFile: ./abi/EnclaveIdentityDao.json
//	  outputDir: ./snapshots
package config
