// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the Cobra command-line interfaces of the identity and
// x509codec tools.
//
// Each tool is a single root command whose instruction is selected with a
// flag (--upsert/--parse, --decode/--encode) and whose operands are
// positional arguments. Results are written to the command's standard output
// and nothing else is; diagnostics go through a [logger.Logger]. A failure is
// logged once through the logger selected by --log-format and configuration,
// then returned to the caller, which decides the exit status.
//
// Both commands load [config.Config] before running, honoring --config and
// --log-format.
package cli
