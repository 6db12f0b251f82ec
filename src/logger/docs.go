// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the diagnostic logging used by the command-line tools.
//
// It defines the Logger interface and two implementations: CLILogger for
// human-readable lines and StructuredLogger for JSON records produced by
// [zap]. Both write to standard error by default, leaving standard output
// for command results, and both are safe for concurrent use. Failures are
// reported through Logger.Errorf, which the structured logger emits at error
// level.
//
// [zap]: https://pkg.go.dev/go.uber.org/zap
package logger
