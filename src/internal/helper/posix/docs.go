// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers shared by the command-line tools.
//
// GetExecutableName derives the program name shown in usage strings from
// os.Args[0], so that a renamed or installed binary describes itself by the
// name it was invoked with:
//
//   - Linux/macOS: "/usr/local/bin/x509codec" → "x509codec"
//   - Windows: "C:\bin\identity.exe" → "identity"
//   - Empty os.Args: the caller-supplied fallback
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
