// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// GetExecutableName returns the base name of os.Args[0] without a ".exe" suffix.
//
// Parameters:
//   - fallback: Name returned when os.Args[0] is unavailable
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}

	name := filepath.Base(os.Args[0])

	// filepath.Base only knows the host separator; a Windows path seen on
	// Unix (or the reverse) still needs its last component extracted.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
