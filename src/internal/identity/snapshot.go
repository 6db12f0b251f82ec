// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// snapshotTimeLayout is ISO-8601 in UTC with millisecond precision.
	snapshotTimeLayout = "2006-01-02T15:04:05.000Z"
	snapshotSuffix     = "-identity.json"
)

// SnapshotName returns the file name used for a snapshot taken at now.
func SnapshotName(now time.Time) string {
	return now.UTC().Format(snapshotTimeLayout) + snapshotSuffix
}

// SaveSnapshot writes data to "<timestamp>-identity.json" inside dir.
//
// Parameters:
//   - dir: Target directory; empty means the current directory
//   - now: Snapshot time
//   - data: JSON bytes exactly as printed
//
// Returns:
//   - string: Path of the written file
//   - error: Error if the file cannot be written
func SaveSnapshot(dir string, now time.Time, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, SnapshotName(now))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("identity: failed to write snapshot: %w", err)
	}
	return path, nil
}
