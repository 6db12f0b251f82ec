// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import "errors"

var (
	// ErrUsage indicates a missing or invalid command-line operand.
	ErrUsage = errors.New("usage error")

	// ErrUnknownInstruction indicates that no instruction flag, or more than one, was given.
	ErrUnknownInstruction = errors.New("unknown or missing instruction")
)
