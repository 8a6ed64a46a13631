// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrUnsupportedPlatform is returned when glass effects are not
	// available at all on this platform.
	ErrUnsupportedPlatform = errors.New("glass: effects are not supported on this platform")

	// ErrInvalidHandle is returned when a nil window handle is provided.
	ErrInvalidHandle = errors.New("glass: invalid window handle")

	// ErrCreationFailed is returned when the native toolkit fails to
	// construct a surface.
	ErrCreationFailed = errors.New("glass: failed to create effect surface")
)

// InvalidViewIDError indicates an operation on a view id that is not in the
// registry: either never issued or already removed.
type InvalidViewIDError struct {
	ID ViewID
}

func (e *InvalidViewIDError) Error() string {
	return fmt.Sprintf("glass: view ID %d not found", e.ID)
}

// InvalidColorError indicates a malformed color string.
type InvalidColorError struct {
	Input string
}

func (e *InvalidColorError) Error() string {
	return "glass: invalid color format: " + e.Input
}

// RuntimeError indicates a failure reported by the native toolkit at call
// time: a thread-affinity violation, or a property name no setter form
// recognizes.
type RuntimeError struct {
	Detail string
}

func (e *RuntimeError) Error() string {
	return "glass: runtime error: " + e.Detail
}
