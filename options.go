// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

// Options configures a glass surface at attachment time.
// Options are read once by AddSurface; mutating them afterwards has no
// effect on an attached surface.
type Options struct {
	// CornerRadius is the corner rounding in points. 0 means no rounding.
	CornerRadius float64

	// TintColor is an optional tint in "#RRGGBB" or "#RRGGBBAA" form.
	// Empty means no tint.
	TintColor string

	// Opaque inserts an opaque backing surface behind the effect surface,
	// filled with the toolkit's default window-background color.
	Opaque bool
}

// DefaultOptions returns Options with default values: no rounding, no tint,
// no opaque backing.
func DefaultOptions() Options {
	return Options{}
}
