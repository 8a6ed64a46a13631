// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

import (
	"strconv"
	"strings"
)

// Variant selects a named visual sub-style of the effect surface.
//
// The integer codes are part of the native contract (they are passed
// straight through to the toolkit) and must never be renumbered.
type Variant int64

const (
	// VariantRegular is the regular glass effect.
	VariantRegular Variant = iota

	// VariantClear is clear glass.
	VariantClear

	// VariantDock is dock-style glass.
	VariantDock

	// VariantAppIcons is app-icons glass.
	VariantAppIcons

	// VariantWidgets is widgets glass.
	VariantWidgets

	// VariantText is text glass.
	VariantText

	// VariantAVPlayer is AVPlayer glass.
	VariantAVPlayer

	// VariantFaceTime is FaceTime glass.
	VariantFaceTime

	// VariantControlCenter is Control Center glass.
	VariantControlCenter

	// VariantNotificationCenter is Notification Center glass.
	VariantNotificationCenter

	// VariantMonogram is monogram glass.
	VariantMonogram

	// VariantBubbles is bubbles glass.
	VariantBubbles

	// VariantIdentity is identity glass.
	VariantIdentity

	// VariantFocusBorder is focus-border glass.
	VariantFocusBorder

	// VariantFocusPlatter is focus-platter glass.
	VariantFocusPlatter

	// VariantKeyboard is keyboard glass.
	VariantKeyboard

	// VariantSidebar is sidebar glass.
	VariantSidebar

	// VariantAbuttedSidebar is abutted-sidebar glass.
	VariantAbuttedSidebar

	// VariantInspector is inspector glass.
	VariantInspector

	// VariantControl is control glass.
	VariantControl

	// VariantLoupe is loupe glass.
	VariantLoupe

	// VariantSlider is slider glass.
	VariantSlider

	// VariantCamera is camera glass.
	VariantCamera

	// VariantCartouchePopover is cartouche-popover glass.
	VariantCartouchePopover
)

var variantNames = [...]string{
	"Regular",
	"Clear",
	"Dock",
	"AppIcons",
	"Widgets",
	"Text",
	"AVPlayer",
	"FaceTime",
	"ControlCenter",
	"NotificationCenter",
	"Monogram",
	"Bubbles",
	"Identity",
	"FocusBorder",
	"FocusPlatter",
	"Keyboard",
	"Sidebar",
	"AbuttedSidebar",
	"Inspector",
	"Control",
	"Loupe",
	"Slider",
	"Camera",
	"CartouchePopover",
}

// String returns the variant's name, or "Variant(n)" for unknown codes.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "Variant(" + strconv.FormatInt(int64(v), 10) + ")"
	}
	return variantNames[v]
}

// ParseVariant resolves a variant by name, case-insensitively.
// The second return value reports whether the name was recognized.
func ParseVariant(name string) (Variant, bool) {
	for i, n := range variantNames {
		if strings.EqualFold(n, name) {
			return Variant(i), true
		}
	}
	return 0, false
}
