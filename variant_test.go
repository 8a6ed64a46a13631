// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

import "testing"

// TestVariantCodesStable pins every variant to its wire code. These codes
// are consumed by the native surface and must never change.
func TestVariantCodesStable(t *testing.T) {
	codes := map[Variant]int64{
		VariantRegular:            0,
		VariantClear:              1,
		VariantDock:               2,
		VariantAppIcons:           3,
		VariantWidgets:            4,
		VariantText:               5,
		VariantAVPlayer:           6,
		VariantFaceTime:           7,
		VariantControlCenter:      8,
		VariantNotificationCenter: 9,
		VariantMonogram:           10,
		VariantBubbles:            11,
		VariantIdentity:           12,
		VariantFocusBorder:        13,
		VariantFocusPlatter:       14,
		VariantKeyboard:           15,
		VariantSidebar:            16,
		VariantAbuttedSidebar:     17,
		VariantInspector:          18,
		VariantControl:            19,
		VariantLoupe:              20,
		VariantSlider:             21,
		VariantCamera:             22,
		VariantCartouchePopover:   23,
	}

	if len(codes) != len(variantNames) {
		t.Fatalf("%d variants pinned, want %d", len(codes), len(variantNames))
	}
	for v, want := range codes {
		if int64(v) != want {
			t.Errorf("%s = %d, want %d", v, int64(v), want)
		}
	}
}

func TestVariantString(t *testing.T) {
	if got := VariantRegular.String(); got != "Regular" {
		t.Errorf("String() = %q, want Regular", got)
	}
	if got := VariantCartouchePopover.String(); got != "CartouchePopover" {
		t.Errorf("String() = %q, want CartouchePopover", got)
	}
	if got := Variant(99).String(); got != "Variant(99)" {
		t.Errorf("String() = %q, want Variant(99)", got)
	}
	if got := Variant(-1).String(); got != "Variant(-1)" {
		t.Errorf("String() = %q, want Variant(-1)", got)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name   string
		want   Variant
		wantOK bool
	}{
		{"Sidebar", VariantSidebar, true},
		{"sidebar", VariantSidebar, true},
		{"CARTOUCHEPOPOVER", VariantCartouchePopover, true},
		{"Regular", VariantRegular, true},
		{"", 0, false},
		{"Opaque", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseVariant(tt.name)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseVariant(%q) = (%v, %v), want (%v, %v)",
				tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

// Round-trip every named variant through String and ParseVariant.
func TestVariantRoundtrip(t *testing.T) {
	for i := range variantNames {
		v := Variant(i)
		got, ok := ParseVariant(v.String())
		if !ok || got != v {
			t.Errorf("ParseVariant(%q) = (%v, %v), want (%v, true)", v.String(), got, ok, v)
		}
	}
}
