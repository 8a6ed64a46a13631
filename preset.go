// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Preset is a named, serializable glass configuration. Hosts typically ship
// a presets file and attach surfaces by preset name instead of hard-coding
// options.
type Preset struct {
	// CornerRadius is the corner rounding in points.
	CornerRadius float64 `yaml:"corner_radius"`

	// Tint is a hex color ("#RRGGBB", "#RRGGBBAA") or an SVG color name
	// ("red"). Loading normalizes names to hex form.
	Tint string `yaml:"tint,omitempty"`

	// Opaque inserts the opaque backing surface.
	Opaque bool `yaml:"opaque"`

	// Variant is an optional material variant name, e.g. "Sidebar".
	Variant string `yaml:"variant,omitempty"`
}

// Presets maps preset names to glass configurations.
type Presets map[string]Preset

// Options converts the preset to attachment Options.
func (p Preset) Options() Options {
	return Options{
		CornerRadius: p.CornerRadius,
		TintColor:    p.Tint,
		Opaque:       p.Opaque,
	}
}

// MaterialVariant resolves the preset's variant name.
// The second return value is false when no variant is set or the name is
// unknown.
func (p Preset) MaterialVariant() (Variant, bool) {
	if p.Variant == "" {
		return 0, false
	}
	return ParseVariant(p.Variant)
}

// LoadPresets loads presets from a YAML file.
//
// Every preset is validated: tints must parse (names are normalized to
// "#RRGGBBAA" hex so Options always carries a hex tint), corner radii must
// be non-negative, and variant names must be known.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glass: reading presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets parses and validates YAML preset data.
func ParsePresets(data []byte) (Presets, error) {
	var presets Presets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("glass: parsing presets: %w", err)
	}

	for name, p := range presets {
		if p.CornerRadius < 0 {
			return nil, fmt.Errorf("glass: preset %q: corner_radius must be >= 0", name)
		}
		if p.Tint != "" {
			c, err := ParseColor(p.Tint)
			if err != nil {
				return nil, fmt.Errorf("glass: preset %q: %w", name, err)
			}
			p.Tint = c.Hex()
			presets[name] = p
		}
		if p.Variant != "" {
			if _, ok := ParseVariant(p.Variant); !ok {
				return nil, fmt.Errorf("glass: preset %q: unknown variant %q", name, p.Variant)
			}
		}
	}

	return presets, nil
}

// Save writes the presets to a YAML file.
func (p Presets) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("glass: serializing presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("glass: writing presets: %w", err)
	}
	return nil
}
