package glass

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Hex formats the color as "#RRGGBBAA".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X",
		uint8(math.Round(clamp255(c.R*255))),
		uint8(math.Round(clamp255(c.G*255))),
		uint8(math.Round(clamp255(c.B*255))),
		uint8(math.Round(clamp255(c.A*255))))
}

// ParseHex parses a hex color string into an RGBA quad.
//
// After trimming whitespace and an optional leading '#', the string must be
// exactly 6 ("RRGGBB") or 8 ("RRGGBBAA") hexadecimal digits. The 6-digit
// form is opaque (alpha 1.0). Any other input fails with *InvalidColorError.
func ParseHex(s string) (RGBA, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "#")

	if len(cleaned) != 6 && len(cleaned) != 8 {
		return RGBA{}, &InvalidColorError{Input: s}
	}

	v, err := strconv.ParseUint(cleaned, 16, 32)
	if err != nil {
		return RGBA{}, &InvalidColorError{Input: s}
	}

	if len(cleaned) == 6 {
		return RGBA{
			R: float64(v>>16&0xFF) / 255,
			G: float64(v>>8&0xFF) / 255,
			B: float64(v&0xFF) / 255,
			A: 1.0,
		}, nil
	}
	return RGBA{
		R: float64(v>>24&0xFF) / 255,
		G: float64(v>>16&0xFF) / 255,
		B: float64(v>>8&0xFF) / 255,
		A: float64(v&0xFF) / 255,
	}, nil
}

// ParseColor parses either a hex color string (see ParseHex) or an SVG 1.1
// color name such as "red" or "cornflowerblue". Names are matched
// case-insensitively and are always opaque.
func ParseColor(s string) (RGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return FromColor(c), nil
	}
	return ParseHex(s)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
