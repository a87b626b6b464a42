package core

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// Common colors
var (
	White = Color{255, 255, 255, 255}
	Black = Color{0, 0, 0, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA converts the color to the image/color representation
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color as #rrggbbaa
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
// Six digit colors are fully opaque.
func ParseHexColor(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	c := Color{R: raw[0], G: raw[1], B: raw[2], A: 255}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}
