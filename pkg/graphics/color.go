package graphics

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha8 returns the alpha byte.
func (c Color) Alpha8() uint8 {
	return uint8(c >> 24)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// ColorFrom converts any image/color value into a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses "#RRGGBB", "#AARRGGBB" or a bare hex string.
// Six-digit forms are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		cf, err := colorful.Hex("#" + hex)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := cf.RGB255()
		return RGB(r, g, b), nil
	case 8:
		var alpha uint8
		if _, err := fmt.Sscanf(hex[:2], "%02x", &alpha); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		rgb, err := ParseColor("#" + hex[2:])
		if err != nil {
			return 0, err
		}
		return rgb.WithAlpha8(alpha), nil
	default:
		return 0, fmt.Errorf("parse color %q: want #RRGGBB or #AARRGGBB", s)
	}
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorDarkGray    = Color(0xFF444444)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
