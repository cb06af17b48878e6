package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
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
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ParseHex parses a hex color string.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func ParseHex(hex string) (RGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	alpha := 1.0
	switch len(s) {
	case 4, 8:
		n := len(s) / 4
		a, err := strconv.ParseUint(s[len(s)-n:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("ui: invalid hex color %q: %w", hex, err)
		}
		if n == 1 {
			a *= 17
		}
		alpha = float64(a) / 255
		s = s[:len(s)-n]
	case 3, 6:
	default:
		return RGBA{}, fmt.Errorf("ui: invalid hex color %q", hex)
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGBA{}, fmt.Errorf("ui: invalid hex color %q: %w", hex, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex creates a color from a hex string, see ParseHex.
// Invalid input yields opaque black.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// Hex returns the "#rrggbb" form of c, ignoring alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Valid reports whether every component lies in [0, 1].
func (c RGBA) Valid() bool {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.IsValid() && c.A >= 0 && c.A <= 1
}

// Lerp performs linear interpolation between two colors in sRGB space.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// LerpLinear interpolates between two colors in linear RGB space, which
// avoids the dark band sRGB interpolation produces between saturated hues.
func (c RGBA) LerpLinear(other RGBA, t float64) RGBA {
	r1, g1, b1 := colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()
	r2, g2, b2 := colorful.Color{R: other.R, G: other.G, B: other.B}.LinearRgb()
	out := colorful.LinearRgb(
		r1+(r2-r1)*t,
		g1+(g2-g1)*t,
		b1+(b2-b1)*t,
	)
	return RGBA{R: out.R, G: out.G, B: out.B, A: c.A + (other.A-c.A)*t}
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
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

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Transparent = RGBA2(0, 0, 0, 0)
)

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	c := colorful.Hsl(h, s, l)
	return RGB(c.R, c.G, c.B)
}
