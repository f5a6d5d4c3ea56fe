package layout

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA color with components in [0, 1].
// The zero Color is fully transparent.
type Color struct {
	R, G, B, A float64
}

// RGBA returns an RGBA color.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func Hex(s string) (Color, error) {
	if len(s) == 9 {
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return Color{}, fmt.Errorf("layout: color %q: %w", s, err)
		}
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("layout: color %q: bad alpha: %w", s, err)
		}
		return fromColorful(c, float64(a)/255), nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("layout: color %q: %w", s, err)
	}
	return fromColorful(c, 1), nil
}

// MustHex is like Hex but panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func fromColorful(c colorful.Color, a float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Colorful returns the color without alpha as a go-colorful value.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Blend mixes c toward d in CIE L*a*b* space; t=0 is c and t=1 is d.
// Alpha is interpolated linearly.
func (c Color) Blend(d Color, t float64) Color {
	return fromColorful(c.Colorful().BlendLab(d.Colorful(), t), c.A+(d.A-c.A)*t)
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	h := c.Colorful().Clamped().Hex()
	if c.A >= 1 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(max(0, min(c.A, 1))*255+0.5))
}

// Visible reports whether the color has any opacity.
func (c Color) Visible() bool {
	return c.A > 0
}
