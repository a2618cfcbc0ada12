package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB with straight (non-premultiplied) float alpha in [0, 1]
type RGBA struct {
	RGB
	A float64
}

// FromTriple converts a parameter/config byte triple
func FromTriple(t [3]uint8) RGB {
	return RGB{R: t[0], G: t[1], B: t[2]}
}

// Triple is the inverse of FromTriple
func (c RGB) Triple() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// WithAlpha attaches alpha, clamped to [0, 1]
func (c RGB) WithAlpha(a float64) RGBA {
	if !(a > 0) {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return RGBA{RGB: c, A: a}
}

// Hex formats as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the image/color straight-alpha type
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: clamp(c.A * 255.0)}
}

// ParseHex accepts #rgb or #rrggbb, leading '#' optional
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("color %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if !(v > 0.0) {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend mixes src over c by alpha
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if !(alpha > 0.0) {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
