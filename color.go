package lumen

import "image/color"

// Color is a linear light contribution with red, green and blue channels.
// Channels are non-negative and unbounded; they are only clamped when a
// color is quantized with Pack.
type Color struct {
	R, G, B float32
}

// RGB creates a color from its components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the componentwise sum of c and d.
func (c Color) Add(d Color) Color {
	return Color{R: c.R + d.R, G: c.G + d.G, B: c.B + d.B}
}

// Mul returns c scaled by s.
func (c Color) Mul(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Lerp returns c*(1-t) + d*t.
func (c Color) Lerp(d Color, t float32) Color {
	return c.Mul(1 - t).Add(d.Mul(t))
}

// Pack quantizes c to a 24-bit 0x00RRGGBB value.
// Each channel is scaled by 255, clamped to [0, 255] and truncated.
func (c Color) Pack() uint32 {
	r := uint32(clamp255(c.R * 255))
	g := uint32(clamp255(c.G * 255))
	b := uint32(clamp255(c.B * 255))
	return r<<16 | g<<8 | b
}

// Unpack expands a packed 0x00RRGGBB value to an opaque color.RGBA.
func Unpack(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: 0xff,
	}
}

// clamp255 clamps x to [0, 255]. NaN maps to 0.
func clamp255(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
)
