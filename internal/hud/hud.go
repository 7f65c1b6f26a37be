// Package hud draws a small text overlay onto exported frames.
package hud

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// padding around the text block, in pixels.
const padding = 4

var (
	backdrop = image.NewUniform(color.RGBA{A: 0xa0})
	ink      = image.NewUniform(color.White)
)

// Bounds returns the rectangle Overlay covers for lines, anchored at the
// top-left corner of the image. It is empty when there is nothing to draw.
func Bounds(lines []string) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	face := basicfont.Face7x13
	var w fixed.Int26_6
	for _, l := range lines {
		w = max(w, font.MeasureString(face, l))
	}
	h := face.Metrics().Height.Ceil() * len(lines)
	return image.Rect(0, 0, w.Ceil()+2*padding, h+2*padding)
}

// Overlay draws lines of white text on a translucent black backdrop in the
// top-left corner of dst.
func Overlay(dst draw.Image, lines []string) {
	r := Bounds(lines).Add(dst.Bounds().Min).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, backdrop, image.Point{}, draw.Over)

	face := basicfont.Face7x13
	m := face.Metrics()
	d := &font.Drawer{Dst: dst, Src: ink, Face: face}
	for i, l := range lines {
		d.Dot = fixed.Point26_6{
			X: fixed.I(r.Min.X + padding),
			Y: fixed.I(r.Min.Y+padding) + m.Ascent + m.Height.Mul(fixed.I(i)),
		}
		d.DrawString(l)
	}
}
