package lumen

import "github.com/gogpu/lumen/internal/raster"

// DrawInstruction is one light segment to rasterize.
type DrawInstruction struct {
	P1, P2 Point
	Color  Color
}

// Line is a convenience function to create a DrawInstruction.
func Line(p1, p2 Point, c Color) DrawInstruction {
	return DrawInstruction{P1: p1, P2: p2, Color: c}
}

// bufferPlotter feeds rasterizer coverage into a Buffer with a fixed color.
type bufferPlotter struct {
	buf   *Buffer
	color Color
}

func (p bufferPlotter) Plot(x, y int, coverage float32) {
	p.buf.Plot(x, y, coverage, p.color)
}

// DrawLine adds the anti-aliased light contribution of the segment p1-p2
// to buf.
//
// Coverage follows a modified Wu algorithm: every plotted column receives
// a pair of vertically adjacent contributions summing to m*c, where
// m = 1 + 0.5*(1 - cos(2*atan2(dy, dx))) brightens steep and diagonal
// segments. Endpoint columns are additionally weighted by their horizontal
// overlap. The interior run stops one column short of the second endpoint.
// Zero-length segments draw nothing.
func DrawLine(buf *Buffer, p1, p2 Point, c Color) {
	raster.DrawLine(bufferPlotter{buf: buf, color: c}, p1.X, p1.Y, p2.X, p2.Y)
}

// Draw rasterizes every instruction into buf in order. Contributions
// accumulate additively; later instructions never overwrite earlier ones.
func Draw(buf *Buffer, instructions []DrawInstruction) {
	for _, in := range instructions {
		DrawLine(buf, in.P1, in.P2, in.Color)
	}
}
