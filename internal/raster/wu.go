// Package raster converts line segments into per-pixel light coverage.
// This file implements a modified Xiaolin Wu line algorithm.
//
// Unlike the textbook algorithm the coverage of every segment is scaled by
// an angle-dependent factor (see Compensation), so the energy deposited in
// each column is proportional to that factor rather than to 1. The interior
// loop also stops one column short of the second endpoint's column.
package raster

import "github.com/chewxy/math32"

// Plotter receives coverage samples produced by DrawLine.
// Coordinates may fall outside the target image; implementations clip.
type Plotter interface {
	Plot(x, y int, coverage float32)
}

// maxCoord bounds the coordinates the rasterizer iterates over. Larger
// values cannot be converted to pixel columns meaningfully and would make
// the interior loop run for an unbounded number of columns.
const maxCoord = 1 << 24

// Compensation returns the brightness multiplier for a segment with
// direction (dx, dy): 1 + 0.5*(1 - cos(2*atan2(dy, dx))).
// Horizontal segments get 1, diagonals 1.5 and vertical segments 2.
func Compensation(dx, dy float32) float32 {
	angle := math32.Atan2(dy, dx)
	return 1 + 0.5*(1-math32.Cos(2*angle))
}

// ipart truncates toward zero.
func ipart(x float32) int {
	return int(x)
}

func fpart(x float32) float32 {
	return x - math32.Floor(x)
}

func rfpart(x float32) float32 {
	return 1 - fpart(x)
}

// transposer plots in the rasterizer's working space and swaps the axes
// back for steep segments.
type transposer struct {
	p     Plotter
	steep bool
}

// pair plots the two vertically adjacent pixels straddling y in column x.
// The two coverages always sum to weight.
func (t transposer) pair(x int, y, weight float32) {
	iy := ipart(y)
	lo := rfpart(y) * weight
	hi := fpart(y) * weight
	if t.steep {
		t.p.Plot(iy, x, lo)
		t.p.Plot(iy+1, x, hi)
		return
	}
	t.p.Plot(x, iy, lo)
	t.p.Plot(x, iy+1, hi)
}

// DrawLine rasterizes the segment (x0, y0)-(x1, y1) into p.
//
// Calls are emitted in a fixed order: the first endpoint pair, the second
// endpoint pair, then one pair per interior column from left to right.
// Zero-length segments and segments with a NaN or infinite coordinate
// produce no calls. Segments reaching beyond ±maxCoord are clipped to that
// square first; their direction, and so their brightness, is unchanged.
func DrawLine(p Plotter, x0, y0, x1, y1 float32) {
	if !finite(x0, y0, x1, y1) || (x0 == x1 && y0 == y1) {
		return
	}

	// The multiplier uses the untransposed direction.
	m := Compensation(x1-x0, y1-y0)

	if !clipToSafeRange(&x0, &y0, &x1, &y1) {
		return
	}
	if x0 == x1 && y0 == y1 {
		return
	}

	steep := math32.Abs(y1-y0) > math32.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	gradient := (y1 - y0) / (x1 - x0)
	t := transposer{p: p, steep: steep}

	// First endpoint.
	xend := math32.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	t.pair(xpxl1, yend, xgap*m)

	intery := yend + gradient

	// Second endpoint.
	xend = math32.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	t.pair(xpxl2, yend, xgap*m)

	for x := xpxl1 + 1; x < xpxl2-1; x++ {
		t.pair(x, intery, m)
		intery += gradient
	}
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clipToSafeRange clips the segment to the square [-maxCoord, maxCoord]²
// along its own direction. Returns false if nothing of it lies inside.
func clipToSafeRange(x0, y0, x1, y1 *float32) bool {
	const bound = maxCoord

	// Quick reject if both endpoints are outside on the same side.
	if (*x0 < -bound && *x1 < -bound) || (*x0 > bound && *x1 > bound) {
		return false
	}
	if (*y0 < -bound && *y1 < -bound) || (*y0 > bound && *y1 > bound) {
		return false
	}
	if inBound(*x0) && inBound(*y0) && inBound(*x1) && inBound(*y1) {
		return true
	}

	// Liang-Barsky in float64: the deltas may overflow float32.
	ox, oy := float64(*x0), float64(*y0)
	dx, dy := float64(*x1)-ox, float64(*y1)-oy
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, ox + bound},
		{dx, bound - ox},
		{-dy, oy + bound},
		{dy, bound - oy},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
	}

	*x0 = clampToBound(ox + t0*dx)
	*y0 = clampToBound(oy + t0*dy)
	*x1 = clampToBound(ox + t1*dx)
	*y1 = clampToBound(oy + t1*dy)
	return true
}

func inBound(v float32) bool {
	return v >= -maxCoord && v <= maxCoord
}

// clampToBound absorbs rounding error at the clip edges.
func clampToBound(v float64) float32 {
	return float32(min(max(v, -maxCoord), maxCoord))
}
