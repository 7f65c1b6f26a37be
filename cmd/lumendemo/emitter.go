package main

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/gogpu/lumen"
)

// bounceLoss is the fraction of light kept after hitting the border.
const bounceLoss = 0.5

// palette of emitted light colors.
var palette = []lumen.Color{
	lumen.RGB(1, 0.85, 0.6),
	lumen.RGB(1, 0.55, 0.25),
	lumen.RGB(0.6, 0.75, 1),
}

// emitter stands in for a tracer: a small disc light in the middle of the
// image whose rays bounce once off the image border.
type emitter struct {
	rng       *rand.Rand
	w, h      float32
	center    lumen.Point
	radius    float32
	intensity float32
}

func newEmitter(cfg lumen.Config, seed uint64, exposure float32) *emitter {
	w, h := float32(cfg.Width), float32(cfg.Height)
	// Light falls off as 1/(2*pi*r); normalize so pixels at w/8 from the
	// light receive roughly exposure once a sample completes.
	ref := w / 8
	return &emitter{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		w:         w,
		h:         h,
		center:    lumen.Pt(w/2, h/2),
		radius:    min(w, h) / 64,
		intensity: exposure * 2 * math32.Pi * ref / float32(cfg.RaysPerSample),
	}
}

// trace emits n rays and returns their segments.
func (e *emitter) trace(n int) []lumen.DrawInstruction {
	out := make([]lumen.DrawInstruction, 0, 2*n)
	for range n {
		o := e.sampleOrigin()
		sin, cos := math32.Sincos(e.rng.Float32() * 2 * math32.Pi)
		d := lumen.Pt(cos, sin)
		c := palette[e.rng.IntN(len(palette))].Mul(e.intensity)

		hit, vertical := e.border(o, d)
		out = append(out, lumen.Line(o, hit, c))

		if vertical {
			d.X = -d.X
		} else {
			d.Y = -d.Y
		}
		end, _ := e.border(hit, d)
		out = append(out, lumen.Line(hit, end, c.Mul(bounceLoss)))
	}
	return out
}

func (e *emitter) sampleOrigin() lumen.Point {
	r := e.radius * math32.Sqrt(e.rng.Float32())
	sin, cos := math32.Sincos(e.rng.Float32() * 2 * math32.Pi)
	return e.center.Add(lumen.Pt(cos, sin).Mul(r))
}

// border returns where the ray o+t*d leaves the image rectangle and
// whether it leaves through a vertical (left or right) edge.
func (e *emitter) border(o, d lumen.Point) (lumen.Point, bool) {
	tx := math32.Inf(1)
	switch {
	case d.X > 0:
		tx = (e.w - o.X) / d.X
	case d.X < 0:
		tx = -o.X / d.X
	}
	ty := math32.Inf(1)
	switch {
	case d.Y > 0:
		ty = (e.h - o.Y) / d.Y
	case d.Y < 0:
		ty = -o.Y / d.Y
	}
	if tx < ty {
		return o.Add(d.Mul(tx)), true
	}
	return o.Add(d.Mul(ty)), false
}
