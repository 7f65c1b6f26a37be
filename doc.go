// Package lumen rasterizes anti-aliased light segments into floating-point
// accumulation buffers and blends progressive samples into a displayable
// frame.
//
// # Overview
//
// A progressive tracer produces light segments in batches. lumen draws
// them additively into a scratch Buffer, merges each completed sample into
// a final Buffer holding the running mean, and composites a packed RGB
// Frame that previews the converging image before the sample in progress
// is done.
//
// # Quick Start
//
//	r, err := lumen.NewRenderer(lumen.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	scratch, final, frame := r.NewBuffer(), r.NewBuffer(), r.NewFrame()
//
//	r.Draw(scratch, []lumen.DrawInstruction{
//	    lumen.Line(lumen.Pt(10, 10), lumen.Pt(200, 80), lumen.RGB(1, 0.8, 0.6)),
//	})
//	r.Display(lumen.Progress{Samples: 0, Rays: 1}, final, scratch, frame)
//
//	// Once RaysPerSample rays have been drawn:
//	r.Consolidate(final, scratch, samples)
//
// # Buffers
//
// All buffers are owned by the caller and threaded through every call.
// Scratch, final and frame must have equal length; Renderer.NewBuffer and
// Renderer.NewFrame guarantee that by construction. Nothing in lumen is
// safe for concurrent use on the same buffers.
//
// # Architecture
//
//   - Public API: Color, Point, Buffer, Frame, Renderer, Config
//   - Internal: raster (modified Wu line coverage), hud (text overlay)
package lumen
