package lumen

// Progress is the tracer state read by the display compositor.
type Progress struct {
	// Samples is the number of completed samples merged into the final buffer.
	Samples int
	// Rays is the number of rays traced so far in the sample in progress,
	// in [0, RaysPerSample].
	Rays int
}

// DisplayOpacity returns the weight given to the scratch buffer when
// previewing a partially traced sample.
//
// Before the first sample completes the scratch buffer is shown alone
// (opacity 1). Afterwards the scratch buffer fades in with the fraction of
// its rays already traced, scaled by the 1/(Samples+1) weight Consolidate
// will give it once complete. raysPerSample must be positive.
func DisplayOpacity(p Progress, raysPerSample int) float32 {
	if p.Samples == 0 {
		return 1
	}
	full := 1 / (float32(p.Samples) + 1)
	return float32(p.Rays) / float32(raysPerSample) * full
}

// Composite writes the quantized blend final*(1-opacity) + scratch*opacity
// into frame. Neither final nor scratch is modified.
//
// All three buffers must have the same length. When they differ only the
// common prefix is written and the rest of frame keeps its old content.
func Composite(frame *Frame, final, scratch *Buffer, opacity float32) {
	n := min(len(frame.pix), len(final.pix), len(scratch.pix))
	if opacity == 1 {
		// Final carries no weight; don't let non-finite values leak through.
		for i := 0; i < n; i++ {
			frame.pix[i] = scratch.pix[i].Pack()
		}
		return
	}
	for i := 0; i < n; i++ {
		frame.pix[i] = final.pix[i].Lerp(scratch.pix[i], opacity).Pack()
	}
}
