package lumen

// Consolidate merges a completed sample into the running average.
//
// samples is the number of samples already merged into final (0 on the
// first call). Each final pixel becomes final*(1-o) + scratch*o with
// o = 1/(samples+1), so after k calls final holds the mean of the k
// scratch buffers. Every scratch pixel is then reset to Black.
//
// final and scratch must have the same length. When they differ only the
// common prefix is processed.
func Consolidate(final, scratch *Buffer, samples int) {
	opacity := 1 / (float32(samples) + 1)
	n := min(len(final.pix), len(scratch.pix))
	for i := 0; i < n; i++ {
		final.pix[i] = final.pix[i].Lerp(scratch.pix[i], opacity)
		scratch.pix[i] = Black
	}
}
