package lumen

// Buffer is a row-major floating-point light accumulation buffer.
// Pixel (x, y) is stored at index x + y*width.
//
// A Buffer serves both as the scratch buffer of the sample in progress and
// as the final buffer holding the running average of completed samples.
// Buffers are owned by the caller; lumen never retains them between calls.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// NewBuffer creates a zero-filled buffer with the given dimensions.
// width and height must not be negative; NewBuffer panics otherwise.
// Renderer.NewBuffer allocates from a validated Config.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Len returns the number of pixels in the buffer.
func (b *Buffer) Len() int {
	return len(b.pix)
}

// Pix returns the underlying pixel slice.
func (b *Buffer) Pix() []Color {
	return b.pix
}

// At returns the accumulated color of pixel (x, y), or Black when the
// coordinates are out of bounds.
func (b *Buffer) At(x, y int) Color {
	if !b.inBounds(x, y) {
		return Black
	}
	return b.pix[x+y*b.width]
}

// Plot adds a*c to pixel (x, y).
// Coordinates outside [0, width) x [0, height) are silently clipped: the
// rasterizer routinely produces neighbours of endpoints that fall outside
// the image.
func (b *Buffer) Plot(x, y int, a float32, c Color) {
	if !b.inBounds(x, y) {
		return
	}
	p := &b.pix[x+y*b.width]
	*p = p.Add(c.Mul(a))
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
