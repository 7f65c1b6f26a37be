package lumen

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ErrUnknownFormat is returned when a frame is encoded to an unsupported
// image format.
var ErrUnknownFormat = errors.New("lumen: unknown image format")

// Frame is a row-major buffer of packed 0x00RRGGBB pixels ready to be
// blitted to a display surface. It holds no accumulated state: Display
// overwrites it wholesale.
type Frame struct {
	width  int
	height int
	pix    []uint32
}

// NewFrame creates a black frame with the given dimensions.
// width and height must not be negative; NewFrame panics otherwise.
// Renderer.NewFrame allocates from a validated Config.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pix)
}

// Pix returns the packed pixel slice.
func (f *Frame) Pix() []uint32 {
	return f.pix
}

// At returns the packed pixel (x, y), or 0 when out of bounds.
func (f *Frame) At(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pix[x+y*f.width]
}

// Image converts the frame to an opaque image.RGBA.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, p := range f.pix {
		c := Unpack(p)
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = c.A
	}
	return img
}

// Scale resamples the frame to width x height for presentation.
// Integer upscales use nearest-neighbour sampling so pixels stay crisp;
// everything else uses Catmull-Rom.
func (f *Frame) Scale(width, height int) *image.RGBA {
	src := f.Image()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	var interp xdraw.Interpolator = xdraw.CatmullRom
	if f.width > 0 && f.height > 0 &&
		width%f.width == 0 && height%f.height == 0 &&
		width/f.width == height/f.height {
		interp = xdraw.NearestNeighbor
	}
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Encode writes img in the named format ("png" or "bmp").
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes img to path, choosing the format from the file extension.
func Save(path string, img image.Image) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != "png" && format != "bmp" {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
