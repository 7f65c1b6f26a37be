package lumen

import (
	"math"
	"testing"
)

func TestDisplayOpacity(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		rays int
		want float32
	}{
		{"no_samples", Progress{Samples: 0, Rays: 0}, 100, 1},
		{"no_samples_partial", Progress{Samples: 0, Rays: 40}, 100, 1},
		{"one_sample_half", Progress{Samples: 1, Rays: 50}, 100, 0.25},
		{"one_sample_done", Progress{Samples: 1, Rays: 100}, 100, 0.5},
		{"three_samples_start", Progress{Samples: 3, Rays: 0}, 100, 0},
		{"three_samples_quarter", Progress{Samples: 3, Rays: 25}, 100, 0.0625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayOpacity(tt.p, tt.rays); !near(got, tt.want) {
				t.Errorf("DisplayOpacity(%+v, %d) = %v, want %v", tt.p, tt.rays, got, tt.want)
			}
		})
	}
}

func TestComposite_NoSamplesShowsScratch(t *testing.T) {
	final := NewBuffer(3, 3)
	scratch := NewBuffer(3, 3)
	frame := NewFrame(3, 3)

	inf := float32(math.Inf(1))
	fill(final, RGB(inf, 0.3, 0.9))
	scratch.Plot(1, 1, 1, RGB(0.2, 0.4, 0.6))

	Composite(frame, final, scratch, DisplayOpacity(Progress{}, 10))

	for i, p := range frame.Pix() {
		if want := scratch.Pix()[i].Pack(); p != want {
			t.Errorf("frame[%d] = %#06x, want scratch %#06x", i, p, want)
		}
	}
}

func TestComposite_Blends(t *testing.T) {
	final := NewBuffer(2, 1)
	scratch := NewBuffer(2, 1)
	frame := NewFrame(2, 1)
	fill(final, RGB(1, 0, 0))
	fill(scratch, RGB(0, 0, 1))

	Composite(frame, final, scratch, 0.25)

	want := RGB(0.75, 0, 0.25).Pack()
	for i, p := range frame.Pix() {
		if p != want {
			t.Errorf("frame[%d] = %#06x, want %#06x", i, p, want)
		}
	}
}

func TestComposite_DoesNotMutateInputs(t *testing.T) {
	final := NewBuffer(2, 2)
	scratch := NewBuffer(2, 2)
	fill(final, RGB(0.5, 0.5, 0.5))
	fill(scratch, RGB(1, 1, 1))

	r, err := NewRenderer(Config{Width: 2, Height: 2, RaysPerSample: 8})
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}
	r.Display(Progress{Samples: 2, Rays: 4}, final, scratch, r.NewFrame())

	for i := range final.Pix() {
		if final.Pix()[i] != RGB(0.5, 0.5, 0.5) || scratch.Pix()[i] != White {
			t.Fatalf("Display mutated pixel %d: final %+v scratch %+v", i, final.Pix()[i], scratch.Pix()[i])
		}
	}
}

func TestComposite_MismatchedLengths(t *testing.T) {
	final := NewBuffer(4, 1)
	scratch := NewBuffer(4, 1)
	frame := NewFrame(2, 1)
	fill(scratch, White)

	// Must not panic; writes only the common prefix.
	Composite(frame, final, scratch, 1)
	for i, p := range frame.Pix() {
		if p != 0xffffff {
			t.Errorf("frame[%d] = %#06x, want 0xffffff", i, p)
		}
	}
}
