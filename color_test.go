package lumen

import (
	"image/color"
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func nearColor(a, b Color) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B)
}

func TestColorArithmetic(t *testing.T) {
	c := RGB(0.25, 0.5, 1)
	d := RGB(1, 2, 3)

	if got, want := c.Add(d), RGB(1.25, 2.5, 4); got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
	if got, want := c.Mul(2), RGB(0.5, 1, 2); got != want {
		t.Errorf("Mul = %+v, want %+v", got, want)
	}
	if got, want := c.Lerp(d, 0.5), RGB(0.625, 1.25, 2); !nearColor(got, want) {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint32
	}{
		{"black", Black, 0x000000},
		{"white", White, 0xffffff},
		{"red", Red, 0xff0000},
		{"green", Green, 0x00ff00},
		{"blue", Blue, 0x0000ff},
		{"clamp_low", RGB(-1, -1, -1), 0x000000},
		{"clamp_high", RGB(2, 2, 2), 0xffffff},
		{"truncates", RGB(0.999, 0.5, 0.0039), 0xfe7f00},
		{"mixed_clamp", RGB(2, -1, 0.5), 0xff007f},
		{"nan", RGB(float32(math.NaN()), 0, 0), 0x000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Pack(); got != tt.want {
				t.Errorf("Pack(%+v) = %#06x, want %#06x", tt.c, got, tt.want)
			}
		})
	}
}

func TestPackHasNoAlpha(t *testing.T) {
	if got := RGB(100, 100, 100).Pack(); got>>24 != 0 {
		t.Errorf("Pack set bits above 24: %#x", got)
	}
}

func TestUnpack(t *testing.T) {
	got := Unpack(RGB(1, 0.5, 0).Pack())
	want := color.RGBA{R: 255, G: 127, B: 0, A: 255}
	if got != want {
		t.Errorf("Unpack = %v, want %v", got, want)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(0.5, -1)

	if got, want := p.Add(q), Pt(1.5, 1); got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
	if got, want := p.Sub(q), Pt(0.5, 3); got != want {
		t.Errorf("Sub = %+v, want %+v", got, want)
	}
	if got, want := p.Mul(3), Pt(3, 6); got != want {
		t.Errorf("Mul = %+v, want %+v", got, want)
	}
}
