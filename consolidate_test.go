package lumen

import "testing"

func fill(b *Buffer, c Color) {
	for i := range b.Pix() {
		b.Pix()[i] = c
	}
}

func TestConsolidate_TwoStage(t *testing.T) {
	final := NewBuffer(3, 2)
	scratch := NewBuffer(3, 2)

	fill(scratch, White)
	Consolidate(final, scratch, 0)
	for i := range final.Pix() {
		if got := final.Pix()[i]; !nearColor(got, White) {
			t.Fatalf("after first sample, final[%d] = %+v, want White", i, got)
		}
		if got := scratch.Pix()[i]; got != Black {
			t.Fatalf("after first sample, scratch[%d] = %+v, want Black", i, got)
		}
	}

	Consolidate(final, scratch, 1)
	for i := range final.Pix() {
		if got, want := final.Pix()[i], RGB(0.5, 0.5, 0.5); !nearColor(got, want) {
			t.Fatalf("after second sample, final[%d] = %+v, want %+v", i, got, want)
		}
	}
}

func TestConsolidate_RunningMean(t *testing.T) {
	samples := []Color{
		RGB(1, 0, 0.5),
		RGB(0, 2, 0.5),
		RGB(3, 1, 0.5),
		RGB(0.5, 0.25, 4),
		RGB(0, 0, 0),
	}

	final := NewBuffer(2, 2)
	scratch := NewBuffer(2, 2)
	var sum Color
	for n, s := range samples {
		fill(scratch, s)
		Consolidate(final, scratch, n)
		sum = sum.Add(s)

		want := sum.Mul(1 / float32(n+1))
		for i := range final.Pix() {
			if got := final.Pix()[i]; !nearColor(got, want) {
				t.Fatalf("after %d samples, final[%d] = %+v, want mean %+v", n+1, i, got, want)
			}
			if got := scratch.Pix()[i]; got != Black {
				t.Fatalf("after %d samples, scratch[%d] = %+v, want Black", n+1, i, got)
			}
		}
	}
}

func TestConsolidate_MismatchedLengths(t *testing.T) {
	final := NewBuffer(4, 1)
	scratch := NewBuffer(2, 1)
	fill(scratch, White)

	Consolidate(final, scratch, 0)

	// Only the common prefix is merged.
	for x := 0; x < 2; x++ {
		if got := final.At(x, 0); !nearColor(got, White) {
			t.Errorf("final(%d) = %+v, want White", x, got)
		}
	}
	for x := 2; x < 4; x++ {
		if got := final.At(x, 0); got != Black {
			t.Errorf("final(%d) = %+v, want untouched", x, got)
		}
	}
}
