package fractal

import (
	"image"
	"math"
	"testing"
)

func TestPixelToPoint(t *testing.T) {
	got := PixelToPoint(Bounds{Width: 100, Height: 200}, image.Pt(25, 175),
		complex(-1, 1), complex(1, -1))
	want := complex(-0.5, -0.75)
	if got != want {
		t.Errorf("PixelToPoint = %v, want %v", got, want)
	}
}

func TestPixelToPoint_Corners(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 200}
	regions := []struct {
		name       string
		upperLeft  complex128
		lowerRight complex128
	}{
		{"unit square", complex(-1, 1), complex(1, -1)},
		{"full set", complex(-2.5, 1.25), complex(1, -1.25)},
		{"seahorse valley", complex(-1.20, 0.35), complex(-1, 0.20)},
	}

	for _, r := range regions {
		t.Run(r.name, func(t *testing.T) {
			if got := PixelToPoint(bounds, image.Pt(0, 0), r.upperLeft, r.lowerRight); got != r.upperLeft {
				t.Errorf("top-left pixel = %v, want %v", got, r.upperLeft)
			}
			got := PixelToPoint(bounds, image.Pt(bounds.Width, bounds.Height), r.upperLeft, r.lowerRight)
			if !closeTo(got, r.lowerRight) {
				t.Errorf("bottom-right corner = %v, want %v", got, r.lowerRight)
			}
		})
	}
}

func TestPixelToPoint_RowsDescend(t *testing.T) {
	bounds := Bounds{Width: 4, Height: 4}
	ul, lr := complex(-2, 2), complex(2, -2)

	prev := PixelToPoint(bounds, image.Pt(0, 0), ul, lr)
	for row := 1; row < bounds.Height; row++ {
		p := PixelToPoint(bounds, image.Pt(0, row), ul, lr)
		if imag(p) >= imag(prev) {
			t.Errorf("row %d imaginary part %v not below row %d (%v)", row, imag(p), row-1, imag(prev))
		}
		if real(p) != real(prev) {
			t.Errorf("row %d real part changed: %v vs %v", row, real(p), real(prev))
		}
		prev = p
	}
}

func TestPixelToPoint_ZeroBounds(t *testing.T) {
	p := PixelToPoint(Bounds{}, image.Pt(0, 0), complex(-1, 1), complex(1, -1))
	if !math.IsNaN(real(p)) || !math.IsNaN(imag(p)) {
		t.Errorf("zero bounds should give NaN components, got %v", p)
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{Width: 1000, Height: 750}
	if got := b.BufferLen(); got != 1000*750*3 {
		t.Errorf("BufferLen = %d, want %d", got, 1000*750*3)
	}
	if got := b.Rect(); got != image.Rect(0, 0, 1000, 750) {
		t.Errorf("Rect = %v", got)
	}
	if got := b.String(); got != "1000x750" {
		t.Errorf("String = %q, want %q", got, "1000x750")
	}
}

func closeTo(a, b complex128) bool {
	const eps = 1e-12
	return math.Abs(real(a)-real(b)) < eps && math.Abs(imag(a)-imag(b)) < eps
}
