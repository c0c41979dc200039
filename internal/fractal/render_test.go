package fractal

import (
	"bytes"
	"image"
	"testing"
)

func TestRender_SinglePixelOrigin(t *testing.T) {
	pixels := []byte{1, 2, 3}
	Render(pixels, Bounds{Width: 1, Height: 1}, 0, 0, MaxIterations)

	if !bytes.Equal(pixels, []byte{0, 0, 0}) {
		t.Errorf("got %v, want a single black pixel", pixels)
	}
}

func TestRender_MatchesPipeline(t *testing.T) {
	bounds := Bounds{Width: 16, Height: 9}
	ul, lr := complex(-2.5, 1.25), complex(1, -1.25)
	pixels := make([]byte, bounds.BufferLen())
	Render(pixels, bounds, ul, lr, MaxIterations)

	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			point := PixelToPoint(bounds, image.Pt(column, row), ul, lr)
			count, escaped := EscapeTime(point, MaxIterations)
			want := ColorFromEscape(count, escaped, MaxIterations)

			offset := 3 * (row*bounds.Width + column)
			got := [3]uint8{pixels[offset], pixels[offset+1], pixels[offset+2]}
			if got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", column, row, got, want)
			}
		}
	}
}

func TestRender_WritesEveryByte(t *testing.T) {
	// A region far outside the set escapes everywhere, so no pixel stays black.
	bounds := Bounds{Width: 5, Height: 3}
	pixels := make([]byte, bounds.BufferLen())
	Render(pixels, bounds, complex(10, 10), complex(20, 0), MaxIterations)

	for i := 0; i < len(pixels); i += 3 {
		if pixels[i] == 0 && pixels[i+1] == 0 && pixels[i+2] == 0 {
			t.Errorf("pixel %d left black", i/3)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	bounds := Bounds{Width: 40, Height: 30}
	ul, lr := complex(-1.20, 0.35), complex(-1, 0.20)

	first := make([]byte, bounds.BufferLen())
	second := make([]byte, bounds.BufferLen())
	Render(first, bounds, ul, lr, MaxIterations)
	Render(second, bounds, ul, lr, MaxIterations)

	if !bytes.Equal(first, second) {
		t.Error("rendering the same region twice produced different buffers")
	}
}

func TestRender_BufferMismatchPanics(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"too short", 11},
		{"too long", 13},
		{"empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pixels := make([]byte, tt.length)
			defer func() {
				if recover() == nil {
					t.Error("Render did not panic")
				}
				for _, b := range pixels {
					if b != 0 {
						t.Fatal("Render wrote to a mismatched buffer")
					}
				}
			}()
			Render(pixels, Bounds{Width: 2, Height: 2}, complex(-1, 1), complex(1, -1), MaxIterations)
		})
	}
}

func TestRender_EmptyBounds(t *testing.T) {
	var pixels []byte
	Render(pixels, Bounds{}, complex(-1, 1), complex(1, -1), MaxIterations)
}

func BenchmarkRender(b *testing.B) {
	bounds := Bounds{Width: 200, Height: 150}
	pixels := make([]byte, bounds.BufferLen())
	for i := 0; i < b.N; i++ {
		Render(pixels, bounds, complex(-1.20, 0.35), complex(-1, 0.20), MaxIterations)
	}
}
