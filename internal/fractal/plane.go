package fractal

import (
	"fmt"
	"image"
)

// Bounds is the size of a pixel grid.
type Bounds struct {
	Width  int
	Height int
}

// BufferLen returns the number of bytes an RGB8 buffer for b holds.
func (b Bounds) BufferLen() int {
	return b.Width * b.Height * 3
}

// Rect returns b as an image rectangle anchored at the origin.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// PixelToPoint maps a pixel of a bounds-sized grid onto the plane rectangle
// spanned by upperLeft and lowerRight.
//
// The mapping is affine: column 0 lands on real(upperLeft) and column
// bounds.Width on real(lowerRight); row 0 lands on imag(upperLeft) and row
// bounds.Height on imag(lowerRight). Zero bounds divide by zero and give
// NaN or Inf components.
func PixelToPoint(bounds Bounds, pixel image.Point, upperLeft, lowerRight complex128) complex128 {
	width := real(lowerRight) - real(upperLeft)
	height := imag(upperLeft) - imag(lowerRight)

	return complex(
		real(upperLeft)+float64(pixel.X)*width/float64(bounds.Width),
		imag(upperLeft)-float64(pixel.Y)*height/float64(bounds.Height),
	)
}
