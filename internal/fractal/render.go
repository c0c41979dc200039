package fractal

import (
	"fmt"
	"image"
)

// MaxIterations is the iteration limit used by the command line renderer.
const MaxIterations = 255

// Render fills pixels with a bounds-sized RGB8 image of the plane rectangle
// between upperLeft and lowerRight.
//
// pixels is row-major, three bytes per pixel, and must be exactly
// bounds.BufferLen() long; anything else is a programming error and panics
// before a single byte is written.
func Render(pixels []byte, bounds Bounds, upperLeft, lowerRight complex128, maxIter int) {
	if len(pixels) != bounds.BufferLen() {
		panic(fmt.Sprintf("fractal: buffer holds %d bytes, bounds %s need %d",
			len(pixels), bounds, bounds.BufferLen()))
	}

	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			point := PixelToPoint(bounds, image.Pt(column, row), upperLeft, lowerRight)
			count, escaped := EscapeTime(point, maxIter)
			color := ColorFromEscape(count, escaped, maxIter)

			offset := 3 * (row*bounds.Width + column)
			copy(pixels[offset:offset+3], color[:])
		}
	}
}
