package fractal

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFromEscape turns an escape result into an RGB triple.
//
// Points that never escaped are black. Escaped points get a fully saturated,
// full-value hue of 360*count/maxIter degrees, so fast escapes start at red
// and slower ones rotate through yellow, green, cyan, blue and magenta.
//
// The conversion runs in float64. At maxIter = MaxIterations every channel
// lands on an exact integer before rounding, so the palette does not depend
// on precision; other limits can differ by one from a float32 conversion
// where a channel sits on a .5 boundary.
func ColorFromEscape(count int, escaped bool, maxIter int) [3]uint8 {
	if !escaped {
		return [3]uint8{}
	}

	hue := 360 * float64(count) / float64(maxIter)
	r, g, b := colorful.Hsv(hue, 1, 1).Clamped().RGB255()
	return [3]uint8{r, g, b}
}
