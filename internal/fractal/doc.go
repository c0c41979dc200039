// Package fractal computes escape-time renderings of the Mandelbrot set.
//
// The package implements the whole mapping pipeline from a pixel grid to
// colored bytes:
//
//	pixel (column,row) -> complex point -> escape time -> RGB triple
//
// Every function is pure apart from Render, which fills a caller-owned
// buffer in place. Nothing in the package keeps state between calls, so
// rendering the same region twice yields byte-identical buffers.
//
// # Coordinate System
//
// Pixels use image.Point with X as the column and Y as the row, origin at
// the top-left. The complex plane is described by its upper-left and
// lower-right corners. Row 0 maps to the upper-left imaginary part (the
// highest one), so the imaginary axis grows upward while rows grow downward.
//
// # Escape Results
//
// An escape result is reported as (count, escaped). When escaped is false the
// point stayed bounded for the whole iteration limit and is treated as a
// member of the set; count is meaningless in that case and is always 0.
//
// # Parsing
//
// ParsePair, ParseComplex and ParseBounds return (value, ok) rather than an
// error. Callers that need a message, like the command line entry point,
// build one from the offending input.
package fractal
