// Package imaging handles the image side of rendering: turning a flat RGB8
// pixel buffer into a PNG file and looking at the result afterwards.
//
// # Pixel Buffers
//
// Renderers in this module produce a row-major []byte with three bytes
// (R, G, B) per pixel and no padding. NewRGBImage wraps such a buffer as an
// opaque *image.NRGBA so it can be handed to any image encoder.
//
// # Writing
//
// WritePNG never leaves a partially written file at the destination. The
// image is encoded into a temporary file in the same directory, which is
// renamed over the destination only after the encoder and Close both
// succeed.
//
// # Inspection
//
// Inspect decodes a written file and reports its dimensions, format and
// size. DominantColors summarises the palette of an image, which is handy
// when checking how much of a rendering fell inside the set.
//
// # Error Handling
//
// Functions return errors for:
//   - Non-positive dimensions or a buffer whose length does not match them
//   - File creation, encoding and rename failures
//   - Decoding failures during inspection
//
// Errors wrap their underlying cause, so errors.Is and errors.As work on
// them.
package imaging
