package imaging

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"
)

// OutputPerm is the mode WritePNG creates files with, before the umask.
const OutputPerm fs.FileMode = 0o666

// ErrInvalidBuffer is returned when a pixel buffer does not describe a
// non-empty width x height RGB8 image.
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// NewRGBImage copies a row-major RGB8 buffer into an opaque NRGBA image.
//
// Parameters:
//   - pixels: width*height*3 bytes, three per pixel, rows top to bottom.
//   - width, height: image dimensions; both must be positive.
//
// Returns ErrInvalidBuffer (wrapped) if the dimensions are not positive or
// the buffer length does not match them.
func NewRGBImage(pixels []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidBuffer, width, height)
	}
	if len(pixels) != width*height*3 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d, want %d",
			ErrInvalidBuffer, len(pixels), width, height, width*height*3)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pixels); i, j = i+3, j+4 {
		img.Pix[j] = pixels[i]
		img.Pix[j+1] = pixels[i+1]
		img.Pix[j+2] = pixels[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

// WritePNG encodes a row-major RGB8 buffer as a PNG file at path.
//
// The file is written to a temporary sibling first and renamed into place,
// so on any error the file at path is left untouched and no temporary file
// remains. The result gets OutputPerm filtered through the process umask,
// the same mode os.Create would give it.
func WritePNG(path string, pixels []byte, width, height int) error {
	img, err := NewRGBImage(pixels, width, height)
	if err != nil {
		return err
	}

	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(OutputPerm))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer pf.Cleanup()

	if err := imaging.Encode(pf, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
