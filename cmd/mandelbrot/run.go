package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ironsheep/mandelbrot/internal/fractal"
	"github.com/ironsheep/mandelbrot/internal/imaging"
)

// request is a fully parsed command line.
type request struct {
	output     string
	bounds     fractal.Bounds
	upperLeft  complex128
	lowerRight complex128
}

// usage prints the usage line and an example invocation.
func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s FILE PIXELS UPPERLEFT LOWERRIGHT\n", prog)
	fmt.Fprintf(w, "Example: %s mandel.png 1000x750 -1.20,0.35 -1,0.20\n", prog)
}

// parseRequest parses the four positional arguments
// FILE PIXELS UPPERLEFT LOWERRIGHT.
func parseRequest(args []string) (*request, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("expected 4 arguments, got %d", len(args))
	}

	bounds, ok := fractal.ParseBounds(args[1])
	if !ok {
		return nil, fmt.Errorf("error parsing image dimensions %q", args[1])
	}
	upperLeft, ok := fractal.ParseComplex(args[2])
	if !ok {
		return nil, fmt.Errorf("error parsing upper left corner point %q", args[2])
	}
	lowerRight, ok := fractal.ParseComplex(args[3])
	if !ok {
		return nil, fmt.Errorf("error parsing lower right corner point %q", args[3])
	}

	return &request{
		output:     args[0],
		bounds:     bounds,
		upperLeft:  upperLeft,
		lowerRight: lowerRight,
	}, nil
}

// run parses args, renders the requested region and writes the PNG.
// Nothing is written when parsing fails.
func run(cfg config, args []string) error {
	req, err := parseRequest(args)
	if err != nil {
		return err
	}

	prof := startProfile(cfg)
	defer prof.Stop()

	start := time.Now()
	pixels := make([]byte, req.bounds.BufferLen())
	fractal.Render(pixels, req.bounds, req.upperLeft, req.lowerRight, fractal.MaxIterations)
	if cfg.debug {
		log.Printf("rendered %s of %v..%v in %s", req.bounds, req.upperLeft, req.lowerRight, time.Since(start))
	}

	if err := imaging.WritePNG(req.output, pixels, req.bounds.Width, req.bounds.Height); err != nil {
		return fmt.Errorf("error writing PNG file: %w", err)
	}

	if cfg.debug {
		summarize(req.output)
	}
	return nil
}

// summarize logs what ended up on disk. Failures are logged, not returned:
// the image has already been written successfully.
func summarize(path string) {
	info, err := imaging.Inspect(path)
	if err != nil {
		log.Printf("could not inspect %s: %v", path, err)
		return
	}
	log.Printf("wrote %s: %dx%d %s, %d bytes", path, info.Width, info.Height, info.Format, info.FileSizeBytes)

	img, err := imaging.Load(path)
	if err != nil {
		log.Printf("could not reload %s: %v", path, err)
		return
	}
	for _, c := range imaging.DominantColors(img, 5).Colors {
		log.Printf("  %s %5.1f%% (hue %d)", c.Hex, c.Percentage, c.HSL.H)
	}
}
