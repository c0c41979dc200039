package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes returned by cli.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 1
)

func main() {
	os.Exit(cli(os.Args, os.Stdout, os.Stderr, loadConfig()))
}

// cli runs the command line argv and returns the process exit code.
// Version and help go to stdout; usage errors and logs go to stderr.
func cli(argv []string, stdout, stderr io.Writer, cfg config) int {
	prog := "mandelbrot"
	if len(argv) > 0 {
		prog = filepath.Base(argv[0])
	}

	if len(argv) == 2 {
		switch argv[1] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "mandelbrot %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return exitOK
		case "--help", "-h", "help":
			printHelp(stdout, prog)
			return exitOK
		}
	}

	if len(argv) != 5 {
		usage(stderr, prog)
		return exitUsage
	}

	log.SetOutput(stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if cfg.debug {
		log.Printf("mandelbrot v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := run(cfg, argv[1:]); err != nil {
		log.Printf("%v", err)
		return exitFailure
	}
	return exitOK
}

func printHelp(w io.Writer, prog string) {
	fmt.Fprintln(w, "mandelbrot - render a region of the Mandelbrot set to PNG")
	fmt.Fprintln(w)
	usage(w, prog)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  FILE         Output PNG file")
	fmt.Fprintln(w, "  PIXELS       Image size as WIDTHxHEIGHT")
	fmt.Fprintln(w, "  UPPERLEFT    Upper left corner of the region as RE,IM")
	fmt.Fprintln(w, "  LOWERRIGHT   Lower right corner of the region as RE,IM")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  MANDELBROT_LOG_LEVEL=debug        Log timing and an output summary")
	fmt.Fprintln(w, "  MANDELBROT_PROFILE=cpu|mem|trace  Profile rendering with pkg/profile")
	fmt.Fprintln(w, "  MANDELBROT_PROFILE_PATH=DIR       Directory for profile output")
}
