package main

import (
	"os"
	"strings"
)

// Environment variables read at startup.
const (
	envLogLevel    = "MANDELBROT_LOG_LEVEL"
	envProfile     = "MANDELBROT_PROFILE"
	envProfilePath = "MANDELBROT_PROFILE_PATH"
)

// config holds settings that are not part of the positional arguments.
type config struct {
	// debug enables timing and output summaries on stderr.
	debug bool

	// profile is "", "cpu", "mem" or "trace".
	profile string

	// profilePath is the directory profiles are written to; "" means the
	// current directory.
	profilePath string
}

// configFromEnv reads the configuration through lookup, normally os.Getenv.
func configFromEnv(lookup func(string) string) config {
	return config{
		debug:       strings.EqualFold(lookup(envLogLevel), "debug"),
		profile:     strings.ToLower(strings.TrimSpace(lookup(envProfile))),
		profilePath: lookup(envProfilePath),
	}
}

func loadConfig() config {
	return configFromEnv(os.Getenv)
}
