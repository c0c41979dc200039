package main

import (
	"log"

	"github.com/pkg/profile"
)

type stopper interface {
	Stop()
}

type noopStopper struct{}

func (noopStopper) Stop() {}

// startProfile begins the profiling session named by cfg.profile.
// The returned value must be stopped before the process exits.
func startProfile(cfg config) stopper {
	var mode func(*profile.Profile)
	switch cfg.profile {
	case "":
		return noopStopper{}
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		log.Printf("ignoring unknown %s value %q (want cpu, mem or trace)", envProfile, cfg.profile)
		return noopStopper{}
	}

	opts := []func(*profile.Profile){mode, profile.NoShutdownHook}
	if cfg.profilePath != "" {
		opts = append(opts, profile.ProfilePath(cfg.profilePath))
	}
	if !cfg.debug {
		opts = append(opts, profile.Quiet)
	}
	return profile.Start(opts...)
}
