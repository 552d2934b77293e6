package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog/log"
)

// cpuProfile owns a running CPU profile capture and the file behind it.
type cpuProfile struct {
	path string
	file *os.File
}

// startCPUProfile begins writing a CPU profile to path. The capture runs for
// the whole session; main defers Stop around the game loop.
func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create profile %q: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start CPU profile: %w", err)
	}
	return &cpuProfile{path: path, file: f}, nil
}

// Stop ends the capture and closes the file. Calling it again is a no-op.
func (p *cpuProfile) Stop() {
	if p.file == nil {
		return
	}
	pprof.StopCPUProfile()
	if err := p.file.Close(); err != nil {
		log.Warn().Err(err).Str("path", p.path).Msg("profile close failed")
	} else {
		log.Info().Str("path", p.path).Msg("CPU profile written")
	}
	p.file = nil
}
