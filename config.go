package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Simulation, rendering, and audio constants used throughout the application.
// These values define the chamber resolution, timing, and audio behavior for
// the pressure wave simulation.
const (
	defaultCellCount    = 128
	defaultCourantSq    = 0.5
	defaultImpulse      = 0.1
	defaultStepsPerTick = 1
	minChamberCells     = 3
	minStepsPerTick     = 1
	maxStepsPerTick     = 1000
	stepsPerTickDelta   = 1

	screenHeight = 96
	barHeight    = 30
	barTop       = (screenHeight - barHeight) / 2
	windowScale  = 4
	defaultTPS   = 60.0

	audioSampleRate     = 48000
	audioChannels       = 2
	audioBytesPerSample = 2
	audioFrameBytes     = audioChannels * audioBytesPerSample
	pcm16MaxValue       = 32767
	wavBitDepth         = 16
	oscillatorVolume    = 0.5
	defaultFrequencyHz  = 440.0
	frequencyStepHz     = 10.0
)

// Config collects the tunable simulation and audio parameters. Defaults are
// filled by defaultAppConfig; a TOML file overrides fields selectively.
type Config struct {
	Cells        int
	CourantSq    float64
	Boundary     boundaryPolicy
	Impulse      float64
	StepsPerTick int
	FrequencyHz  float64
}

// defaultAppConfig mirrors the reference behavior: 128 cells, a squared
// Courant number of 0.5, rigid walls, and a 440 Hz tone.
func defaultAppConfig() Config {
	return Config{
		Cells:        defaultCellCount,
		CourantSq:    defaultCourantSq,
		Boundary:     boundaryFixed,
		Impulse:      defaultImpulse,
		StepsPerTick: defaultStepsPerTick,
		FrequencyHz:  defaultFrequencyHz,
	}
}

// fileConfig is the raw TOML shape of a configuration file. Only keys that
// are actually present override the defaults.
type fileConfig struct {
	Cells        int     `toml:"cells"`
	CourantSq    float64 `toml:"courant_sq"`
	Boundary     string  `toml:"boundary"`
	Impulse      float64 `toml:"impulse"`
	StepsPerTick int     `toml:"steps_per_tick"`
	FrequencyHz  float64 `toml:"frequency_hz"`
}

// loadAppConfig reads a TOML file and merges it over the defaults. Values
// that would make the simulation invalid are rejected here rather than
// surfacing mid-run.
func loadAppConfig(path string) (Config, error) {
	cfg := defaultAppConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("cells") {
		cfg.Cells = raw.Cells
	}
	if meta.IsDefined("courant_sq") {
		cfg.CourantSq = raw.CourantSq
	}
	if meta.IsDefined("boundary") {
		policy, err := parseBoundaryPolicy(raw.Boundary)
		if err != nil {
			return Config{}, fmt.Errorf("parse boundary: %w", err)
		}
		cfg.Boundary = policy
	}
	if meta.IsDefined("impulse") {
		cfg.Impulse = raw.Impulse
	}
	if meta.IsDefined("steps_per_tick") {
		cfg.StepsPerTick = raw.StepsPerTick
	}
	if meta.IsDefined("frequency_hz") {
		cfg.FrequencyHz = raw.FrequencyHz
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate applies the construction-time preconditions. The chamber performs
// the same cell and Courant checks itself; validating here keeps bad config
// files from getting as far as window creation.
func (c Config) validate() error {
	if c.Cells < minChamberCells {
		return fmt.Errorf("cells must be at least %d, got %d", minChamberCells, c.Cells)
	}
	if c.CourantSq <= 0 || c.CourantSq > 1 {
		return fmt.Errorf("courant_sq must be in (0, 1], got %v", c.CourantSq)
	}
	if c.StepsPerTick < minStepsPerTick || c.StepsPerTick > maxStepsPerTick {
		return fmt.Errorf("steps_per_tick must be in [%d, %d], got %d", minStepsPerTick, maxStepsPerTick, c.StepsPerTick)
	}
	if c.FrequencyHz < 0 {
		return fmt.Errorf("frequency_hz must be non-negative, got %v", c.FrequencyHz)
	}
	return nil
}
