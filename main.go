package main

import (
	"flag"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	flag.Parse()
	setupLogging(*debugFlag)

	cfg := defaultAppConfig()
	if *configFlag != "" {
		loaded, err := loadAppConfig(*configFlag)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configFlag).Msg("configuration invalid")
		}
		cfg = loaded
		log.Info().Str("path", *configFlag).Int("cells", cfg.Cells).
			Str("boundary", cfg.Boundary.String()).Msg("configuration loaded")
	}

	if *cpuProfileFlag != "" {
		prof, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("CPU profiling failed to start")
		}
		defer prof.Stop()
	}

	if *headlessStepsFlag > 0 {
		if err := runHeadless(cfg, *headlessStepsFlag); err != nil {
			log.Fatal().Err(err).Msg("headless run failed")
		}
		return
	}

	osc := newSineStream(cfg.FrequencyHz)
	var stream io.Reader = osc
	var recorder *pcmRecorder
	if *recordFlag != "" {
		r, err := newPCMRecorder(osc, *recordFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("recording setup failed")
		}
		recorder = r
		stream = r
		log.Info().Str("path", *recordFlag).Msg("recording oscillator output")
	}

	g, err := newGame(cfg, osc, stream)
	if err != nil {
		log.Fatal().Err(err).Msg("initialization failed")
	}

	ebiten.SetWindowSize(cfg.Cells*windowScale, screenHeight*windowScale)
	ebiten.SetWindowTitle("Pressure Wave Chamber")
	runErr := ebiten.RunGame(g)
	if recorder != nil {
		if err := recorder.Close(); err != nil {
			log.Error().Err(err).Msg("recording close failed")
		}
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("game loop failed")
	}
}

// runHeadless drives the chamber without a window: one impulse at the source
// cell, then the requested number of steps, logging the resulting field stats.
func runHeadless(cfg Config, steps int) error {
	ch, err := newChamber(cfg.Cells, cfg.CourantSq, cfg.Boundary)
	if err != nil {
		return err
	}
	ch.InjectPressure(cfg.Impulse)
	start := time.Now()
	for i := 0; i < steps; i++ {
		ch.Step()
	}
	log.Info().Int("steps", steps).Int("cells", cfg.Cells).
		Str("boundary", cfg.Boundary.String()).
		Float64("peak", ch.PeakPressure()).
		Float64("energy", ch.FieldEnergy()).
		Dur("elapsed", time.Since(start)).
		Msg("headless run complete")
	return nil
}
