package main

import (
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Game wires the chamber, renderer, and audio pipeline into the ebiten loop.
// The chamber is the only shared state; its own lock makes the per-tick steps
// atomic with respect to the renderer's snapshot.
type Game struct {
	cfg     Config
	chamber *chamber
	osc     *sineStream

	audioCtx    *audio.Context
	audioPlayer *audio.Player

	stepsPerTick    int
	lastSimDuration time.Duration

	pressure    []float64
	frameBuffer []byte
}

// newGame constructs a fully initialized Game. stream is what the audio
// player actually pulls from; it is the oscillator itself or the recorder
// wrapping it. The player starts paused and Space starts it, matching the
// reference behavior.
func newGame(cfg Config, osc *sineStream, stream io.Reader) (*Game, error) {
	ch, err := newChamber(cfg.Cells, cfg.CourantSq, cfg.Boundary)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:          cfg,
		chamber:      ch,
		osc:          osc,
		stepsPerTick: cfg.StepsPerTick,
	}
	g.audioCtx = audio.NewContext(audioSampleRate)
	player, err := g.audioCtx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("create audio player: %w", err)
	}
	g.audioPlayer = player
	return g, nil
}

// Update routes input events and advances the simulation by the configured
// number of steps for this tick.
func (g *Game) Update() error {
	g.handleKeys()
	simStart := time.Now()
	for i := 0; i < g.stepsPerTick; i++ {
		g.chamber.Step()
	}
	g.lastSimDuration = time.Since(simStart)
	return nil
}

// simStepsPerSecond returns the nominal simulation steps executed each second.
func (g *Game) simStepsPerSecond() float64 {
	return defaultTPS * float64(g.stepsPerTick)
}
