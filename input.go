package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// handleKeys maps discrete key presses to chamber and audio operations:
// A injects a pressure impulse at the source cell, R clears the field, Space
// toggles the tone, and Up/Down retune the oscillator.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.chamber.InjectPressure(g.cfg.Impulse)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.chamber.Reset()
		log.Debug().Msg("chamber reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleAudio()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.osc.AdjustFrequency(frequencyStepHz)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.osc.AdjustFrequency(-frequencyStepHz)
	}
	g.handleDebugControls()
}

// toggleAudio pauses or resumes the tone player.
func (g *Game) toggleAudio() {
	if g.audioPlayer == nil {
		return
	}
	if g.audioPlayer.IsPlaying() {
		g.audioPlayer.Pause()
	} else {
		g.audioPlayer.Play()
	}
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustStepsPerTick(-stepsPerTickDelta)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustStepsPerTick(stepsPerTickDelta)
	}
}

// adjustStepsPerTick clamps the per-tick step count delta within bounds.
func (g *Game) adjustStepsPerTick(delta int) {
	g.stepsPerTick += delta
	if g.stepsPerTick < minStepsPerTick {
		g.stepsPerTick = minStepsPerTick
	} else if g.stepsPerTick > maxStepsPerTick {
		g.stepsPerTick = maxStepsPerTick
	}
}
