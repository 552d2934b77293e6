package main

import (
	"fmt"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Background and marker colors for the pixel buffer (RGBA).
const (
	backgroundR = 40
	backgroundG = 40
	backgroundB = 48
	markerGap   = 2
	markerSize  = 4
)

// Draw renders one shaded vertical bar per cell from a consistent snapshot of
// the current pressure generation, plus a source marker and optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.pressure = g.chamber.ReadPressure(g.pressure)
	cells := len(g.pressure)
	if len(g.frameBuffer) != cells*screenHeight*4 {
		g.frameBuffer = make([]byte, cells*screenHeight*4)
	}
	buf := g.frameBuffer
	for i := 0; i < cells*screenHeight; i++ {
		base := i * 4
		buf[base] = backgroundR
		buf[base+1] = backgroundG
		buf[base+2] = backgroundB
		buf[base+3] = 255
	}

	for x := 0; x < cells; x++ {
		r, gg, b := pressureColor(g.pressure[x], *paletteFlag)
		for y := barTop; y < barTop+barHeight; y++ {
			base := (y*cells + x) * 4
			buf[base] = r
			buf[base+1] = gg
			buf[base+2] = b
			buf[base+3] = 255
		}
	}

	// Red marker above the source cell's bar.
	for y := barTop - markerGap - markerSize; y < barTop-markerGap; y++ {
		if y < 0 {
			break
		}
		base := (y * cells) * 4
		buf[base] = 255
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 255
	}

	screen.WritePixels(buf)

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		simMS := g.lastSimDuration.Seconds() * 1000
		debugMsg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nSteps: %.0f/s (x%d, +/-)\nFreq: %.0f Hz\nPeak: %.3f\nEnergy: %.3f\nSim: %.3f ms",
			fps, tps, g.simStepsPerSecond(), g.stepsPerTick,
			g.osc.Frequency(), g.chamber.PeakPressure(), g.chamber.FieldEnergy(), simMS)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.cfg.Cells, screenHeight }

// pressureColor maps one pressure sample to a display color. The renderer
// owns this mapping: pressure is offset by 0.5 and clamped to [0, 1], shown
// as a grayscale level, or as a blue-to-red HSV ramp in palette mode.
func pressureColor(p float64, palette bool) (byte, byte, byte) {
	t := p + 0.5
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if !palette {
		v := byte(t * 255)
		return v, v, v
	}
	hue := (1 - t) * 240
	r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
	return r, g, b
}
