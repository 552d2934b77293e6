package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestNewChamberValidation verifies construction-time precondition checks.
func TestNewChamberValidation(t *testing.T) {
	tests := []struct {
		name    string
		cells   int
		c2      float64
		wantErr bool
	}{
		{"Minimum size", 3, 0.5, false},
		{"Reference size", 128, 0.5, false},
		{"Stability limit", 16, 1.0, false},
		{"Too few cells", 2, 0.5, true},
		{"Zero cells", 0, 0.5, true},
		{"Zero coefficient", 16, 0.0, true},
		{"Negative coefficient", 16, -0.5, true},
		{"Unstable coefficient", 16, 1.1, true},
		{"NaN coefficient", 16, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := newChamber(tt.cells, tt.c2, boundaryFixed)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, ch)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.cells, ch.Cells())
			}
		})
	}
}

// TestChamberInitialState verifies both generations start at zero.
func TestChamberInitialState(t *testing.T) {
	ch, err := newChamber(16, 0.5, boundaryFixed)
	require.NoError(t, err)
	for i := 0; i < ch.Cells(); i++ {
		assert.Zero(t, ch.cur[i], "cur[%d] not zero after construction", i)
		assert.Zero(t, ch.prev[i], "prev[%d] not zero after construction", i)
	}
}

// TestChamberSingleImpulsePropagation checks the exact field after one step
// of a unit impulse: with c2=0.5 only the impulse's immediate neighbor moves.
func TestChamberSingleImpulsePropagation(t *testing.T) {
	ch, err := newChamber(5, 0.5, boundaryFixed)
	require.NoError(t, err)

	ch.InjectPressure(1.0)
	assert.Equal(t, []float64{1, 0, 0, 0, 0}, ch.cur)

	ch.Step()
	assert.Equal(t, []float64{0, 0.5, 0, 0, 0}, ch.cur,
		"impulse should reach only the first interior cell after one step")
	assert.Equal(t, []float64{1, 0, 0, 0, 0}, ch.prev)

	ch.Step()
	assert.Equal(t, []float64{0, 0.5, 0.25, 0, 0}, ch.cur,
		"second step should propagate one cell further")
}

// TestChamberBoundaryInvariant verifies the fixed policy pins both ends to
// zero through an extended run with repeated injections.
func TestChamberBoundaryInvariant(t *testing.T) {
	ch, err := newChamber(64, 0.5, boundaryFixed)
	require.NoError(t, err)

	for step := 0; step < 500; step++ {
		if step%7 == 0 {
			ch.InjectPressure(0.1)
		}
		ch.Step()
		require.Zero(t, ch.cur[0], "cur[0] nonzero at step %d", step)
		require.Zero(t, ch.cur[63], "cur[N-1] nonzero at step %d", step)
	}
}

// TestChamberBufferRotation verifies the new prev equals the cur that existed
// immediately before the step.
func TestChamberBufferRotation(t *testing.T) {
	ch, err := newChamber(32, 0.5, boundaryFixed)
	require.NoError(t, err)
	ch.InjectPressure(1.0)
	for i := 0; i < 20; i++ {
		ch.Step()
	}

	before := ch.ReadPressure(nil)
	ch.Step()
	assert.Equal(t, before, ch.prev, "prev must hold the pre-step cur after rotation")
}

// TestChamberEnergyBounded runs a unit impulse at the stability limit and
// verifies the field never diverges over 1000 steps.
func TestChamberEnergyBounded(t *testing.T) {
	ch, err := newChamber(64, 1.0, boundaryFixed)
	require.NoError(t, err)
	ch.InjectPressure(1.0)

	maxPeak := 0.0
	for i := 0; i < 1000; i++ {
		ch.Step()
		if peak := ch.PeakPressure(); peak > maxPeak {
			maxPeak = peak
		}
	}
	assert.Less(t, maxPeak, 10.0,
		"field grew to %v at the stability limit; scheme is diverging", maxPeak)
}

// TestChamberDeterminism feeds two identical chambers the same call sequence
// and requires bit-identical generations at every step.
func TestChamberDeterminism(t *testing.T) {
	a, err := newChamber(48, 0.5, boundaryFixed)
	require.NoError(t, err)
	b, err := newChamber(48, 0.5, boundaryFixed)
	require.NoError(t, err)

	amounts := []float64{1.0, 0.25, -0.7, 0.003, 2.5}
	for step := 0; step < 200; step++ {
		if step%11 == 0 {
			amount := amounts[(step/11)%len(amounts)]
			a.InjectPressure(amount)
			b.InjectPressure(amount)
		}
		a.Step()
		b.Step()
		require.Equal(t, a.cur, b.cur, "cur diverged at step %d", step)
		require.Equal(t, a.prev, b.prev, "prev diverged at step %d", step)
	}
}

// TestChamberReset verifies reset drops all energy regardless of history and
// is idempotent.
func TestChamberReset(t *testing.T) {
	ch, err := newChamber(16, 0.5, boundaryFixed)
	require.NoError(t, err)

	ch.InjectPressure(3.0)
	for i := 0; i < 50; i++ {
		ch.Step()
	}
	require.NotZero(t, ch.FieldEnergy(), "test needs a non-trivial field before reset")

	ch.Reset()
	zeros := make([]float64, 16)
	assert.Equal(t, zeros, ch.cur)
	assert.Equal(t, zeros, ch.prev)

	ch.Reset()
	assert.Equal(t, zeros, ch.cur)

	// A fresh impulse behaves exactly as on a new chamber.
	ch.InjectPressure(1.0)
	ch.Step()
	assert.Equal(t, 0.5, ch.cur[1])
}

// TestChamberBoundaryReflectionSign distinguishes the boundary policies by a
// physical property: a pulse bouncing off a rigid (fixed) wall comes back
// inverted, while a zero-gradient (open) end returns it with its sign intact.
// At c2 = 1 the stencil transports a traveling pulse exactly one cell per
// step, so the round trip can be checked cell for cell: the pulse launched at
// cell 4 returns there after 7 steps off the open end and after 8 off the
// rigid wall (the open end's copied ghost cell shortens the trip by one).
func TestChamberBoundaryReflectionSign(t *testing.T) {
	// A rightward-traveling unit pulse needs both generations populated: the
	// current sample at cell 4 and the previous one a cell behind it.
	launchPulse := func(ch *chamber) {
		ch.cur[4] = 1
		ch.prev[3] = 1
	}

	open, err := newChamber(9, 1.0, boundaryOpen)
	require.NoError(t, err)
	launchPulse(open)
	for i := 0; i < 7; i++ {
		open.Step()
	}
	assert.Equal(t, 1.0, open.cur[4],
		"open end must return the pulse without inverting it")

	fixed, err := newChamber(9, 1.0, boundaryFixed)
	require.NoError(t, err)
	launchPulse(fixed)
	for i := 0; i < 8; i++ {
		fixed.Step()
	}
	assert.Equal(t, -1.0, fixed.cur[4],
		"rigid wall must return the pulse inverted")
}

// TestChamberPeriodicBoundary verifies the wrapped stencil: an impulse at the
// source cell feeds both of its ring neighbors.
func TestChamberPeriodicBoundary(t *testing.T) {
	ch, err := newChamber(5, 0.5, boundaryPeriodic)
	require.NoError(t, err)
	ch.InjectPressure(1.0)
	ch.Step()
	// next[0] = 2*1 - 0 + 0.5*(0 - 2*1 + 0) = 1
	// next[1] and next[4] each receive 0.5 from the impulse.
	assert.Equal(t, []float64{1, 0.5, 0, 0, 0.5}, ch.cur)
}

// TestChamberReadPressureSnapshot verifies the reader copies rather than
// aliases, and reuses a caller-provided buffer.
func TestChamberReadPressureSnapshot(t *testing.T) {
	ch, err := newChamber(8, 0.5, boundaryFixed)
	require.NoError(t, err)
	ch.InjectPressure(1.0)

	snap := ch.ReadPressure(nil)
	require.Len(t, snap, 8)
	snap[3] = 42
	assert.Zero(t, ch.cur[3], "mutating a snapshot must not touch the chamber")

	reused := make([]float64, 8)
	got := ch.ReadPressure(reused)
	assert.Same(t, &reused[0], &got[0], "large enough buffers should be reused")
	assert.Equal(t, 1.0, got[0])
}

// TestChamberDiagnostics checks the peak and energy readings against direct
// computation on a snapshot.
func TestChamberDiagnostics(t *testing.T) {
	ch, err := newChamber(32, 0.5, boundaryFixed)
	require.NoError(t, err)
	ch.InjectPressure(-2.0)
	for i := 0; i < 10; i++ {
		ch.Step()
	}

	snap := ch.ReadPressure(nil)
	wantPeak := math.Max(floats.Max(snap), -floats.Min(snap))
	assert.Equal(t, wantPeak, ch.PeakPressure())
	assert.InDelta(t, floats.Norm(snap, 2), ch.FieldEnergy(), 1e-15)
}

// TestParseBoundaryPolicy covers the configuration string mapping.
func TestParseBoundaryPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    boundaryPolicy
		wantErr bool
	}{
		{"fixed", boundaryFixed, false},
		{"open", boundaryOpen, false},
		{"periodic", boundaryPeriodic, false},
		{"", boundaryFixed, true},
		{"reflective", boundaryFixed, true},
	}
	for _, tt := range tests {
		got, err := parseBoundaryPolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.String())
	}
}

// BenchmarkChamberStep measures a single step at the reference resolution.
func BenchmarkChamberStep(b *testing.B) {
	ch, err := newChamber(defaultCellCount, defaultCourantSq, boundaryFixed)
	if err != nil {
		b.Fatal(err)
	}
	ch.InjectPressure(1.0)
	for i := 0; i < b.N; i++ {
		ch.Step()
	}
}
