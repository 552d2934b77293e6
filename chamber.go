package main

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// boundaryPolicy selects how the first and last cell are treated, where the
// three-point stencil has no one-sided neighbor.
type boundaryPolicy int

const (
	// boundaryFixed clamps both ends to zero, so waves reflect off rigid walls.
	boundaryFixed boundaryPolicy = iota
	// boundaryOpen copies the nearest interior value into each end (zero gradient).
	boundaryOpen
	// boundaryPeriodic wraps the stencil around, turning the chamber into a ring.
	boundaryPeriodic
)

// parseBoundaryPolicy maps a configuration string to a boundaryPolicy.
func parseBoundaryPolicy(s string) (boundaryPolicy, error) {
	switch s {
	case "fixed":
		return boundaryFixed, nil
	case "open":
		return boundaryOpen, nil
	case "periodic":
		return boundaryPeriodic, nil
	}
	return boundaryFixed, fmt.Errorf("unknown boundary policy %q (want fixed, open, or periodic)", s)
}

func (p boundaryPolicy) String() string {
	switch p {
	case boundaryOpen:
		return "open"
	case boundaryPeriodic:
		return "periodic"
	}
	return "fixed"
}

// chamber is a one-dimensional pressure field advanced by an explicit finite
// difference scheme. prev holds the field at t-1 and cur at t; each Step
// computes t+1 into a scratch buffer and rotates the three. The mutex makes
// Step, InjectPressure, Reset, and the snapshot readers mutually atomic, so a
// reader never observes a cur that mixes two generations.
type chamber struct {
	mu       sync.Mutex
	cells    int
	c2       float64
	boundary boundaryPolicy
	prev     []float64
	cur      []float64
	scratch  []float64
}

// newChamber validates the grid size and the squared Courant coefficient up
// front; the stencil itself runs without guards. cells must be at least
// minChamberCells so the interior stencil has at least one point, and c2 must
// lie in (0, 1] or the explicit scheme diverges.
func newChamber(cells int, c2 float64, boundary boundaryPolicy) (*chamber, error) {
	if cells < minChamberCells {
		return nil, fmt.Errorf("chamber needs at least %d cells, got %d", minChamberCells, cells)
	}
	if c2 <= 0 || c2 > 1 || math.IsNaN(c2) {
		return nil, fmt.Errorf("squared Courant number %v outside stable range (0, 1]", c2)
	}
	return &chamber{
		cells:    cells,
		c2:       c2,
		boundary: boundary,
		prev:     make([]float64, cells),
		cur:      make([]float64, cells),
		scratch:  make([]float64, cells),
	}, nil
}

// InjectPressure adds an impulse at the source cell (index 0). The amount is
// applied to the current generation only.
func (c *chamber) InjectPressure(amount float64) {
	c.mu.Lock()
	c.cur[0] += amount
	c.mu.Unlock()
}

// Step advances the field by one discrete time unit. Every index of the
// scratch buffer is written before the rotation, and the scratch buffer is
// never aliased by prev or cur, so generation t+1 is computed purely from
// generations t and t-1 regardless of traversal order.
func (c *chamber) Step() {
	c.mu.Lock()
	next := c.scratch
	cur, prev := c.cur, c.prev
	n := c.cells
	c2 := c.c2
	for i := 1; i <= n-2; i++ {
		next[i] = 2*cur[i] - prev[i] + c2*(cur[i+1]-2*cur[i]+cur[i-1])
	}
	switch c.boundary {
	case boundaryOpen:
		next[0] = next[1]
		next[n-1] = next[n-2]
	case boundaryPeriodic:
		next[0] = 2*cur[0] - prev[0] + c2*(cur[1]-2*cur[0]+cur[n-1])
		next[n-1] = 2*cur[n-1] - prev[n-1] + c2*(cur[0]-2*cur[n-1]+cur[n-2])
	default:
		next[0] = 0
		next[n-1] = 0
	}
	c.scratch = prev
	c.prev = cur
	c.cur = next
	c.mu.Unlock()
}

// Reset drops all accumulated wave energy, returning both generations to the
// all-zero state.
func (c *chamber) Reset() {
	c.mu.Lock()
	for i := range c.cur {
		c.prev[i] = 0
		c.cur[i] = 0
		c.scratch[i] = 0
	}
	c.mu.Unlock()
}

// Cells reports the fixed spatial size of the chamber.
func (c *chamber) Cells() int { return c.cells }

// ReadPressure copies the current generation into dst, growing it if needed,
// and returns the filled slice. The copy is taken under the lock so it is
// always a single consistent generation.
func (c *chamber) ReadPressure(dst []float64) []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cap(dst) < c.cells {
		dst = make([]float64, c.cells)
	}
	dst = dst[:c.cells]
	copy(dst, c.cur)
	return dst
}

// PeakPressure returns the largest absolute pressure in the current generation.
func (c *chamber) PeakPressure() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return math.Max(floats.Max(c.cur), -floats.Min(c.cur))
}

// FieldEnergy returns the L2 norm of the current generation, a rough proxy
// for the energy stored in the field.
func (c *chamber) FieldEnergy() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return floats.Norm(c.cur, 2)
}
