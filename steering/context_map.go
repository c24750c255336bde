// Package steering implements 8-direction context-map steering. Contributor
// functions add interest or danger into a ContextMap and Resolve turns the
// result into a single movement direction.
package steering

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Directions is the number of compass slots. Slot 0 is East and indices
// increase counter-clockwise.
const Directions = 8

// SlotSpacing is the angle between neighbouring slots.
const SlotSpacing = 2 * math.Pi / Directions

// ContextMap holds summed interest and danger per slot. Contributors only
// ever add to it.
type ContextMap struct {
	Interest [Directions]float64
	Danger   [Directions]float64
}

func (m *ContextMap) Reset() {
	*m = ContextMap{}
}

// Value is interest minus danger for slot i.
func (m *ContextMap) Value(i int) float64 {
	return m.Interest[i] - m.Danger[i]
}

func SlotAngle(i int) float64 {
	return float64(i) * SlotSpacing
}

func SlotDirection(i int) cp.Vector {
	return cp.ForAngle(SlotAngle(i))
}

// Resolve picks the slot with the highest interest minus danger, first seen
// winning ties, and returns its unit direction, the value clamped to [0,1]
// and the slot index. Zero strength means do not move.
func Resolve(m *ContextMap) (cp.Vector, float64, int) {
	if m == nil {
		return SlotDirection(0), 0, 0
	}
	best := 0
	bestValue := m.Value(0)
	for i := 1; i < Directions; i++ {
		if v := m.Value(i); v > bestValue {
			best, bestValue = i, v
		}
	}
	return SlotDirection(best), clamp01(bestValue), best
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
