package steering

import (
	"math"

	"github.com/jakecoffman/cp"
)

// MinDistanceGuard floors distances used as divisors.
const MinDistanceGuard = 1e-3

// MaxInverseScale caps the inverse-distance factor so a contributor at zero
// distance yields a large but finite danger.
const MaxInverseScale = 10.0

var fallbackDirection = cp.Vector{X: 1}

// Obstacle is a circular approximation of static scenery.
type Obstacle struct {
	Center cp.Vector
	Radius float64
}

// Seek adds interest toward target, spread over the one or two slots
// nearest the bearing and tapering linearly with angular distance.
func Seek(m *ContextMap, from, target cp.Vector, weight float64) {
	d := target.Sub(from)
	if m == nil || d.Length() < MinDistanceGuard {
		return
	}
	addTapered(&m.Interest, d.ToAngle(), weight)
}

// FlankSeek is Seek toward the target bearing rotated by offset radians.
func FlankSeek(m *ContextMap, from, target cp.Vector, offset, weight float64) {
	d := target.Sub(from)
	if m == nil || d.Length() < MinDistanceGuard {
		return
	}
	addTapered(&m.Interest, d.ToAngle()+offset, weight)
}

// ObstacleDanger adds danger toward every obstacle whose surface lies within
// lookahead, scaled by inverse surface distance.
func ObstacleDanger(m *ContextMap, from cp.Vector, obstacles []Obstacle, lookahead, weight float64) {
	if m == nil || lookahead <= 0 {
		return
	}
	for _, o := range obstacles {
		d := o.Center.Sub(from)
		gap := d.Length() - o.Radius
		if gap >= lookahead {
			continue
		}
		addAligned(&m.Danger, direction(d), weight*inverse(gap, lookahead))
	}
}

// SeparationDanger adds danger toward every other actor within radius.
func SeparationDanger(m *ContextMap, from cp.Vector, others []cp.Vector, radius, weight float64) {
	if m == nil || radius <= 0 {
		return
	}
	for _, o := range others {
		d := o.Sub(from)
		dist := d.Length()
		if dist >= radius {
			continue
		}
		addAligned(&m.Danger, direction(d), weight*inverse(dist, radius))
	}
}

// OccupiedAngleDanger discourages approaching target along a lane another
// approacher already uses. Each approacher whose bearing to the target is
// within spread radians of ours adds danger along its travel direction,
// strongest when the lanes coincide.
func OccupiedAngleDanger(m *ContextMap, from, target cp.Vector, approachers []cp.Vector, spread, weight float64) {
	if m == nil || spread <= 0 {
		return
	}
	own := target.Sub(from)
	if own.Length() < MinDistanceGuard {
		return
	}
	ownAngle := own.ToAngle()
	for _, a := range approachers {
		lane := target.Sub(a)
		if lane.Length() < MinDistanceGuard {
			continue
		}
		diff := math.Abs(angleDiff(lane.ToAngle(), ownAngle))
		if diff >= spread {
			continue
		}
		addAligned(&m.Danger, direction(lane), weight*(1-diff/spread))
	}
}

// ProximityDanger adds danger toward target once closer than minDistance.
func ProximityDanger(m *ContextMap, from, target cp.Vector, minDistance, weight float64) {
	if m == nil || minDistance <= 0 {
		return
	}
	d := target.Sub(from)
	dist := d.Length()
	if dist >= minDistance {
		return
	}
	addAligned(&m.Danger, direction(d), weight*inverse(dist, minDistance))
}

// addTapered adds weight to slots within one spacing of angle, scaled by
// 1 - distance/spacing.
func addTapered(slots *[Directions]float64, angle, weight float64) {
	for i := range slots {
		delta := math.Abs(angleDiff(angle, SlotAngle(i)))
		if delta < SlotSpacing {
			slots[i] += weight * (1 - delta/SlotSpacing)
		}
	}
}

// addAligned adds amount scaled by each slot's positive alignment with dir.
func addAligned(slots *[Directions]float64, dir cp.Vector, amount float64) {
	for i := range slots {
		if a := SlotDirection(i).Dot(dir); a > 0 {
			slots[i] += amount * a
		}
	}
}

// inverse maps a distance inside ref to a factor of 1 at ref growing to
// MaxInverseScale at zero.
func inverse(dist, ref float64) float64 {
	floor := math.Max(ref/MaxInverseScale, MinDistanceGuard)
	return ref / math.Max(dist, floor)
}

func direction(d cp.Vector) cp.Vector {
	l := d.Length()
	if l < MinDistanceGuard {
		return fallbackDirection
	}
	return d.Mult(1 / l)
}

// angleDiff returns a-b wrapped into (-pi, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
