package steering

import "math/rand"

// NewFlankOffset picks a flank angle with magnitude in [min, max] and a
// random side. It is chosen once per actor so its approach stays stable.
func NewFlankOffset(rng *rand.Rand, min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	var u, side float64
	if rng != nil {
		u, side = rng.Float64(), rng.Float64()
	} else {
		u, side = rand.Float64(), rand.Float64()
	}
	offset := min + u*(max-min)
	if side < 0.5 {
		return -offset
	}
	return offset
}
