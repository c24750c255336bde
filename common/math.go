package common

// Logical viewer resolution. Matches the default arena size.
const (
	BaseWidth  = 960
	BaseHeight = 540
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
