package common

import "math"

// Logical screen size. The window is scaled to fit.
const (
	BaseWidth  = 480
	BaseHeight = 270
)

// TPS is the fixed simulation rate and DeltaSeconds the length of one tick.
const (
	TPS          = 60
	DeltaSeconds = 1.0 / TPS
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns the unit vector of (x, y), or zero for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
