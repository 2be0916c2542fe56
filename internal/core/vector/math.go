package vector

import (
	"cmp"
	"math"
)

// Clamp limits v to the closed range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// SinDegrees is exact at multiples of 90 degrees.
func SinDegrees(degrees float64) float64 {
	switch r := math.Mod(degrees, 360); r {
	case 0, 180, -180:
		return 0
	case 90, -270:
		return 1
	case 270, -90:
		return -1
	default:
		return math.Sin(r * math.Pi / 180)
	}
}

// CosDegrees is exact at multiples of 90 degrees.
func CosDegrees(degrees float64) float64 {
	return SinDegrees(degrees + 90)
}
