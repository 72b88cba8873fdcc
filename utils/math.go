package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDifference returns the shortest signed angle, in radians, that takes a2 to a1.
// The raw difference a1-a2 is reduced modulo 2*pi into (-pi, pi]. That is the same as
// advancing the smaller of the two angles by whole turns, and it makes a difference of
// exactly half a turn come out as +pi from either side.
func AngleDifference(a1, a2 float64) float64 {
	diff := a1 - a2
	if diff > -math.Pi && diff <= math.Pi {
		return diff
	}
	// unnormalized inputs can be any number of turns apart
	diff = math.Mod(diff, 2*math.Pi)
	if diff <= -math.Pi {
		diff += 2 * math.Pi
	} else if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	return diff
}

// AngleDifferenceDeg is AngleDifference for angles in degrees. The result is in (-180, 180].
func AngleDifferenceDeg(a1, a2 float64) float64 {
	return RadToDeg(AngleDifference(DegToRad(a1), DegToRad(a2)))
}

// ClampToRange bounds value to [min, max]. Callers must ensure min <= max; when they do
// not, the result is always max. A NaN value is returned unchanged.
func ClampToRange(value, min, max float64) float64 {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

// Normalize clamps value to [min, max] and then maps that range linearly onto [-1, 1],
// so min becomes -1, the midpoint 0 and max 1. A degenerate range (min == max) yields 0.
func Normalize(value, min, max float64) float64 {
	halfRange := (max - min) / 2
	if halfRange == 0 {
		return 0
	}
	mid := (max + min) / 2
	return (ClampToRange(value, min, max) - mid) / halfRange
}
