// Package vmath provides float64 3D helpers over mgl64 used by physics and gameplay systems
package vmath

import "math"

// Epsilon is the tolerance for near-zero lengths and parallel-ray tests
const Epsilon = 1e-9

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b, t unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SaturatingUint64 converts a float to uint64, clamping NaN and negatives to 0 and overflow to MaxUint64
func SaturatingUint64(f float64) uint64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	// 2^64 is the first float64 that does not fit
	if f >= 18446744073709551616.0 {
		return math.MaxUint64
	}
	return uint64(f)
}

// FloorDivPositive returns floor(max(0, v) / step) saturated to uint64
// step <= 0 yields 0
func FloorDivPositive(v, step float64) uint64 {
	if step <= 0 {
		return 0
	}
	return SaturatingUint64(math.Floor(math.Max(0, v) / step))
}

// SaturatingAdd adds two uint64 values, clamping at MaxUint64
func SaturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// SaturatingSub subtracts b from a, clamping at 0
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
