package vmath

import (
	"math"
)

// Epsilon stabilizes divisions by near-zero lengths
const Epsilon float32 = 1e-6

// --- Scalar ---

func Sqrt(f float32) float32 { return float32(math.Sqrt(float64(f))) }

func Abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Sign returns -1, 0 or 1
func Sign(f float32) float32 {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// --- Interpolation ---

// Lerp linearly interpolates a..b at t in [0,1]
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Linspace returns n evenly spaced values from lo to hi inclusive
// Endpoints are exact
func Linspace(lo, hi float32, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (float64(hi) - float64(lo)) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = float32(float64(lo) + step*float64(i))
	}
	out[n-1] = hi
	return out
}
