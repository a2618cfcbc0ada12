// Package vmath provides float64 2D helpers used by the simulation and renderer.
// All functions are allocation-free and never return NaN for finite input.
package vmath

import "math"

// Finite reports whether v is neither NaN nor ±Inf
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Finite2 reports whether both components are finite
func Finite2(x, y float64) bool {
	return Finite(x) && Finite(y)
}

// Clamp limits v to [lo, hi]; NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
