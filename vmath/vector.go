package vmath

import "math"

// DistanceSq returns squared Euclidean distance between two points
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Distance returns Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSq(x1, y1, x2, y2))
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Normalize2D returns unit vector, zero-safe
// A zero or non-finite magnitude yields (0, 0) so callers never divide by zero
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 || !Finite(mag) {
		return 0, 0
	}
	return x / mag, y / mag
}

// ReflectAxisX returns velocity reflected off a vertical wall (left/right edge)
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal wall (top/bottom edge)
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}
