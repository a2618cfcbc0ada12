package core

// Kinetic is the integrable part of a node in surface units per tick
type Kinetic struct {
	X, Y   float64
	VX, VY float64
}
