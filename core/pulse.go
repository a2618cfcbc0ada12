package core

// Pulse is a transient marker travelling rightward from an input anchor
// Target is recorded at spawn and never steered toward
type Pulse struct {
	X, Y   float64
	TX, TY float64
	Life   float64
}

// Expired reports whether the pulse should be removed on a surface of given width
func (p *Pulse) Expired(width float64) bool {
	return p.Life <= 0 || p.X > width
}
