package core

// Role partitions the population; anchors are fixed, hidden nodes float
type Role uint8

const (
	RoleInput Role = iota
	RoleHidden
	RoleOutput
)

func (r Role) String() string {
	switch r {
	case RoleInput:
		return "input"
	case RoleHidden:
		return "hidden"
	case RoleOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Node is a single physics point
// Fixed nodes never change position or velocity after creation
type Node struct {
	Kinetic

	// Mass in [1, 3), forces are divided by it
	Mass   float64
	Radius float64
	Fixed  bool

	// Energy in [0, 1], recent activation driving glow
	Energy float64

	Role Role
	// Index is the position in State.Nodes, used as jitter phase
	Index int
}

// Active reports whether energy is above threshold
func (n *Node) Active(threshold float64) bool {
	return n.Energy > threshold
}
