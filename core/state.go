package core

// State is the whole mutable simulation: one owner, read by the renderer
type State struct {
	Surface *Surface
	Nodes   []Node
	Pulses  []Pulse
	Mode    Mode
	Ticks   int
}

// NewState binds a population to a surface
func NewState(surface *Surface, nodes []Node) *State {
	return &State{
		Surface: surface,
		Nodes:   nodes,
		Pulses:  make([]Pulse, 0, 64),
	}
}

// Inputs returns the input anchor slice (shares backing array)
func (s *State) Inputs() []Node {
	n := 0
	for n < len(s.Nodes) && s.Nodes[n].Role == RoleInput {
		n++
	}
	return s.Nodes[:n]
}

// HiddenCount returns the number of floating nodes
func (s *State) HiddenCount() int {
	c := 0
	for i := range s.Nodes {
		if !s.Nodes[i].Fixed {
			c++
		}
	}
	return c
}

// RemovePulse deletes pulse i preserving order; safe inside a reverse traversal
func (s *State) RemovePulse(i int) {
	s.Pulses = append(s.Pulses[:i], s.Pulses[i+1:]...)
}
