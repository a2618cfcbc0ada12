package engine

import (
	"math/rand"

	"github.com/lixenwraith/fusion-field/core"
)

// Spawner emits pulses from a uniformly random input anchor
// It only appends to State.Pulses, so it can interleave with the step's reverse removal
type Spawner struct {
	rng *rand.Rand

	// OnSpawn receives the chosen anchor's index among the inputs
	OnSpawn func(anchor int)
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn charges one input anchor to full energy and appends a pulse at its position
// targeting the surface center. Returns false when the population has no inputs
func (s *Spawner) Spawn(st *core.State) bool {
	inputs := st.Inputs()
	if len(inputs) == 0 {
		return false
	}

	idx := s.rng.Intn(len(inputs))
	anchor := &inputs[idx]
	anchor.Energy = 1.0

	cx, cy := st.Surface.Center()
	st.Pulses = append(st.Pulses, core.Pulse{
		X:    anchor.X,
		Y:    anchor.Y,
		TX:   cx,
		TY:   cy,
		Life: 1.0,
	})

	if s.OnSpawn != nil {
		s.OnSpawn(idx)
	}
	return true
}
