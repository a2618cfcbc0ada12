package engine

import (
	"log"

	"github.com/lixenwraith/fusion-field/core"
)

// ModeController counts ticks and flips chaos into fusion+inference once past Threshold
// The transition is one-way; there is no reset
type ModeController struct {
	Threshold int

	// OnFusion fires once, on the transition tick
	OnFusion func(tick int)
}

// NewModeController creates a controller flipping on tick threshold+1
func NewModeController(threshold int) *ModeController {
	return &ModeController{Threshold: threshold}
}

// Advance increments the tick counter and returns true exactly on the transition tick
func (m *ModeController) Advance(st *core.State) bool {
	st.Ticks++
	if st.Mode.Fusion || st.Ticks <= m.Threshold {
		return false
	}

	st.Mode.Fusion = true
	st.Mode.Inference = true
	log.Printf("mode: chaos -> fusion at tick %d", st.Ticks)

	if m.OnFusion != nil {
		m.OnFusion(st.Ticks)
	}
	return true
}
