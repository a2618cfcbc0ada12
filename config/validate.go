package config

import (
	"fmt"

	"github.com/lixenwraith/fusion-field/vmath"
)

// ValidationError names the offending key
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Key, e.Reason)
}

// Validate checks every field; the first failure is returned
func (c Config) Validate() error {
	checks := []struct {
		key string
		ok  bool
		why string
	}{
		{"simulation.node_count", c.Simulation.NodeCount > 0, "must be positive"},
		{"simulation.connection_dist", positive(c.Simulation.ConnectionDist), "must be positive"},
		{"simulation.mouse_influence", nonNegative(c.Simulation.MouseInfluence), "must not be negative"},
		{"simulation.spring_strength", nonNegative(c.Simulation.SpringStrength), "must not be negative"},
		{"simulation.damping", unitInterval(c.Simulation.Damping), "must be in (0, 1]"},
		{"simulation.energy_decay", unitInterval(c.Simulation.EnergyDecay), "must be in (0, 1]"},
		{"simulation.fusion_threshold", c.Simulation.FusionThreshold >= 0, "must not be negative"},
		{"grid.cols", c.Grid.Cols > 0, "must be positive"},
		{"grid.gap", positive(c.Grid.Gap), "must be positive"},
		{"grid.pull", nonNegative(c.Grid.Pull), "must not be negative"},
		{"grid.damping", unitInterval(c.Grid.Damping), "must be in (0, 1]"},
		{"pulse.spawn_interval_ms", c.Pulse.SpawnIntervalMS > 0, "must be positive"},
		{"pulse.speed", positive(c.Pulse.Speed), "must be positive"},
		{"pulse.inference_speed", positive(c.Pulse.InferenceSpeed), "must be positive"},
		{"pulse.life_decay", positive(c.Pulse.LifeDecay), "must be positive"},
		{"display.frame_interval_ms", c.Display.FrameIntervalMS > 0, "must be positive"},
		{"display.pixel_ratio", nonNegative(c.Display.PixelRatio), "must not be negative (0 = auto)"},
		{"audio.volume", nonNegative(c.Audio.Volume) && c.Audio.Volume <= 1, "must be in [0, 1]"},
	}

	for _, ch := range checks {
		if !ch.ok {
			return &ValidationError{Key: ch.key, Reason: ch.why}
		}
	}
	return nil
}

func positive(v float64) bool    { return vmath.Finite(v) && v > 0 }
func nonNegative(v float64) bool { return vmath.Finite(v) && v >= 0 }
func unitInterval(v float64) bool {
	return vmath.Finite(v) && v > 0 && v <= 1
}
