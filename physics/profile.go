package physics

import "github.com/lixenwraith/fusion-field/parameter"

// SpringProfile parameterizes chaos mode pair springs
type SpringProfile struct {
	RestDist float64 // Distance below which the spring engages (and its rest length)
	Strength float64 // Impulse per unit of compression
}

// GridProfile parameterizes fusion mode grid snapping
type GridProfile struct {
	Cols       int
	Gap        float64
	Pull       float64 // Proportional acceleration toward the cell
	Damping    float64 // Velocity multiplier after the pull
	JitterAmp  float64
	JitterFreq float64 // Per-tick phase advance
}

// IntegrationProfile parameterizes per-tick node integration
type IntegrationProfile struct {
	Damping     float64
	EnergyDecay float64
}

// PulseProfile parameterizes pulse travel and energy deposition
type PulseProfile struct {
	Speed               float64
	InferenceSpeed      float64
	WobbleAmp           float64
	WobbleFreq          float64
	InferenceWobbleFreq float64
	LifeDecay           float64
	EnergizeDistSq      float64
	EnergyBoost         float64
}

// Profile bundles every physics knob; the simulation carries one
type Profile struct {
	Spring      SpringProfile
	Grid        GridProfile
	Integration IntegrationProfile
	Pulse       PulseProfile
}

// DefaultProfile returns the stock tuning
func DefaultProfile() Profile {
	return Profile{
		Spring: SpringProfile{
			RestDist: parameter.ConnectionDist,
			Strength: parameter.SpringStrength,
		},
		Grid: GridProfile{
			Cols:       parameter.GridCols,
			Gap:        parameter.GridGap,
			Pull:       parameter.GridPull,
			Damping:    parameter.GridDamping,
			JitterAmp:  parameter.GridJitterAmp,
			JitterFreq: parameter.GridJitterFreq,
		},
		Integration: IntegrationProfile{
			Damping:     parameter.Damping,
			EnergyDecay: parameter.EnergyDecay,
		},
		Pulse: PulseProfile{
			Speed:               parameter.PulseSpeed,
			InferenceSpeed:      parameter.InferencePulseSpeed,
			WobbleAmp:           parameter.PulseWobbleAmp,
			WobbleFreq:          parameter.PulseWobbleFreq,
			InferenceWobbleFreq: parameter.InferenceWobbleFreq,
			LifeDecay:           parameter.PulseLifeDecay,
			EnergizeDistSq:      parameter.PulseEnergizeDistSq,
			EnergyBoost:         parameter.PulseEnergyBoost,
		},
	}
}
