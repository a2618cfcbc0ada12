package parameter

// Chaos mode springs
const (
	// ConnectionDist is the pair distance below which chaos springs act and connections draw
	ConnectionDist = 100.0

	// SpringStrength scales (d - ConnectionDist) into a per-tick velocity impulse
	SpringStrength = 0.05

	// MouseInfluence is the pointer interaction radius
	// Inert: no force reads it, retained as a configuration knob only
	MouseInfluence = 150.0
)

// Integration
const (
	// Damping multiplies floating node velocity every tick
	Damping = 0.98

	// EnergyDecay multiplies floating node energy every tick
	EnergyDecay = 0.95

	// FusionEnergyDecay is the extra per-tick energy multiplier for all nodes in fusion mode
	FusionEnergyDecay = 0.9
)

// Fusion grid
const (
	// GridCols is the fusion grid column count
	GridCols = 8

	// GridGap is the spacing between grid cells in surface units
	GridGap = 40.0

	// GridPull is the proportional acceleration toward the assigned cell
	GridPull = 0.05

	// GridDamping is the heavy velocity damping applied after the pull, producing a snap
	GridDamping = 0.8

	// GridJitterAmp is the breathing displacement added per tick so the grid is never static
	GridJitterAmp = 0.2

	// GridJitterFreq is the tick frequency of the breathing motion
	GridJitterFreq = 0.05
)
