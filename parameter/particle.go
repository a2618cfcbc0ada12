package parameter

// Surface
const (
	// SurfaceHeight is the fixed logical surface height; width follows the container
	SurfaceHeight = 500.0

	// AnchorMargin is the horizontal inset of input and output anchors
	AnchorMargin = 50.0
)

// Node population
const (
	// NodeCount is the default number of floating (hidden) nodes
	NodeCount = 40

	// InputAnchors is the fixed count of left-edge anchors pulses originate from
	InputAnchors = 5

	// OutputAnchors is the fixed count of right-edge anchors
	OutputAnchors = 3

	// SpawnSpread is the side of the square around the center floating nodes start in
	SpawnSpread = 300.0

	// InitialSpeed is the per-axis bound of initial floating velocity, uniform in (-InitialSpeed, InitialSpeed)
	InitialSpeed = 1.0

	// MassMin and MassSpan give node mass uniform in [MassMin, MassMin+MassSpan)
	MassMin  = 1.0
	MassSpan = 2.0

	// BiasProbability is the chance a node is created with BiasRadius
	BiasProbability = 0.2

	NodeRadius   = 3.0
	BiasRadius   = 6.0
	FusionRadius = 3.0
)

// Pulses
const (
	// PulseSpeed is the horizontal step per tick in chaos mode
	PulseSpeed = 8.0

	// InferencePulseSpeed is the horizontal step per tick in inference mode
	InferencePulseSpeed = 5.0

	// PulseWobbleAmp is the vertical sinusoidal step amplitude
	PulseWobbleAmp = 2.0

	// PulseWobbleFreq and InferenceWobbleFreq scale x into the wobble phase
	PulseWobbleFreq     = 0.02
	InferenceWobbleFreq = 0.1

	// PulseLifeDecay is subtracted from pulse life each tick (100 ticks of life)
	PulseLifeDecay = 0.01

	// PulseLifeEpsilon snaps residual life to zero against accumulated float error
	PulseLifeEpsilon = 1e-9

	// PulseEnergizeDistSq is the squared radius within which a pulse energizes a node
	PulseEnergizeDistSq = 500.0

	// PulseEnergyBoost is added to node energy per tick while in range, clamped to 1
	PulseEnergyBoost = 0.3

	// ActiveEnergy is the energy above which a node counts as active
	ActiveEnergy = 0.1
)
