package parameter

// Display
const (
	// PixelRatioAuto asks the front-end to detect the device pixel ratio
	PixelRatioAuto = 0.0

	// MaxPixelRatio caps detected or configured ratios
	MaxPixelRatio = 4.0

	// WindowWidth is the initial logical width of windowed front-ends
	WindowWidth = 960

	// HUDRows is the number of terminal rows reserved for the status line
	HUDRows = 1
)

// Headless trace defaults
const (
	TraceTicks      = 600
	TraceWidth      = 800.0
	TracePlotWidth  = 48
	TracePlotHeight = 6
)

// Status line text
const (
	PhaseTextChaos  = " CHAOS  "
	PhaseTextFusion = " FUSION "
	PausedText      = " PAUSED "
	AudioStr        = "♫ "
)
