// Package visual holds renderer tunables: theme colors, alphas, widths and radii
package visual

// RGB triples, kept as plain bytes so config and render can both consume them
var (
	// ColorAccent is the idle connection tone (#2997ff)
	ColorAccent = [3]uint8{41, 151, 255}

	// ColorPurple is the active node and connection tone (#bf5af2)
	ColorPurple = [3]uint8{191, 90, 242}

	// ColorIdleNode is the idle node tone
	ColorIdleNode = [3]uint8{255, 255, 255}

	// ColorPulse is the pulse core tone
	ColorPulse = [3]uint8{255, 255, 255}

	// ColorBackground is what Clear fills the surface with
	ColorBackground = [3]uint8{0, 0, 0}
)

// Connections
const (
	// FusionLinkDist is the connection threshold in fusion mode; grid gap is 40, diagonals ~56
	FusionLinkDist = 50.0

	// LinkAlpha is the peak connection opacity at zero distance
	LinkAlpha = 0.4

	// ActiveLinkAlphaMul brightens links touching an active node
	ActiveLinkAlphaMul = 2.0

	// IdleLinkAlphaChaos and IdleLinkAlphaFusion dim idle links per mode
	IdleLinkAlphaChaos  = 0.5
	IdleLinkAlphaFusion = 0.3

	ActiveLinkWidth = 1.5
	IdleLinkWidth   = 0.5
)

// Nodes
const (
	// NodeBaseAlpha and NodeEnergyAlpha give active alpha = base + energy*scale
	NodeBaseAlpha   = 0.3
	NodeEnergyAlpha = 0.7

	// IdleNodeAlpha is the flat opacity of idle nodes
	IdleNodeAlpha = 0.2

	// NodeEnergyGrow is the radius added per unit of energy
	NodeEnergyGrow = 5.0
)

// Pulses
const (
	PulseRadius       = 3.0
	PulseRadiusFusion = 2.0

	// PulseHaloScale and PulseHaloAlpha approximate a canvas shadow blur around the core
	PulseHaloScale = 2.5
	PulseHaloAlpha = 0.18
)
