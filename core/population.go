package core

import (
	"math/rand"

	"github.com/lixenwraith/fusion-field/parameter"
)

// PopulationConfig shapes the initial node layout
type PopulationConfig struct {
	Inputs  int
	Hidden  int
	Outputs int

	Margin          float64
	Spread          float64
	InitialSpeed    float64
	MassMin         float64
	MassSpan        float64
	BiasProbability float64
	NodeRadius      float64
	BiasRadius      float64
}

// DefaultPopulationConfig returns the stock 5/40/3 layout
func DefaultPopulationConfig() PopulationConfig {
	return PopulationConfig{
		Inputs:          parameter.InputAnchors,
		Hidden:          parameter.NodeCount,
		Outputs:         parameter.OutputAnchors,
		Margin:          parameter.AnchorMargin,
		Spread:          parameter.SpawnSpread,
		InitialSpeed:    parameter.InitialSpeed,
		MassMin:         parameter.MassMin,
		MassSpan:        parameter.MassSpan,
		BiasProbability: parameter.BiasProbability,
		NodeRadius:      parameter.NodeRadius,
		BiasRadius:      parameter.BiasRadius,
	}
}

// NewPopulation seeds inputs, hidden and outputs in that order
// Anchors are spaced evenly on H/(n+1); hidden nodes scatter around the center
func NewPopulation(cfg PopulationConfig, surface *Surface, rng *rand.Rand) []Node {
	w, h := surface.Width(), surface.Height()
	nodes := make([]Node, 0, cfg.Inputs+cfg.Hidden+cfg.Outputs)

	for i := 0; i < cfg.Inputs; i++ {
		y := h / float64(cfg.Inputs+1) * float64(i+1)
		nodes = append(nodes, newAnchor(cfg, rng, cfg.Margin, y, RoleInput))
	}

	cx, cy := surface.Center()
	for i := 0; i < cfg.Hidden; i++ {
		n := newNode(cfg, rng)
		n.X = cx + (rng.Float64()-0.5)*cfg.Spread
		n.Y = cy + (rng.Float64()-0.5)*cfg.Spread
		n.Role = RoleHidden
		nodes = append(nodes, n)
	}

	for i := 0; i < cfg.Outputs; i++ {
		y := h / float64(cfg.Outputs+1) * float64(i+1)
		nodes = append(nodes, newAnchor(cfg, rng, w-cfg.Margin, y, RoleOutput))
	}

	for i := range nodes {
		nodes[i].Index = i
	}
	return nodes
}

// newNode draws velocity, mass and radius; position is set by the caller
func newNode(cfg PopulationConfig, rng *rand.Rand) Node {
	n := Node{
		Mass:   cfg.MassMin + rng.Float64()*cfg.MassSpan,
		Radius: cfg.NodeRadius,
	}
	n.VX = (rng.Float64() - 0.5) * 2 * cfg.InitialSpeed
	n.VY = (rng.Float64() - 0.5) * 2 * cfg.InitialSpeed
	if rng.Float64() < cfg.BiasProbability {
		n.Radius = cfg.BiasRadius
	}
	return n
}

// newAnchor creates a fixed node; velocity is drawn but never integrated
func newAnchor(cfg PopulationConfig, rng *rand.Rand, x, y float64, role Role) Node {
	n := newNode(cfg, rng)
	n.X, n.Y = x, y
	n.Fixed = true
	n.Role = role
	return n
}
