package render

import (
	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/parameter/visual"
	"github.com/lixenwraith/fusion-field/vmath"
)

// Palette holds the renderer's theme colors
type Palette struct {
	Accent     RGB
	Purple     RGB
	IdleNode   RGB
	Pulse      RGB
	Background RGB
}

// DefaultPalette returns the stock blue/purple theme
func DefaultPalette() Palette {
	return Palette{
		Accent:     FromTriple(visual.ColorAccent),
		Purple:     FromTriple(visual.ColorPurple),
		IdleNode:   FromTriple(visual.ColorIdleNode),
		Pulse:      FromTriple(visual.ColorPulse),
		Background: FromTriple(visual.ColorBackground),
	}
}

// Renderer draws a state snapshot onto a Canvas
// It reads state only; fusion cosmetics are applied by the simulation step
type Renderer struct {
	Palette        Palette
	ConnectionDist float64
	ActiveEnergy   float64
}

// NewRenderer creates a renderer with stock thresholds
func NewRenderer(p Palette) *Renderer {
	return &Renderer{
		Palette:        p,
		ConnectionDist: parameter.ConnectionDist,
		ActiveEnergy:   parameter.ActiveEnergy,
	}
}

// Draw clears the canvas and paints connections, nodes, then pulses
func (r *Renderer) Draw(st *core.State, c Canvas) {
	c.Clear()
	r.drawConnections(st, c)
	r.drawNodes(st, c)
	r.drawPulses(st, c)
}

func (r *Renderer) drawConnections(st *core.State, c Canvas) {
	fusion := st.Mode.Fusion
	threshold := r.ConnectionDist
	idleMul := visual.IdleLinkAlphaChaos
	if fusion {
		threshold = visual.FusionLinkDist
		idleMul = visual.IdleLinkAlphaFusion
	}
	if !(threshold > 0) {
		return
	}

	nodes := st.Nodes
	for i := 0; i < len(nodes); i++ {
		a := &nodes[i]
		if !vmath.Finite2(a.X, a.Y) {
			continue
		}
		for j := i + 1; j < len(nodes); j++ {
			b := &nodes[j]
			if !vmath.Finite2(b.X, b.Y) {
				continue
			}
			d := vmath.Distance(a.X, a.Y, b.X, b.Y)
			if d >= threshold {
				continue
			}

			alpha := (1 - d/threshold) * visual.LinkAlpha
			if a.Active(r.ActiveEnergy) || b.Active(r.ActiveEnergy) {
				c.StrokeLine(a.X, a.Y, b.X, b.Y, visual.ActiveLinkWidth,
					r.Palette.Purple.WithAlpha(alpha*visual.ActiveLinkAlphaMul))
			} else {
				c.StrokeLine(a.X, a.Y, b.X, b.Y, visual.IdleLinkWidth,
					r.Palette.Accent.WithAlpha(alpha*idleMul))
			}
		}
	}
}

func (r *Renderer) drawNodes(st *core.State, c Canvas) {
	for i := range st.Nodes {
		n := &st.Nodes[i]
		if !vmath.Finite2(n.X, n.Y) {
			continue
		}
		radius := n.Radius + n.Energy*visual.NodeEnergyGrow
		if n.Active(r.ActiveEnergy) {
			c.FillCircle(n.X, n.Y, radius,
				r.Palette.Purple.WithAlpha(visual.NodeBaseAlpha+visual.NodeEnergyAlpha*n.Energy))
		} else {
			c.FillCircle(n.X, n.Y, radius, r.Palette.IdleNode.WithAlpha(visual.IdleNodeAlpha))
		}
	}
}

func (r *Renderer) drawPulses(st *core.State, c Canvas) {
	radius := visual.PulseRadius
	if st.Mode.Fusion {
		radius = visual.PulseRadiusFusion
	}
	for i := range st.Pulses {
		p := &st.Pulses[i]
		if !vmath.Finite2(p.X, p.Y) {
			continue
		}
		// Halo stands in for a shadow blur
		c.FillCircle(p.X, p.Y, radius*visual.PulseHaloScale, r.Palette.Pulse.WithAlpha(visual.PulseHaloAlpha))
		c.FillCircle(p.X, p.Y, radius, r.Palette.Pulse.WithAlpha(1))
	}
}
