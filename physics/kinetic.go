package physics

import (
	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/vmath"
)

// Integrate damps velocity, advances position, bounces off walls and decays energy
// Fixed nodes are untouched. A non-finite result is discarded: the node keeps its
// previous position and stops
func Integrate(n *core.Node, width, height float64, ip *IntegrationProfile) {
	if n.Fixed {
		return
	}

	prevX, prevY := n.X, n.Y

	n.VX *= ip.Damping
	n.VY *= ip.Damping
	n.X += n.VX
	n.Y += n.VY

	if !vmath.Finite2(n.X, n.Y) || !vmath.Finite2(n.VX, n.VY) {
		n.X, n.Y = prevX, prevY
		n.VX, n.VY = 0, 0
	}

	ReflectBounds(n, width, height)

	n.Energy = vmath.Clamp01(n.Energy * ip.EnergyDecay)
}

// ReflectBoundsX inverts horizontal velocity when outside [0, width], returns true if reflected
// Position is not clamped; the node drifts back on the following ticks
func ReflectBoundsX(k *core.Kinetic, width float64) bool {
	if k.X < 0 || k.X > width {
		k.VX, k.VY = vmath.ReflectAxisX(k.VX, k.VY)
		return true
	}
	return false
}

// ReflectBoundsY inverts vertical velocity when outside [0, height], returns true if reflected
func ReflectBoundsY(k *core.Kinetic, height float64) bool {
	if k.Y < 0 || k.Y > height {
		k.VX, k.VY = vmath.ReflectAxisY(k.VX, k.VY)
		return true
	}
	return false
}

// ReflectBounds handles both axes, returns true if any reflection occurred
func ReflectBounds(n *core.Node, width, height float64) bool {
	rx := ReflectBoundsX(&n.Kinetic, width)
	ry := ReflectBoundsY(&n.Kinetic, height)
	return rx || ry
}

// KineticEnergy returns the sum of m*v²/2 over floating nodes
func KineticEnergy(nodes []core.Node) float64 {
	total := 0.0
	for i := range nodes {
		n := &nodes[i]
		if n.Fixed {
			continue
		}
		total += 0.5 * n.Mass * (n.VX*n.VX + n.VY*n.VY)
	}
	return total
}
