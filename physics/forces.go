package physics

import (
	"math"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/vmath"
)

// ForceMode selects the force policy applied before integration
type ForceMode uint8

const (
	// ForceChaos applies pairwise proximity springs between all nodes
	ForceChaos ForceMode = iota
	// ForceGrid pulls floating nodes onto a centered grid
	ForceGrid
)

func (m ForceMode) String() string {
	switch m {
	case ForceChaos:
		return "chaos"
	case ForceGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// ModeFor maps phase flags to a force policy
func ModeFor(m core.Mode) ForceMode {
	if m.Fusion {
		return ForceGrid
	}
	return ForceChaos
}

// ApplyForces mutates node velocities (and, for the grid, jitters positions) for one tick
func ApplyForces(mode ForceMode, st *core.State, p *Profile) {
	switch mode {
	case ForceChaos:
		applySprings(st.Nodes, &p.Spring)
	case ForceGrid:
		applyGrid(st, &p.Grid)
	}
}

// applySprings visits every unordered pair once
func applySprings(nodes []core.Node, sp *SpringProfile) {
	for i := 0; i < len(nodes); i++ {
		a := &nodes[i]
		for j := i + 1; j < len(nodes); j++ {
			SpringPair(a, &nodes[j], sp)
		}
	}
}

// SpringPair applies an equal and opposite impulse along the pair axis when closer than RestDist
// Each side is scaled by its own inverse mass; fixed nodes absorb nothing
// Returns the raw force components applied to a (b receives the negation)
func SpringPair(a, b *core.Node, sp *SpringProfile) (fx, fy float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= sp.RestDist || !vmath.Finite(dist) {
		return 0, 0
	}

	// Coincident nodes have no axis
	nx, ny := vmath.Normalize2D(dx, dy)
	force := (dist - sp.RestDist) * sp.Strength
	fx, fy = nx*force, ny*force

	if !a.Fixed {
		a.VX += fx / a.Mass
		a.VY += fy / a.Mass
	}
	if !b.Fixed {
		b.VX -= fx / b.Mass
		b.VY -= fy / b.Mass
	}
	return fx, fy
}

// GridOrigin returns the top-left cell center of a grid holding count cells, centered on the surface
func GridOrigin(width, height float64, count int, gp *GridProfile) (x, y float64) {
	cols := gp.Cols
	if cols < 1 {
		cols = 1
	}
	rows := (count + cols - 1) / cols
	if rows < 1 {
		rows = 1
	}
	x = width/2 - float64(cols-1)*gp.Gap/2
	y = height/2 - float64(rows-1)*gp.Gap/2
	return x, y
}

// GridCell returns the column and row of grid index g
func GridCell(g int, gp *GridProfile) (col, row int) {
	cols := gp.Cols
	if cols < 1 {
		cols = 1
	}
	return g % cols, g / cols
}

// GridTarget returns the surface position of grid index g relative to origin
func GridTarget(g int, originX, originY float64, gp *GridProfile) (x, y float64) {
	col, row := GridCell(g, gp)
	return originX + float64(col)*gp.Gap, originY + float64(row)*gp.Gap
}

// applyGrid assigns floating nodes to successive cells in population order
func applyGrid(st *core.State, gp *GridProfile) {
	ox, oy := GridOrigin(st.Surface.Width(), st.Surface.Height(), st.HiddenCount(), gp)
	phase := float64(st.Ticks) * gp.JitterFreq

	g := 0
	for i := range st.Nodes {
		n := &st.Nodes[i]
		if n.Fixed {
			continue
		}

		tx, ty := GridTarget(g, ox, oy, gp)
		n.VX += (tx - n.X) * gp.Pull
		n.VY += (ty - n.Y) * gp.Pull
		n.VX *= gp.Damping
		n.VY *= gp.Damping

		// Breathing
		n.X += math.Sin(phase+float64(n.Index)) * gp.JitterAmp
		n.Y += math.Cos(phase+float64(n.Index)) * gp.JitterAmp

		g++
	}
}
