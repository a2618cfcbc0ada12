package physics

import (
	"math"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/vmath"
)

// AdvancePulse moves a pulse one tick rightward with a sinusoidal wobble and burns life
func AdvancePulse(p *core.Pulse, inference bool, pp *PulseProfile) {
	if inference {
		p.X += pp.InferenceSpeed
		p.Y += math.Sin(p.X*pp.InferenceWobbleFreq) * pp.WobbleAmp
	} else {
		p.X += pp.Speed
		p.Y += math.Sin(p.X*pp.WobbleFreq) * pp.WobbleAmp
	}

	p.Life -= pp.LifeDecay
	if p.Life < parameter.PulseLifeEpsilon {
		p.Life = 0
	}
}

// Energize raises the energy of every node within range of the pulse, clamped to 1
// Returns the number of nodes touched
func Energize(nodes []core.Node, p *core.Pulse, pp *PulseProfile) int {
	touched := 0
	for i := range nodes {
		n := &nodes[i]
		if vmath.DistanceSq(p.X, p.Y, n.X, n.Y) < pp.EnergizeDistSq {
			n.Energy = math.Min(n.Energy+pp.EnergyBoost, 1.0)
			touched++
		}
	}
	return touched
}
