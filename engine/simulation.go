package engine

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/physics"
	"github.com/lixenwraith/fusion-field/status"
)

// Options configures a Simulation; start from DefaultOptions
type Options struct {
	Population core.PopulationConfig
	Profile    physics.Profile

	FusionThreshold   int
	FusionEnergyDecay float64
	FusionRadius      float64

	// Rand drives population seeding and anchor selection; nil seeds from the clock
	Rand *rand.Rand

	// Registry receives per-tick metrics; nil allocates a private one
	Registry *status.Registry
}

// DefaultOptions returns stock tuning with a clock-seeded RNG
func DefaultOptions() Options {
	return Options{
		Population:        core.DefaultPopulationConfig(),
		Profile:           physics.DefaultProfile(),
		FusionThreshold:   parameter.FusionThreshold,
		FusionEnergyDecay: parameter.FusionEnergyDecay,
		FusionRadius:      parameter.FusionRadius,
	}
}

// Simulation owns the state and advances it one tick at a time
// Not safe for concurrent use; the Loop serializes every access
type Simulation struct {
	State   *core.State
	Profile physics.Profile
	Mode    *ModeController
	Spawner *Spawner

	fusionEnergyDecay float64
	fusionRadius      float64

	registry *status.Registry
	metrics  simMetrics
}

// simMetrics caches registry cells written every tick
type simMetrics struct {
	ticks      *atomic.Int64
	pulses     *atomic.Int64
	spawned    *atomic.Int64
	fusion     *atomic.Bool
	energyMean *status.AtomicFloat
	energyMax  *status.AtomicFloat
	kinetic    *status.AtomicFloat
}

// NewSimulation seeds a population on the surface
func NewSimulation(surface *core.Surface, opts Options) *Simulation {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	reg := opts.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}

	nodes := core.NewPopulation(opts.Population, surface, rng)

	s := &Simulation{
		State:             core.NewState(surface, nodes),
		Profile:           opts.Profile,
		Mode:              NewModeController(opts.FusionThreshold),
		Spawner:           NewSpawner(rng),
		fusionEnergyDecay: opts.FusionEnergyDecay,
		fusionRadius:      opts.FusionRadius,
		registry:          reg,
		metrics: simMetrics{
			ticks:      reg.Ints.Get(status.KeyTicks),
			pulses:     reg.Ints.Get(status.KeyPulses),
			spawned:    reg.Ints.Get(status.KeySpawned),
			fusion:     reg.Bools.Get(status.KeyFusion),
			energyMean: reg.Floats.Get(status.KeyEnergyMean),
			energyMax:  reg.Floats.Get(status.KeyEnergyMax),
			kinetic:    reg.Floats.Get(status.KeyKinetic),
		},
	}
	return s
}

// Registry returns the metrics registry the simulation publishes into
func (s *Simulation) Registry() *status.Registry {
	return s.registry
}

// Spawn emits one pulse
func (s *Simulation) Spawn() {
	if s.Spawner.Spawn(s.State) {
		s.metrics.spawned.Add(1)
		s.metrics.pulses.Store(int64(len(s.State.Pulses)))
	}
}

// Step advances all mutable state by exactly one tick
// Order: mode, forces, integration, pulses, fusion settling, metrics
func (s *Simulation) Step() {
	st := s.State
	s.Mode.Advance(st)

	physics.ApplyForces(physics.ModeFor(st.Mode), st, &s.Profile)

	w, h := st.Surface.Width(), st.Surface.Height()
	for i := range st.Nodes {
		physics.Integrate(&st.Nodes[i], w, h, &s.Profile.Integration)
	}

	s.updatePulses(w)

	if st.Mode.Fusion {
		s.settle()
	}

	s.publish()
}

// updatePulses walks from the end so removal never skips an element
func (s *Simulation) updatePulses(width float64) {
	st := s.State
	pp := &s.Profile.Pulse
	for i := len(st.Pulses) - 1; i >= 0; i-- {
		p := &st.Pulses[i]
		physics.AdvancePulse(p, st.Mode.Inference, pp)
		physics.Energize(st.Nodes, p, pp)
		if p.Expired(width) {
			st.RemovePulse(i)
		}
	}
}

// settle applies fusion cosmetics: uniform radius and faster energy fade on every node
func (s *Simulation) settle() {
	for i := range s.State.Nodes {
		n := &s.State.Nodes[i]
		n.Radius = s.fusionRadius
		n.Energy *= s.fusionEnergyDecay
	}
}

func (s *Simulation) publish() {
	st := s.State
	sum, peak := 0.0, 0.0
	for i := range st.Nodes {
		e := st.Nodes[i].Energy
		sum += e
		peak = math.Max(peak, e)
	}
	mean := 0.0
	if len(st.Nodes) > 0 {
		mean = sum / float64(len(st.Nodes))
	}

	s.metrics.ticks.Store(int64(st.Ticks))
	s.metrics.pulses.Store(int64(len(st.Pulses)))
	s.metrics.fusion.Store(st.Mode.Fusion)
	s.metrics.energyMean.Set(mean)
	s.metrics.energyMax.Set(peak)
	s.metrics.kinetic.Set(physics.KineticEnergy(st.Nodes))
}
