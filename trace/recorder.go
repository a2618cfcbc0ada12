// Package trace runs a simulation headless and records its published metrics per tick
package trace

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/fusion-field/engine"
	"github.com/lixenwraith/fusion-field/status"
)

// Sample is one tick's worth of registry values
type Sample struct {
	Tick       int
	Pulses     int
	Spawned    int
	Fusion     bool
	EnergyMean float64
	EnergyMax  float64
	Kinetic    float64
}

// Recorder reads the registry after each step; cells are cached on construction
type Recorder struct {
	Samples []Sample

	ticks      *atomic.Int64
	pulses     *atomic.Int64
	spawned    *atomic.Int64
	fusion     *atomic.Bool
	energyMean *status.AtomicFloat
	energyMax  *status.AtomicFloat
	kinetic    *status.AtomicFloat
}

// NewRecorder binds to the simulation metric keys of reg
func NewRecorder(reg *status.Registry) *Recorder {
	return &Recorder{
		ticks:      reg.Ints.Get(status.KeyTicks),
		pulses:     reg.Ints.Get(status.KeyPulses),
		spawned:    reg.Ints.Get(status.KeySpawned),
		fusion:     reg.Bools.Get(status.KeyFusion),
		energyMean: reg.Floats.Get(status.KeyEnergyMean),
		energyMax:  reg.Floats.Get(status.KeyEnergyMax),
		kinetic:    reg.Floats.Get(status.KeyKinetic),
	}
}

// Record appends the current registry values
func (r *Recorder) Record() {
	r.Samples = append(r.Samples, Sample{
		Tick:       int(r.ticks.Load()),
		Pulses:     int(r.pulses.Load()),
		Spawned:    int(r.spawned.Load()),
		Fusion:     r.fusion.Load(),
		EnergyMean: r.energyMean.Get(),
		EnergyMax:  r.energyMax.Get(),
		Kinetic:    r.kinetic.Get(),
	})
}

// Series extracts one value per sample
func (r *Recorder) Series(pick func(Sample) float64) []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = pick(s)
	}
	return out
}

// FusionTick returns the first tick recorded in fusion, or -1
func (r *Recorder) FusionTick() int {
	for _, s := range r.Samples {
		if s.Fusion {
			return s.Tick
		}
	}
	return -1
}

// Split returns the samples before and from the fusion tick
func (r *Recorder) Split() (chaos, fusion []Sample) {
	for i, s := range r.Samples {
		if s.Fusion {
			return r.Samples[:i], r.Samples[i:]
		}
	}
	return r.Samples, nil
}

// Plan is a headless schedule measured in ticks
type Plan struct {
	Ticks int
	// SpawnEvery emits one pulse before every Nth step; 0 disables spawning
	SpawnEvery int
}

// SpawnEvery converts a wall-clock spawn period into whole frames, at least 1
func SpawnEvery(spawnMS, frameMS int) int {
	if frameMS <= 0 || spawnMS <= 0 {
		return 0
	}
	return max(1, int(math.Round(float64(spawnMS)/float64(frameMS))))
}

// Run drives sim through the plan, recording after every step
func Run(sim *engine.Simulation, plan Plan, rec *Recorder) {
	for t := 0; t < plan.Ticks; t++ {
		if plan.SpawnEvery > 0 && t%plan.SpawnEvery == 0 {
			sim.Spawn()
		}
		sim.Step()
		rec.Record()
	}
}
