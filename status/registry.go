// Package status is a small metrics facade written by the simulation and read by HUDs and tools
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys published by the simulation
const (
	KeyTicks      = "sim.ticks"
	KeyPulses     = "sim.pulses"
	KeySpawned    = "sim.spawned"
	KeyFusion     = "sim.fusion"
	KeyEnergyMean = "sim.energy.mean"
	KeyEnergyMax  = "sim.energy.max"
	KeyKinetic    = "sim.kinetic"
)

// Registry groups typed metric maps
// Writers cache cell pointers at construction and store directly each tick
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot renders every metric as key/value strings in sorted order per type
func (r *Registry) Snapshot() [][2]string {
	out := make([][2]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, [2]string{k, fmt.Sprintf("%t", v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, [2]string{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, [2]string{k, fmt.Sprintf("%.3f", v.Get())})
	})
	return out
}
