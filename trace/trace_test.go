package trace

import (
	"bytes"
	"image/png"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/engine"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/render"
)

func newSim(width float64) *engine.Simulation {
	s := core.NewSurface(parameter.SurfaceHeight)
	s.Resize(width, 1)
	opts := engine.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(11))
	return engine.NewSimulation(s, opts)
}

func TestRunRecordsEveryTick(t *testing.T) {
	sim := newSim(800)
	rec := NewRecorder(sim.Registry())
	Run(sim, Plan{Ticks: 320, SpawnEvery: 12}, rec)

	if len(rec.Samples) != 320 {
		t.Fatalf("samples = %d, want 320", len(rec.Samples))
	}
	if rec.Samples[0].Tick != 1 || rec.Samples[319].Tick != 320 {
		t.Errorf("ticks run %d..%d, want 1..320", rec.Samples[0].Tick, rec.Samples[319].Tick)
	}
	if got := rec.Samples[319].Spawned; got != 27 {
		t.Errorf("spawned = %d, want 27", got)
	}
	if got := rec.FusionTick(); got != 301 {
		t.Errorf("fusion tick = %d, want 301", got)
	}

	chaos, fusion := rec.Split()
	if len(chaos) != 300 || len(fusion) != 20 {
		t.Errorf("split = %d/%d, want 300/20", len(chaos), len(fusion))
	}
	for _, s := range rec.Samples {
		if s.EnergyMean < 0 || s.EnergyMax > 1 || s.EnergyMean > s.EnergyMax+1e-12 {
			t.Fatalf("tick %d: energy mean %v max %v out of range", s.Tick, s.EnergyMean, s.EnergyMax)
		}
	}
}

func TestRunWithoutSpawning(t *testing.T) {
	sim := newSim(800)
	rec := NewRecorder(sim.Registry())
	Run(sim, Plan{Ticks: 50}, rec)

	if rec.FusionTick() != -1 {
		t.Errorf("fusion tick = %d, want -1", rec.FusionTick())
	}
	for _, s := range rec.Samples {
		if s.Pulses != 0 || s.Spawned != 0 {
			t.Fatalf("tick %d: pulses %d spawned %d, want none", s.Tick, s.Pulses, s.Spawned)
		}
	}
	if _, fusion := rec.Split(); fusion != nil {
		t.Errorf("fusion split = %d samples, want nil", len(fusion))
	}
}

func TestSpawnEvery(t *testing.T) {
	tests := []struct {
		spawn, frame, want int
	}{
		{200, 16, 13},
		{200, 20, 10},
		{5, 16, 1},
		{0, 16, 0},
		{200, 0, 0},
	}
	for _, tt := range tests {
		if got := SpawnEvery(tt.spawn, tt.frame); got != tt.want {
			t.Errorf("SpawnEvery(%d, %d) = %d, want %d", tt.spawn, tt.frame, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{4, 1, 3, 2})
	if s.N != 4 || s.Mean != 2.5 || s.Max != 4 {
		t.Errorf("summary = %+v", s)
	}
	if math.Abs(s.StdDev-math.Sqrt(5.0/3)) > 1e-9 {
		t.Errorf("stddev = %v, want %v", s.StdDev, math.Sqrt(5.0/3))
	}
	if s.P50 < 2 || s.P50 > 3 {
		t.Errorf("p50 = %v, want within [2, 3]", s.P50)
	}
	if s.P95 != 4 {
		t.Errorf("p95 = %v, want 4", s.P95)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("empty summary = %+v", got)
	}
	if got := Summarize([]float64{7}); got.StdDev != 0 || got.Mean != 7 {
		t.Errorf("single summary = %+v", got)
	}
}

func TestDominantPeriod(t *testing.T) {
	xs := make([]float64, 200)
	for i := range xs {
		xs[i] = 3 + math.Sin(2*math.Pi*float64(i)/20)
	}
	if got := DominantPeriod(xs); math.Abs(got-20) > 1e-9 {
		t.Errorf("period = %v, want 20", got)
	}

	flat := make([]float64, 64)
	for i := range flat {
		flat[i] = 0.5
	}
	if got := DominantPeriod(flat); got != 0 {
		t.Errorf("flat period = %v, want 0", got)
	}
	if got := DominantPeriod([]float64{1, 2}); got != 0 {
		t.Errorf("short period = %v, want 0", got)
	}
}

func TestReport(t *testing.T) {
	sim := newSim(800)
	rec := NewRecorder(sim.Registry())
	Run(sim, Plan{Ticks: 310, SpawnEvery: 10}, rec)

	out := Report(rec, ReportOptions{
		Title:       "fusion trace",
		Palette:     render.DefaultPalette(),
		PlotWidth:   40,
		PlotHeight:  4,
		ShowPalette: true,
	})
	for _, want := range []string{
		"FUSION TRACE", "fusion at", "tick 301", "energy.mean", "kinetic", "pulses",
		render.DefaultPalette().Accent.Hex(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	rec := NewRecorder(newSim(0).Registry())
	out := Report(rec, ReportOptions{Title: "empty"})
	if !strings.Contains(out, "never") {
		t.Errorf("empty report should state no fusion:\n%s", out)
	}
}

func TestSnapshot(t *testing.T) {
	sim := newSim(120)
	sim.Spawn()
	sim.Step()
	r := render.NewRenderer(render.DefaultPalette())

	var buf bytes.Buffer
	if err := Snapshot(&buf, sim.State, r); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 500 {
		t.Errorf("bounds = %v, want 120x500", b)
	}

	if err := Snapshot(&bytes.Buffer{}, newSim(0).State, r); err == nil {
		t.Error("zero-width snapshot should fail to encode")
	}
}
