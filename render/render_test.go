package render

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/parameter/visual"
)

type strokeCall struct {
	x0, y0, x1, y1, w float64
	c                 RGBA
}

type circleCall struct {
	x, y, r float64
	c       RGBA
}

// recordingCanvas captures draw calls in order
type recordingCanvas struct {
	clears  int
	strokes []strokeCall
	circles []circleCall
}

func (rc *recordingCanvas) Clear() { rc.clears++ }

func (rc *recordingCanvas) StrokeLine(x0, y0, x1, y1, w float64, c RGBA) {
	rc.strokes = append(rc.strokes, strokeCall{x0, y0, x1, y1, w, c})
}

func (rc *recordingCanvas) FillCircle(x, y, r float64, c RGBA) {
	rc.circles = append(rc.circles, circleCall{x, y, r, c})
}

func stateWith(width float64, nodes []core.Node) *core.State {
	s := core.NewSurface(parameter.SurfaceHeight)
	s.Resize(width, 1)
	return core.NewState(s, nodes)
}

func TestRendererConnections(t *testing.T) {
	idle := core.Node{Kinetic: core.Kinetic{X: 100, Y: 100}, Radius: 3}
	near := core.Node{Kinetic: core.Kinetic{X: 160, Y: 180}, Radius: 3} // d = 100, excluded
	charged := core.Node{Kinetic: core.Kinetic{X: 100, Y: 150}, Radius: 3, Energy: 0.5}

	st := stateWith(800, []core.Node{idle, near, charged})
	rc := &recordingCanvas{}
	NewRenderer(DefaultPalette()).Draw(st, rc)

	if rc.clears != 1 {
		t.Errorf("clears = %d, want 1", rc.clears)
	}

	// idle-charged (d=50) and near-charged (d=~67.1) connect, both touch an active node
	if len(rc.strokes) != 2 {
		t.Fatalf("strokes = %d, want 2", len(rc.strokes))
	}
	first := rc.strokes[0]
	if first.w != visual.ActiveLinkWidth {
		t.Errorf("active link width = %v", first.w)
	}
	if first.c.RGB != FromTriple(visual.ColorPurple) {
		t.Errorf("active link color = %v", first.c.RGB)
	}
	want := (1 - 50.0/100.0) * visual.LinkAlpha * visual.ActiveLinkAlphaMul
	if math.Abs(first.c.A-want) > 1e-12 {
		t.Errorf("active link alpha = %v, want %v", first.c.A, want)
	}
}

func TestRendererIdleLinkAndFusionThreshold(t *testing.T) {
	a := core.Node{Kinetic: core.Kinetic{X: 100, Y: 100}, Radius: 3}
	b := core.Node{Kinetic: core.Kinetic{X: 100, Y: 160}, Radius: 3}
	st := stateWith(800, []core.Node{a, b})

	rc := &recordingCanvas{}
	r := NewRenderer(DefaultPalette())
	r.Draw(st, rc)
	if len(rc.strokes) != 1 {
		t.Fatalf("chaos strokes = %d, want 1", len(rc.strokes))
	}
	s := rc.strokes[0]
	want := (1 - 60.0/100.0) * visual.LinkAlpha * visual.IdleLinkAlphaChaos
	if s.w != visual.IdleLinkWidth || s.c.RGB != FromTriple(visual.ColorAccent) || math.Abs(s.c.A-want) > 1e-12 {
		t.Errorf("idle link = %+v, want accent width %v alpha %v", s, visual.IdleLinkWidth, want)
	}

	// 60 apart is beyond the fusion threshold
	st.Mode.Fusion = true
	rc = &recordingCanvas{}
	r.Draw(st, rc)
	if len(rc.strokes) != 0 {
		t.Errorf("fusion strokes = %d, want 0", len(rc.strokes))
	}
}

func TestRendererNodesAndPulses(t *testing.T) {
	active := core.Node{Kinetic: core.Kinetic{X: 10, Y: 10}, Radius: 3, Energy: 1}
	idle := core.Node{Kinetic: core.Kinetic{X: 400, Y: 400}, Radius: 6}
	bad := core.Node{Kinetic: core.Kinetic{X: math.NaN(), Y: 10}, Radius: 3}
	st := stateWith(800, []core.Node{active, idle, bad})
	st.Pulses = []core.Pulse{{X: 200, Y: 200, Life: 1}, {X: math.Inf(1), Y: 0, Life: 1}}

	rc := &recordingCanvas{}
	NewRenderer(DefaultPalette()).Draw(st, rc)

	// 2 finite nodes, 1 finite pulse drawn as halo + core
	if len(rc.circles) != 4 {
		t.Fatalf("circles = %d, want 4", len(rc.circles))
	}
	n0 := rc.circles[0]
	if n0.r != 3+visual.NodeEnergyGrow || math.Abs(n0.c.A-1.0) > 1e-12 || n0.c.RGB != FromTriple(visual.ColorPurple) {
		t.Errorf("active node drawn as %+v", n0)
	}
	n1 := rc.circles[1]
	if n1.r != 6 || n1.c.A != visual.IdleNodeAlpha {
		t.Errorf("idle node drawn as %+v", n1)
	}
	halo, coreDot := rc.circles[2], rc.circles[3]
	if coreDot.r != visual.PulseRadius || coreDot.c.A != 1 {
		t.Errorf("pulse core drawn as %+v", coreDot)
	}
	if halo.r <= coreDot.r || halo.c.A >= 1 {
		t.Errorf("pulse halo drawn as %+v", halo)
	}
}

func TestRenderZeroWidthSurface(t *testing.T) {
	s := core.NewSurface(parameter.SurfaceHeight)
	s.Resize(0, 2)
	nodes := core.NewPopulation(core.DefaultPopulationConfig(), s, rand.New(rand.NewSource(1)))
	st := core.NewState(s, nodes)
	st.Pulses = append(st.Pulses, core.Pulse{X: 0, Y: 10, Life: 1})

	ras := NewSurfaceRaster(s, RGB{})
	if w, _ := ras.Size(); w != 0 {
		t.Fatalf("raster width = %d, want 0", w)
	}
	NewRenderer(DefaultPalette()).Draw(st, ras)
}

func TestRasterZeroSizeNoop(t *testing.T) {
	ras := NewRaster(0, 0, 1, RGB{})
	ras.Clear()
	ras.FillCircle(0, 0, 10, RGB{R: 255}.WithAlpha(1))
	ras.StrokeLine(0, 0, 10, 10, 2, RGB{R: 255}.WithAlpha(1))
	if len(ras.Image().Pix) != 0 {
		t.Errorf("zero-size raster has %d bytes", len(ras.Image().Pix))
	}
}

func TestRasterFillCircle(t *testing.T) {
	ras := NewRaster(40, 40, 2, RGB{})
	ras.Clear()
	ras.FillCircle(10, 10, 3, RGB{R: 200, G: 100, B: 50}.WithAlpha(1))

	// Logical (10,10) is pixel (20,20) at ratio 2
	if got := ras.At(20, 20); got != (RGB{R: 200, G: 100, B: 50}) {
		t.Errorf("center pixel = %+v", got)
	}
	if got := ras.At(2, 2); got != (RGB{}) {
		t.Errorf("far pixel = %+v, want background", got)
	}
	if got := ras.At(20, 29); got != (RGB{}) {
		t.Errorf("pixel outside radius = %+v, want background", got)
	}
}

func TestRasterBlendsAlpha(t *testing.T) {
	ras := NewRaster(20, 20, 1, RGB{R: 100, G: 100, B: 100})
	ras.Clear()
	ras.FillCircle(10, 10, 5, RGB{R: 200, G: 200, B: 200}.WithAlpha(0.5))

	got := ras.At(10, 10)
	if got.R < 148 || got.R > 152 {
		t.Errorf("half-alpha center = %+v, want ~150", got)
	}
}

func TestRasterStrokeLine(t *testing.T) {
	ras := NewRaster(30, 30, 1, RGB{})
	ras.Clear()
	ras.StrokeLine(2, 15, 28, 15, 4, RGB{G: 255}.WithAlpha(1))

	if got := ras.At(15, 15); got.G != 255 {
		t.Errorf("on-line pixel = %+v", got)
	}
	if got := ras.At(15, 2); got != (RGB{}) {
		t.Errorf("off-line pixel = %+v", got)
	}

	// Degenerate segment draws nothing
	ras.Clear()
	ras.StrokeLine(5, 5, 5, 5, 4, RGB{G: 255}.WithAlpha(1))
	if got := ras.At(5, 5); got != (RGB{}) {
		t.Errorf("degenerate stroke painted %+v", got)
	}
}

func TestRasterResizeClamps(t *testing.T) {
	ras := NewRaster(10, 10, 1, RGB{})
	ras.Resize(-5, 8, math.NaN())
	if w, h := ras.Size(); w != 0 || h != 8 {
		t.Errorf("size = %dx%d, want 0x8", w, h)
	}
	if ras.Ratio() != 1 {
		t.Errorf("ratio = %v, want 1", ras.Ratio())
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#2997ff", RGB{41, 151, 255}, false},
		{"bf5af2", RGB{191, 90, 242}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{"#12345", RGB{}, true},
		{"#zzzzzz", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if FromTriple(visual.ColorAccent).Hex() != "#2997ff" {
		t.Errorf("Hex() = %s", FromTriple(visual.ColorAccent).Hex())
	}
}

func TestBlendAndScale(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{200, 100, 50}
	if Blend(a, b, 1) != b || Blend(a, b, 0) != a {
		t.Error("Blend endpoints")
	}
	if got := Blend(a, b, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Blend half = %+v", got)
	}
	if got := Scale(b, 2); got != (RGB{255, 200, 100}) {
		t.Errorf("Scale clamp = %+v", got)
	}
}
