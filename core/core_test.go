package core

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/fusion-field/parameter"
)

func newTestSurface(width float64) *Surface {
	s := NewSurface(parameter.SurfaceHeight)
	s.Resize(width, 1)
	return s
}

func TestPopulationLayout(t *testing.T) {
	s := newTestSurface(800)
	nodes := NewPopulation(DefaultPopulationConfig(), s, rand.New(rand.NewSource(1)))

	want := parameter.InputAnchors + parameter.NodeCount + parameter.OutputAnchors
	if len(nodes) != want {
		t.Fatalf("expected %d nodes, got %d", want, len(nodes))
	}

	for i := 0; i < parameter.InputAnchors; i++ {
		n := nodes[i]
		if !n.Fixed || n.Role != RoleInput {
			t.Errorf("node %d: expected fixed input anchor, got fixed=%v role=%v", i, n.Fixed, n.Role)
		}
		if n.X != parameter.AnchorMargin {
			t.Errorf("input %d: x = %v, want %v", i, n.X, parameter.AnchorMargin)
		}
		wantY := parameter.SurfaceHeight / 6 * float64(i+1)
		if n.Y != wantY {
			t.Errorf("input %d: y = %v, want %v", i, n.Y, wantY)
		}
	}

	for i := len(nodes) - parameter.OutputAnchors; i < len(nodes); i++ {
		n := nodes[i]
		if !n.Fixed || n.Role != RoleOutput {
			t.Errorf("node %d: expected fixed output anchor", i)
		}
		if n.X != 800-parameter.AnchorMargin {
			t.Errorf("output %d: x = %v, want %v", i, n.X, 800-parameter.AnchorMargin)
		}
	}

	for i := parameter.InputAnchors; i < len(nodes)-parameter.OutputAnchors; i++ {
		n := nodes[i]
		if n.Fixed {
			t.Errorf("hidden node %d is fixed", i)
		}
		if n.Mass < 1 || n.Mass >= 3 {
			t.Errorf("hidden node %d: mass %v outside [1, 3)", i, n.Mass)
		}
		if n.Radius != parameter.NodeRadius && n.Radius != parameter.BiasRadius {
			t.Errorf("hidden node %d: unexpected radius %v", i, n.Radius)
		}
		if n.X < 250 || n.X > 550 || n.Y < 100 || n.Y > 400 {
			t.Errorf("hidden node %d at (%v, %v) outside spawn box", i, n.X, n.Y)
		}
	}

	for i := range nodes {
		if nodes[i].Index != i {
			t.Errorf("node %d has index %d", i, nodes[i].Index)
		}
		if nodes[i].Energy != 0 {
			t.Errorf("node %d starts with energy %v", i, nodes[i].Energy)
		}
	}
}

func TestSurfaceResize(t *testing.T) {
	tests := []struct {
		name          string
		width, ratio  float64
		wantW         float64
		wantBW, wantB int
	}{
		{"normal", 640, 1, 640, 640, 500},
		{"hidpi", 640, 2, 640, 1280, 1000},
		{"zero width", 0, 2, 0, 0, 1000},
		{"negative width", -20, 1, 0, 0, 500},
		{"bad ratio", 100, 0, 100, 100, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(parameter.SurfaceHeight)
			s.Resize(tt.width, tt.ratio)
			if s.Width() != tt.wantW {
				t.Errorf("width = %v, want %v", s.Width(), tt.wantW)
			}
			if s.Height() != parameter.SurfaceHeight {
				t.Errorf("height = %v, want %v", s.Height(), parameter.SurfaceHeight)
			}
			bw, bh := s.BufferSize()
			if bw != tt.wantBW || bh != tt.wantB {
				t.Errorf("buffer = %dx%d, want %dx%d", bw, bh, tt.wantBW, tt.wantB)
			}
		})
	}
}

func TestRemovePulseReverseTraversal(t *testing.T) {
	st := NewState(newTestSurface(100), nil)
	for i := 0; i < 5; i++ {
		st.Pulses = append(st.Pulses, Pulse{X: float64(i), Life: 1})
	}

	for i := len(st.Pulses) - 1; i >= 0; i-- {
		if int(st.Pulses[i].X)%2 == 0 {
			st.RemovePulse(i)
		}
	}

	if len(st.Pulses) != 2 || st.Pulses[0].X != 1 || st.Pulses[1].X != 3 {
		t.Errorf("unexpected pulses after removal: %+v", st.Pulses)
	}
}

func TestPulseExpired(t *testing.T) {
	p := Pulse{X: 10, Life: 0.5}
	if p.Expired(100) {
		t.Error("live in-bounds pulse reported expired")
	}
	p.X = 101
	if !p.Expired(100) {
		t.Error("pulse past right edge not expired")
	}
	p.X, p.Life = 10, 0
	if !p.Expired(100) {
		t.Error("zero-life pulse not expired")
	}
}
