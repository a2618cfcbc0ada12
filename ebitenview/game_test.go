package ebitenview

import (
	"strings"
	"testing"

	"github.com/lixenwraith/fusion-field/app"
	"github.com/lixenwraith/fusion-field/config"
	"github.com/lixenwraith/fusion-field/parameter"
)

func newTestGame(t *testing.T, scale float64) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Simulation.Seed = 3
	g := NewGame(app.New(cfg, parameter.WindowWidth, 1))
	g.DeviceScale = func() float64 { return scale }
	return g
}

func TestLayoutFollowsWindowAndScale(t *testing.T) {
	g := newTestGame(t, 2)

	w, h := g.Layout(640, 400)
	if w != 1280 || h != int(2*parameter.SurfaceHeight) {
		t.Errorf("buffer = %d×%d, want 1280×%d", w, h, int(2*parameter.SurfaceHeight))
	}
	if g.app.Surface.Width() != 640 || g.canvas.Ratio != 2 {
		t.Errorf("surface width %v ratio %v", g.app.Surface.Width(), g.canvas.Ratio)
	}
}

func TestLayoutConfiguredRatioWins(t *testing.T) {
	g := newTestGame(t, 2)
	g.app.Config.Display.PixelRatio = 1

	if w, _ := g.Layout(640, 400); w != 640 {
		t.Errorf("buffer width = %d, want 640 with ratio override", w)
	}
}

func TestLayoutZeroWidth(t *testing.T) {
	g := newTestGame(t, 1)
	w, h := g.Layout(0, 0)
	if w != 1 || h < 1 {
		t.Errorf("buffer = %d×%d, want a positive size", w, h)
	}
	if g.app.Surface.Width() != 0 {
		t.Errorf("surface width = %v, want 0", g.app.Surface.Width())
	}
}

func TestHUDTextShowsPause(t *testing.T) {
	g := newTestGame(t, 1)
	if strings.Contains(g.hudText(), "paused") {
		t.Error("hud shows paused before pausing")
	}
	g.Loop().Pause()
	if !strings.Contains(g.hudText(), "paused") || !strings.Contains(g.hudText(), "chaos") {
		t.Errorf("hud = %q", g.hudText())
	}
}
