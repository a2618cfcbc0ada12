package ebitenview

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/fusion-field/app"
	"github.com/lixenwraith/fusion-field/engine"
)

// Game drives the loop from ebiten's update callback and draws in its draw callback
// Ebiten calls Update, Draw and Layout from one goroutine, so the loop is never started
type Game struct {
	app    *app.App
	loop   *engine.Loop
	canvas Canvas

	// DeviceScale reports the monitor scale factor; replaced in tests
	DeviceScale func() float64

	lastW int
}

// NewGame wraps an assembled app
func NewGame(a *app.App) *Game {
	g := &Game{
		app: a,
		canvas: Canvas{
			Ratio:      a.Surface.Ratio(),
			Background: a.Renderer.Palette.Background,
		},
		DeviceScale: func() float64 { return ebiten.Monitor().DeviceScaleFactor() },
	}
	g.loop = a.NewLoop(nil, nil)
	return g
}

// Loop exposes the scheduler
func (g *Game) Loop() *engine.Loop { return g.loop }

// Update handles input, then drains spawns and steps once
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyP):
		log.Printf("input: paused=%t", g.loop.TogglePause())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.app.Sound.SetMuted(g.app.Sound.Enabled())
	case inpututil.IsKeyJustPressed(ebiten.KeyN) && g.loop.Paused():
		g.loop.Step()
	}

	g.loop.Pump()
	return nil
}

// Draw renders the current state
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Dst = screen
	g.app.Renderer.Draw(g.app.Simulation.State, &g.canvas)

	if g.app.Config.Display.ShowHUD {
		ebitenutil.DebugPrint(screen, g.hudText())
	}
}

func (g *Game) hudText() string {
	st := g.app.Simulation.State
	text := fmt.Sprintf("%s  tick %d  pulses %d  TPS %.0f", st.Mode.Phase(), st.Ticks, len(st.Pulses), ebiten.ActualTPS())
	if g.loop.Paused() {
		text += "  [paused]"
	}
	return text
}

// Layout resizes the surface to the window width and returns the buffer size
// Logical height is fixed; the buffer is logical size times the pixel ratio
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := g.app.Config.PixelRatio(g.DeviceScale())
	if outsideWidth != g.lastW || ratio != g.app.Surface.Ratio() {
		g.lastW = outsideWidth
		g.app.Surface.Resize(float64(outsideWidth), ratio)
		g.canvas.Ratio = g.app.Surface.Ratio()
	}
	// Ebiten rejects an empty screen
	w, h := g.app.Surface.BufferSize()
	return max(w, 1), max(h, 1)
}

var _ ebiten.Game = (*Game)(nil)
