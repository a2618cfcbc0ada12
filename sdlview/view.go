package sdlview

import (
	"fmt"
	"log"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/fusion-field/app"
	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/engine"
	"github.com/lixenwraith/fusion-field/parameter"
)

const hudFontSize = 14

// Fit returns the logical container width and ratio that fill a w×h window
// at the fixed logical height
func Fit(w, h int, height float64) (width, ratio float64) {
	if w <= 0 || h <= 0 || !(height > 0) {
		return 0, 1
	}
	ratio = float64(h) / height
	return float64(w) / ratio, ratio
}

// View binds an app to a canvas; the window's main loop pumps the scheduler
type View struct {
	app    *app.App
	loop   *engine.Loop
	canvas Canvas
	cv     *canvas.Canvas
}

// Run opens the window and blocks until it is closed
func Run(a *app.App, onPanic func(any)) error {
	wnd, cv, err := sdlcanvas.CreateWindow(parameter.WindowWidth, int(parameter.SurfaceHeight), "fusion-field")
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer wnd.Destroy()

	cv.SetFont(goregular.TTF, hudFontSize)

	v := &View{
		app: a,
		cv:  cv,
		canvas: Canvas{
			Ctx:        cv,
			Background: a.Renderer.Palette.Background,
		},
	}
	v.loop = a.NewLoop(v.present, onPanic)
	v.resize(cv.Width(), cv.Height())

	wnd.SizeChange = func(w, h int) {
		v.loop.Do(func() { v.resize(w, h) })
	}
	wnd.KeyDown = func(scancode int, rn rune, name string) {
		switch {
		case name == "Escape" || rn == 'q':
			wnd.Close()
		case rn == ' ' || rn == 'p':
			log.Printf("input: paused=%t", v.loop.TogglePause())
		case rn == 's':
			a.Sound.SetMuted(a.Sound.Enabled())
		case rn == 'n' && v.loop.Paused():
			v.loop.Step()
		}
	}

	wnd.MainLoop(v.loop.Pump)
	v.loop.Stop()
	log.Printf("exit after %d frames", v.loop.Frames())
	return nil
}

func (v *View) resize(w, h int) {
	width, ratio := Fit(w, h, v.app.Surface.Height())
	v.app.Surface.Resize(width, ratio)
	v.canvas.Ratio = v.app.Surface.Ratio()
}

func (v *View) present(st *core.State) {
	v.app.Renderer.Draw(st, &v.canvas)
	if v.app.Config.Display.ShowHUD {
		v.cv.SetFillStyle("#ccc")
		v.cv.FillText(HUDText(st, v.loop.Paused()), 8, 8+hudFontSize)
	}
}

// HUDText is the one-line overlay
func HUDText(st *core.State, paused bool) string {
	s := fmt.Sprintf("%s  tick %d  pulses %d", st.Mode.Phase(), st.Ticks, len(st.Pulses))
	if paused {
		s += "  [paused]"
	}
	return s
}
