// Package terminal presents the animation on a tcell screen
// Each cell shows two vertically stacked raster pixels with the upper half block glyph
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/render"
)

const (
	halfBlock = '▀'

	// Pixel floors keep nodes and links visible at cell resolution
	minPixelRadius = 0.6
	minPixelWidth  = 0.5

	// pausedDim scales the frame while paused
	pausedDim = 0.5
)

// Presenter draws state into an offscreen raster and blits it to the screen
type Presenter struct {
	screen   tcell.Screen
	surface  *core.Surface
	renderer *render.Renderer
	raster   *render.Raster
	hud      *HUD

	// Paused reports loop pause state for dimming and the status line; nil means never
	Paused func() bool
	// AudioOn reports whether cues are audible; nil means off
	AudioOn func() bool

	cols, rows int
}

// NewPresenter binds a screen to a surface; hud may be nil to hide the status line
func NewPresenter(screen tcell.Screen, surface *core.Surface, renderer *render.Renderer, hud *HUD) *Presenter {
	p := &Presenter{
		screen:   screen,
		surface:  surface,
		renderer: renderer,
		hud:      hud,
		raster:   render.NewRaster(0, 0, 1, renderer.Palette.Background),
	}
	p.raster.MinRadius = minPixelRadius
	p.raster.MinWidth = minPixelWidth
	p.Layout()
	return p
}

// Layout maps the screen grid onto the surface and resizes the raster
func (p *Presenter) Layout() {
	p.cols, p.rows = p.screen.Size()
	width, ratio := SurfaceSize(p.cols, p.rows, p.hudRows(), p.surface.Height())
	p.surface.Resize(width, ratio)
	p.raster.ResizeTo(p.surface)
}

// SurfaceSize returns the logical container width and pixel ratio for a screen
// Pixel height is twice the drawable rows; logical height stays fixed, so the ratio
// shrinks and the logical width grows to cover every column
func SurfaceSize(cols, rows, reserved int, height float64) (width, ratio float64) {
	w, h := Geometry(cols, rows, reserved)
	if h == 0 || !(height > 0) {
		return 0, 1
	}
	ratio = float64(h) / height
	return float64(w) / ratio, ratio
}

// Geometry returns the pixel raster size for a cols×rows screen less reserved rows
func Geometry(cols, rows, reserved int) (w, h int) {
	drawable := max(rows-reserved, 0)
	return max(cols, 0), drawable * 2
}

// HUDRows returns the rows reserved by the status line when shown
func HUDRows(show bool) int {
	if show {
		return parameter.HUDRows
	}
	return 0
}

func (p *Presenter) hudRows() int {
	return HUDRows(p.hud != nil)
}

// Raster exposes the offscreen target
func (p *Presenter) Raster() *render.Raster { return p.raster }

// Present renders st and flushes the screen; its signature matches engine.PresentFunc
func (p *Presenter) Present(st *core.State) {
	p.renderer.Draw(st, p.raster)
	paused := p.Paused != nil && p.Paused()
	p.blit(paused)
	if p.hud != nil {
		p.hud.Draw(p.screen, p.rows-1, p.cols, HUDState{
			Phase:  st.Mode.Phase(),
			Paused: paused,
			Audio:  p.AudioOn != nil && p.AudioOn(),
		})
	}
	p.screen.Show()
}

func (p *Presenter) blit(dim bool) {
	w, h := p.raster.Size()
	for cy := 0; cy*2 < h; cy++ {
		for x := 0; x < w; x++ {
			top := p.raster.At(x, cy*2)
			bottom := p.raster.At(x, cy*2+1)
			if dim {
				top, bottom = render.Scale(top, pausedDim), render.Scale(bottom, pausedDim)
			}
			p.screen.SetContent(x, cy, halfBlock, nil, CellStyle(top, bottom))
		}
	}
}

// CellStyle colors the upper half block: foreground is the top pixel, background the bottom
func CellStyle(top, bottom render.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
}

func tcellColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
