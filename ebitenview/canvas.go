// Package ebitenview presents the animation in an ebiten window (desktop or wasm)
package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/fusion-field/render"
	"github.com/lixenwraith/fusion-field/vmath"
)

// Canvas adapts an ebiten image to render.Canvas, scaling logical units by Ratio
type Canvas struct {
	Dst        *ebiten.Image
	Ratio      float64
	Background render.RGB
}

func (c *Canvas) Clear() {
	c.Dst.Fill(render.RGBA{RGB: c.Background, A: 1}.NRGBA())
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col render.RGBA) {
	if !vmath.Finite2(x0, y0) || !vmath.Finite2(x1, y1) {
		return
	}
	r := c.Ratio
	vector.StrokeLine(c.Dst,
		float32(x0*r), float32(y0*r), float32(x1*r), float32(y1*r),
		float32(width*r), col.NRGBA(), true)
}

func (c *Canvas) FillCircle(x, y, rad float64, col render.RGBA) {
	if !vmath.Finite2(x, y) || !(rad > 0) {
		return
	}
	r := c.Ratio
	vector.DrawFilledCircle(c.Dst, float32(x*r), float32(y*r), float32(rad*r), col.NRGBA(), true)
}
