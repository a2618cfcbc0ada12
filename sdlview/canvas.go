// Package sdlview presents the animation through an HTML5-style 2D canvas over SDL
package sdlview

import (
	"image/color"
	"math"

	"github.com/lixenwraith/fusion-field/render"
	"github.com/lixenwraith/fusion-field/vmath"
)

// Context2D is the subset of a canvas 2D context the adapter draws with
type Context2D interface {
	SetFillStyle(value ...interface{})
	SetStrokeStyle(value ...interface{})
	SetLineWidth(width float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	Fill()
	Stroke()
	FillRect(x, y, w, h float64)
	Width() int
	Height() int
}

// Canvas adapts a Context2D to render.Canvas, scaling logical units by Ratio
type Canvas struct {
	Ctx        Context2D
	Ratio      float64
	Background render.RGB
}

func (c *Canvas) Clear() {
	c.Ctx.SetFillStyle(color.NRGBA{R: c.Background.R, G: c.Background.G, B: c.Background.B, A: 0xff})
	c.Ctx.FillRect(0, 0, float64(c.Ctx.Width()), float64(c.Ctx.Height()))
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col render.RGBA) {
	if !vmath.Finite2(x0, y0) || !vmath.Finite2(x1, y1) {
		return
	}
	r := c.Ratio
	c.Ctx.SetStrokeStyle(col.NRGBA())
	c.Ctx.SetLineWidth(width * r)
	c.Ctx.BeginPath()
	c.Ctx.MoveTo(x0*r, y0*r)
	c.Ctx.LineTo(x1*r, y1*r)
	c.Ctx.Stroke()
}

func (c *Canvas) FillCircle(x, y, rad float64, col render.RGBA) {
	if !vmath.Finite2(x, y) || !(rad > 0) {
		return
	}
	r := c.Ratio
	c.Ctx.SetFillStyle(col.NRGBA())
	c.Ctx.BeginPath()
	c.Ctx.Arc(x*r, y*r, rad*r, 0, 2*math.Pi, false)
	c.Ctx.Fill()
}
