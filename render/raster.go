package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/vmath"
)

// bezierCircle is the cubic control distance for a quarter circle of radius 1
const bezierCircle = 0.5522847498

// Raster is a software Canvas over an RGBA image at buffer resolution
// Each primitive is rasterized into a coverage mask over its bounding box, then
// blended into the image with straight alpha
type Raster struct {
	img   *image.RGBA
	ratio float64
	bg    RGB

	// MinRadius and MinWidth floor pixel sizes so coarse targets still show thin shapes
	MinRadius float64
	MinWidth  float64

	z       *vector.Rasterizer
	maskBuf []uint8
}

// NewRaster creates a w×h pixel raster mapping logical units by ratio
func NewRaster(w, h int, ratio float64, bg RGB) *Raster {
	r := &Raster{
		bg: bg,
		z:  vector.NewRasterizer(0, 0),
	}
	r.Resize(w, h, ratio)
	return r
}

// NewSurfaceRaster sizes a raster to a surface's backing buffer
func NewSurfaceRaster(s *core.Surface, bg RGB) *Raster {
	w, h := s.BufferSize()
	return NewRaster(w, h, s.Ratio(), bg)
}

// Resize reallocates the image; negative sizes clamp to 0, invalid ratio becomes 1
func (r *Raster) Resize(w, h int, ratio float64) {
	w, h = max(w, 0), max(h, 0)
	if !vmath.Finite(ratio) || ratio <= 0 {
		ratio = 1
	}
	r.ratio = ratio
	if r.img != nil && r.img.Rect.Dx() == w && r.img.Rect.Dy() == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// ResizeTo follows a surface's buffer size and ratio
func (r *Raster) ResizeTo(s *core.Surface) {
	w, h := s.BufferSize()
	r.Resize(w, h, s.Ratio())
}

// Image exposes the backing image; valid until the next Resize
func (r *Raster) Image() *image.RGBA { return r.img }

// Size returns pixel dimensions
func (r *Raster) Size() (w, h int) { return r.img.Rect.Dx(), r.img.Rect.Dy() }

// Ratio returns the logical-to-pixel scale
func (r *Raster) Ratio() float64 { return r.ratio }

// At returns the pixel color, black outside bounds
func (r *Raster) At(x, y int) RGB {
	if !(image.Point{X: x, Y: y}.In(r.img.Rect)) {
		return RGB{}
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+3 : i+3]
	return RGB{R: p[0], G: p[1], B: p[2]}
}

// Clear fills with the background color
func (r *Raster) Clear() {
	pix := r.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = r.bg.R
		pix[i+1] = r.bg.G
		pix[i+2] = r.bg.B
		pix[i+3] = 0xff
	}
}

// FillCircle rasterizes a disc of logical radius rad
func (r *Raster) FillCircle(x, y, rad float64, c RGBA) {
	if !vmath.Finite2(x, y) || !vmath.Finite(rad) || rad <= 0 || c.A <= 0 {
		return
	}
	s := r.ratio
	cx, cy, pr := x*s, y*s, max(rad*s, r.MinRadius)

	r.fill(cx-pr, cy-pr, cx+pr, cy+pr, c, func(z *vector.Rasterizer, ox, oy float64) {
		px, py := float32(cx-ox), float32(cy-oy)
		k := float32(pr * bezierCircle)
		rr := float32(pr)
		z.MoveTo(px+rr, py)
		z.CubeTo(px+rr, py+k, px+k, py+rr, px, py+rr)
		z.CubeTo(px-k, py+rr, px-rr, py+k, px-rr, py)
		z.CubeTo(px-rr, py-k, px-k, py-rr, px, py-rr)
		z.CubeTo(px+k, py-rr, px+rr, py-k, px+rr, py)
		z.ClosePath()
	})
}

// StrokeLine rasterizes a segment as a quad of logical width w
func (r *Raster) StrokeLine(x0, y0, x1, y1, w float64, c RGBA) {
	if !vmath.Finite2(x0, y0) || !vmath.Finite2(x1, y1) || !(w > 0) || c.A <= 0 {
		return
	}
	s := r.ratio
	ax, ay, bx, by := x0*s, y0*s, x1*s, y1*s
	half := max(w*s, r.MinWidth) / 2

	nx, ny := vmath.Normalize2D(bx-ax, by-ay)
	if nx == 0 && ny == 0 {
		return
	}
	// Perpendicular offset
	px, py := -ny*half, nx*half

	minX := math.Min(ax, bx) - half
	minY := math.Min(ay, by) - half
	maxX := math.Max(ax, bx) + half
	maxY := math.Max(ay, by) + half

	r.fill(minX, minY, maxX, maxY, c, func(z *vector.Rasterizer, ox, oy float64) {
		z.MoveTo(float32(ax+px-ox), float32(ay+py-oy))
		z.LineTo(float32(bx+px-ox), float32(by+py-oy))
		z.LineTo(float32(bx-px-ox), float32(by-py-oy))
		z.LineTo(float32(ax-px-ox), float32(ay-py-oy))
		z.ClosePath()
	})
}

// fill rasterizes the path built by trace inside the pixel box and blends c by coverage
func (r *Raster) fill(minX, minY, maxX, maxY float64, c RGBA, trace func(z *vector.Rasterizer, ox, oy float64)) {
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(r.img.Rect)
	if box.Empty() {
		return
	}
	bw, bh := box.Dx(), box.Dy()

	if cap(r.maskBuf) < bw*bh {
		r.maskBuf = make([]uint8, bw*bh)
	}
	mask := &image.Alpha{
		Pix:    r.maskBuf[:bw*bh],
		Stride: bw,
		Rect:   image.Rect(0, 0, bw, bh),
	}
	clear(mask.Pix)

	r.z.Reset(bw, bh)
	r.z.DrawOp = draw.Src
	trace(r.z, float64(box.Min.X), float64(box.Min.Y))
	r.z.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	for my := 0; my < bh; my++ {
		row := mask.Pix[my*bw : (my+1)*bw]
		for mx, cov := range row {
			if cov == 0 {
				continue
			}
			i := r.img.PixOffset(box.Min.X+mx, box.Min.Y+my)
			p := r.img.Pix[i : i+4 : i+4]
			dst := RGB{R: p[0], G: p[1], B: p[2]}
			out := Blend(dst, c.RGB, c.A*float64(cov)/255.0)
			p[0], p[1], p[2], p[3] = out.R, out.G, out.B, 0xff
		}
	}
}
