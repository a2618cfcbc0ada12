package core

import (
	"math"

	"github.com/lixenwraith/fusion-field/vmath"
)

// Surface owns logical dimensions and the backing buffer scale
// Logical units are what the simulation uses; buffer pixels are logical * ratio
type Surface struct {
	width  float64
	height float64
	ratio  float64
}

// NewSurface creates a zero-width surface of fixed logical height
func NewSurface(height float64) *Surface {
	if !vmath.Finite(height) || height < 0 {
		height = 0
	}
	return &Surface{height: height, ratio: 1}
}

// Resize recomputes logical width from the container and rescales the buffer by pixelRatio
// Invalid width clamps to 0, invalid ratio falls back to 1
func (s *Surface) Resize(containerWidth, pixelRatio float64) {
	if !vmath.Finite(containerWidth) || containerWidth < 0 {
		containerWidth = 0
	}
	if !vmath.Finite(pixelRatio) || pixelRatio <= 0 {
		pixelRatio = 1
	}
	s.width = containerWidth
	s.ratio = pixelRatio
}

// Width returns logical width
func (s *Surface) Width() float64 { return s.width }

// Height returns logical height
func (s *Surface) Height() float64 { return s.height }

// Ratio returns the pixel ratio applied to the backing buffer
func (s *Surface) Ratio() float64 { return s.ratio }

// BufferSize returns backing pixel dimensions
func (s *Surface) BufferSize() (w, h int) {
	return int(math.Round(s.width * s.ratio)), int(math.Round(s.height * s.ratio))
}

// Center returns the logical center point
func (s *Surface) Center() (x, y float64) {
	return s.width / 2, s.height / 2
}

// Empty reports a zero-area surface
func (s *Surface) Empty() bool {
	return s.width <= 0 || s.height <= 0
}
