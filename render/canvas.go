package render

// Canvas is the drawing surface the renderer targets
// Coordinates are logical surface units; implementations apply the pixel ratio
type Canvas interface {
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, c RGBA)
	FillCircle(x, y, r float64, c RGBA)
}
