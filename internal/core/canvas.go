package core

// Canvas is the drawing surface a game renders onto. Operations apply
// immediately and in call order; coordinates are in canvas units (pixels of
// the logical playfield), not terminal cells.
type Canvas interface {
	// SetFill sets the paint used by FillRect and FillCircle.
	SetFill(p Paint)
	// SetStroke sets the paint used by StrokeLine.
	SetStroke(p Paint)
	// SetLineWidth sets the stroke width in canvas units.
	SetLineWidth(w float64)

	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	StrokeLine(x0, y0, x1, y1 float64)

	// CreateLinearGradient returns an empty gradient along (x0,y0)-(x1,y1).
	CreateLinearGradient(x0, y0, x1, y1 float64) *LinearGradient
}
