package core

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// circleSamples is the per-axis supersampling used for circle coverage.
const circleSamples = 4

// upperHalfBlock renders two vertically stacked pixels in one terminal cell:
// the foreground paints the top pixel, the background the bottom one.
const upperHalfBlock = '▀'

// Raster is a Canvas that rasterizes onto a grid of square pseudo-pixels,
// each covering pixelSize x pixelSize canvas units. Partially covered pixels
// are blended by coverage, so shapes smaller than a pixel still tint it.
type Raster struct {
	pixel     float64
	cols      int
	rows      int
	pixels    []colorful.Color
	fill      Paint
	stroke    Paint
	lineWidth float64
}

var _ Canvas = (*Raster)(nil)

// NewRaster creates a raster for a width x height canvas.
func NewRaster(width, height int, pixelSize float64) *Raster {
	if pixelSize <= 0 {
		pixelSize = 1
	}
	cols := int(math.Ceil(float64(width) / pixelSize))
	rows := int(math.Ceil(float64(height) / pixelSize))

	black := Opaque(colorful.Color{})
	return &Raster{
		pixel:     pixelSize,
		cols:      cols,
		rows:      rows,
		pixels:    make([]colorful.Color, cols*rows),
		fill:      black,
		stroke:    black,
		lineWidth: 1,
	}
}

// Cols returns the number of pixel columns.
func (r *Raster) Cols() int {
	return r.cols
}

// Rows returns the number of pixel rows.
func (r *Raster) Rows() int {
	return r.rows
}

// At returns the pixel color, black when out of range.
func (r *Raster) At(col, row int) colorful.Color {
	if col < 0 || col >= r.cols || row < 0 || row >= r.rows {
		return colorful.Color{}
	}
	return r.pixels[row*r.cols+col]
}

// SetFill sets the fill paint.
func (r *Raster) SetFill(p Paint) {
	r.fill = p
}

// SetStroke sets the stroke paint.
func (r *Raster) SetStroke(p Paint) {
	r.stroke = p
}

// SetLineWidth sets the stroke width. Non-positive widths are ignored.
func (r *Raster) SetLineWidth(w float64) {
	if w > 0 {
		r.lineWidth = w
	}
}

// CreateLinearGradient returns a new gradient along (x0,y0)-(x1,y1).
func (r *Raster) CreateLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return NewLinearGradient(x0, y0, x1, y1)
}

// FillRect fills a rectangle with the current fill paint.
func (r *Raster) FillRect(x, y, w, h float64) {
	r.paintRect(x, y, w, h, r.fill)
}

// FillCircle fills a circle with the current fill paint.
func (r *Raster) FillCircle(cx, cy, radius float64) {
	if radius <= 0 || r.fill == nil {
		return
	}

	c0, c1 := r.span(cx-radius, cx+radius, r.cols)
	r0, r1 := r.span(cy-radius, cy+radius, r.rows)
	step := r.pixel / circleSamples
	rr := radius * radius

	for row := r0; row <= r1; row++ {
		py := float64(row) * r.pixel
		for col := c0; col <= c1; col++ {
			px := float64(col) * r.pixel
			inside := 0
			for sy := 0; sy < circleSamples; sy++ {
				dy := py + (float64(sy)+0.5)*step - cy
				for sx := 0; sx < circleSamples; sx++ {
					dx := px + (float64(sx)+0.5)*step - cx
					if dx*dx+dy*dy <= rr {
						inside++
					}
				}
			}
			if inside == 0 {
				continue
			}
			coverage := float64(inside) / (circleSamples * circleSamples)
			src := r.fill.ColorAt(px+r.pixel/2, py+r.pixel/2)
			r.blend(col, row, src, coverage)
		}
	}
}

// StrokeLine draws a line with the current stroke paint and width.
// Axis-aligned lines are exact; other lines are approximated by stamping
// line-width squares along the path.
func (r *Raster) StrokeLine(x0, y0, x1, y1 float64) {
	half := r.lineWidth / 2
	switch {
	case x0 == x1:
		r.paintRect(x0-half, math.Min(y0, y1), r.lineWidth, math.Abs(y1-y0), r.stroke)
	case y0 == y1:
		r.paintRect(math.Min(x0, x1), y0-half, math.Abs(x1-x0), r.lineWidth, r.stroke)
	default:
		steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0) / (r.pixel / 2)))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := x0 + t*(x1-x0)
			y := y0 + t*(y1-y0)
			r.paintRect(x-half, y-half, r.lineWidth, r.lineWidth, r.stroke)
		}
	}
}

// paintRect blends paint into every pixel the rectangle overlaps,
// weighted by the overlapped area.
func (r *Raster) paintRect(x, y, w, h float64, p Paint) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if w == 0 || h == 0 || p == nil {
		return
	}

	c0, c1 := r.span(x, x+w, r.cols)
	r0, r1 := r.span(y, y+h, r.rows)
	area := r.pixel * r.pixel

	for row := r0; row <= r1; row++ {
		py0 := float64(row) * r.pixel
		oy0 := math.Max(py0, y)
		oy1 := math.Min(py0+r.pixel, y+h)
		if oy1 <= oy0 {
			continue
		}
		for col := c0; col <= c1; col++ {
			px0 := float64(col) * r.pixel
			ox0 := math.Max(px0, x)
			ox1 := math.Min(px0+r.pixel, x+w)
			if ox1 <= ox0 {
				continue
			}
			coverage := (ox1 - ox0) * (oy1 - oy0) / area
			src := p.ColorAt((ox0+ox1)/2, (oy0+oy1)/2)
			r.blend(col, row, src, coverage)
		}
	}
}

// span converts a canvas interval to an inclusive, clipped pixel index range.
// An empty result has lo > hi.
func (r *Raster) span(from, to float64, n int) (lo, hi int) {
	lo = max(0, int(math.Floor(from/r.pixel)))
	hi = min(n-1, int(math.Ceil(to/r.pixel))-1)
	return lo, hi
}

func (r *Raster) blend(col, row int, src RGBA, coverage float64) {
	i := row*r.cols + col
	r.pixels[i] = src.Over(r.pixels[i], coverage)
}

// Blit draws the raster onto dst with its top-left at (x, y), packing two
// pixel rows into each terminal row with half-block glyphs.
func (r *Raster) Blit(dst *Screen, x, y int) {
	for row := 0; row < r.rows; row += 2 {
		for col := 0; col < r.cols; col++ {
			cell := Cell{Rune: upperHalfBlock, FG: r.At(col, row).Clamped().Hex()}
			if row+1 < r.rows {
				cell.BG = r.At(col, row+1).Clamped().Hex()
			}
			dst.SetCell(x+col, y+row/2, cell)
		}
	}
}

// TermSize returns the terminal cells a blit of this raster occupies.
func (r *Raster) TermSize() (w, h int) {
	return r.cols, (r.rows + 1) / 2
}
