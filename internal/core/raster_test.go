package core

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewRasterSize(t *testing.T) {
	r := NewRaster(400, 400, 10)
	if r.Cols() != 40 || r.Rows() != 40 {
		t.Errorf("NewRaster(400, 400, 10) = %dx%d pixels, expected 40x40", r.Cols(), r.Rows())
	}
	w, h := r.TermSize()
	if w != 40 || h != 20 {
		t.Errorf("TermSize() = %dx%d, expected 40x20", w, h)
	}

	odd := NewRaster(30, 30, 10)
	if _, h := odd.TermSize(); h != 2 {
		t.Errorf("3 pixel rows should need 2 terminal rows, got %d", h)
	}
}

func TestRasterFillRectCoverage(t *testing.T) {
	r := NewRaster(40, 20, 10)
	r.SetFill(MustParseColor("white"))

	// Covers the left half of pixel (0, 0).
	r.FillRect(0, 0, 5, 10)

	if got := r.At(0, 0).R; !near(got, 0.5) {
		t.Errorf("half covered pixel R = %f, expected 0.5", got)
	}
	if got := r.At(1, 0).R; got != 0 {
		t.Errorf("uncovered pixel R = %f, expected 0", got)
	}

	r.FillRect(0, 0, 40, 20)
	if got := r.At(3, 1).R; !near(got, 1) {
		t.Errorf("fully covered pixel R = %f, expected 1", got)
	}
}

func TestRasterFillRectAlpha(t *testing.T) {
	r := NewRaster(10, 10, 10)
	r.SetFill(MustParseColor("white"))
	r.FillRect(0, 0, 10, 10)
	r.SetFill(MustParseColor("rgba(0, 0, 0, 0.1)"))
	r.FillRect(0, 0, 10, 10)

	if got := r.At(0, 0).R; !near(got, 0.9) {
		t.Errorf("R = %f, expected 0.9", got)
	}
}

func TestRasterClipsOutOfBounds(t *testing.T) {
	r := NewRaster(20, 20, 10)
	r.SetFill(MustParseColor("white"))
	r.FillRect(-100, -100, 10, 10)
	r.FillRect(500, 500, 10, 10)
	r.FillCircle(-50, -50, 5)

	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			if r.At(col, row).R != 0 {
				t.Errorf("pixel (%d, %d) painted by an off-canvas shape", col, row)
			}
		}
	}

	// Negative sizes are normalized.
	r.FillRect(10, 10, -10, -10)
	if !near(r.At(0, 0).R, 1) {
		t.Errorf("negative-size rect should fill pixel (0, 0)")
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(30, 30, 10)
	r.SetFill(MustParseColor("white"))
	r.FillCircle(15, 15, 10)

	if got := r.At(1, 1).R; !near(got, 1) {
		t.Errorf("center pixel R = %f, expected 1", got)
	}
	corner := r.At(0, 0).R
	if corner <= 0 || corner >= 1 {
		t.Errorf("corner pixel should be partially covered, R = %f", corner)
	}
}

func TestRasterStrokeLine(t *testing.T) {
	r := NewRaster(30, 10, 10)
	r.SetStroke(MustParseColor("white"))
	r.SetLineWidth(0.5)
	r.StrokeLine(10, 0, 10, 10)

	left, right, far := r.At(0, 0).R, r.At(1, 0).R, r.At(2, 0).R
	if !near(left, 0.025) || !near(right, 0.025) {
		t.Errorf("line on a pixel boundary should tint both sides by 0.025, got %f and %f", left, right)
	}
	if far != 0 {
		t.Errorf("pixel away from the line should be untouched, R = %f", far)
	}

	r.SetLineWidth(-1)
	r.SetStroke(MustParseColor("white"))
	r.StrokeLine(0, 0, 30, 10)
	if r.At(2, 0).R == 0 && r.At(2, 0).G == 0 {
		t.Errorf("diagonal line should reach the far pixel")
	}
}

func TestRasterGradientFill(t *testing.T) {
	r := NewRaster(10, 10, 5)
	g := r.CreateLinearGradient(0, 0, 10, 0)
	g.AddColorStop(0, MustParseColor("white"))
	g.AddColorStop(1, MustParseColor("rgba(255, 255, 255, 0)"))
	r.SetFill(g)
	r.FillRect(0, 0, 10, 10)

	if got := r.At(0, 0).R; !near(got, 0.75) {
		t.Errorf("left pixel R = %f, expected 0.75", got)
	}
	if got := r.At(1, 0).R; !near(got, 0.25) {
		t.Errorf("right pixel R = %f, expected 0.25", got)
	}
}

func TestRasterBlit(t *testing.T) {
	r := NewRaster(2, 3, 1)
	r.SetFill(MustParseColor("#ff0000"))
	r.FillRect(0, 0, 2, 1)
	r.SetFill(MustParseColor("#0000ff"))
	r.FillRect(0, 1, 2, 1)
	r.SetFill(MustParseColor("#00ff00"))
	r.FillRect(0, 2, 2, 1)

	s := NewScreen(4, 3)
	r.Blit(s, 1, 1)

	top := s.GetCell(1, 1)
	if top.Rune != '▀' || top.FG != "#ff0000" || top.BG != "#0000ff" {
		t.Errorf("top cell = %+v, expected red over blue half block", top)
	}
	bottom := s.GetCell(2, 2)
	if bottom.FG != "#00ff00" || bottom.BG != "" {
		t.Errorf("bottom cell = %+v, expected green with default background", bottom)
	}
	if s.Get(0, 0) != ' ' {
		t.Errorf("blit should not touch cells outside its area")
	}
}
