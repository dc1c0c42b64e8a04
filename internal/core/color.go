package core

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with straight (non-premultiplied) alpha in [0, 1].
type RGBA struct {
	C colorful.Color
	A float64
}

// Opaque wraps a color with full alpha.
func Opaque(c colorful.Color) RGBA {
	return RGBA{C: c, A: 1}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return c.C.Clamped().Hex()
}

// Over composites c onto dst. Coverage scales the source alpha and is used by
// rasterizers for partially covered pixels.
func (c RGBA) Over(dst colorful.Color, coverage float64) colorful.Color {
	a := Clamp(c.A*coverage, 0, 1)
	if a == 0 {
		return dst
	}
	return dst.BlendRgb(c.C, a)
}

// ColorAt lets a flat color be used anywhere a Paint is expected.
func (c RGBA) ColorAt(_, _ float64) RGBA {
	return c
}

// Paint yields a color for a point in canvas space.
// Flat colors and gradients both implement it.
type Paint interface {
	ColorAt(x, y float64) RGBA
}

var (
	// Matches the first "hsl(h, s%, l%)" in a string, integers only.
	hslPattern  = regexp.MustCompile(`hsl\((\d+),\s*(\d+)%,\s*(\d+)%\)`)
	rgbaPattern = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
)

var namedColors = map[string]RGBA{
	"white":       Opaque(colorful.Color{R: 1, G: 1, B: 1}),
	"black":       Opaque(colorful.Color{}),
	"transparent": {},
}

// ParseColor parses the CSS-like color notations the game uses:
// "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)", "hsl(h, s%, l%)"
// and the names white, black and transparent.
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
		}
		return Opaque(c), nil
	}

	if h, sat, l, ok := ParseHSL(s); ok && strings.HasPrefix(s, "hsl(") {
		return Opaque(colorful.Hsl(float64(h), float64(sat)/100, float64(l)/100)), nil
	}

	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		var ch [3]float64
		for i := range ch {
			v, _ := strconv.Atoi(m[i+1]) // digits only, guaranteed by the pattern
			ch[i] = float64(Clamp(v, 0, 255)) / 255
		}
		alpha := 1.0
		if m[4] != "" {
			a, err := strconv.ParseFloat(m[4], 64)
			if err != nil {
				return RGBA{}, fmt.Errorf("core: invalid alpha in %q: %w", s, err)
			}
			alpha = Clamp(a, 0, 1)
		}
		return RGBA{C: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: alpha}, nil
	}

	return RGBA{}, fmt.Errorf("core: unrecognized color %q", s)
}

// MustParseColor is ParseColor for package-level constants. It panics on error.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHSL extracts the integer hue, saturation and lightness from the first
// "hsl(h, s%, l%)" found in s.
func ParseHSL(s string) (h, sat, light int, ok bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	h, _ = strconv.Atoi(m[1])
	sat, _ = strconv.Atoi(m[2])
	light, _ = strconv.Atoi(m[3])
	return h, sat, light, true
}

// ColorStop is a gradient color at an offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// LinearGradient interpolates color stops along the line (x0,y0)-(x1,y1).
// Points are projected onto the line and clamped to its ends.
type LinearGradient struct {
	x0, y0, x1, y1 float64
	stops          []ColorStop
}

// NewLinearGradient creates a gradient with no stops. Add stops before use.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{x0: x0, y0: y0, x1: x1, y1: y1}
}

// AddColorStop adds a stop. Stops are kept ordered by offset.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) {
	g.stops = append(g.stops, ColorStop{Offset: Clamp(offset, 0, 1), Color: c})
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].Offset < g.stops[j].Offset
	})
}

// ColorAt returns the interpolated color at (x, y).
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	if len(g.stops) == 0 {
		return RGBA{}
	}

	dx, dy := g.x1-g.x0, g.y1-g.y0
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = Clamp(((x-g.x0)*dx+(y-g.y0)*dy)/l2, 0, 1)
	}

	if t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	for i := 1; i < len(g.stops); i++ {
		next := g.stops[i]
		if t > next.Offset {
			continue
		}
		prev := g.stops[i-1]
		span := next.Offset - prev.Offset
		if span <= 0 {
			return next.Color
		}
		f := (t - prev.Offset) / span
		return RGBA{
			C: prev.Color.C.BlendRgb(next.Color.C, f),
			A: prev.Color.A + (next.Color.A-prev.Color.A)*f,
		}
	}
	return g.stops[len(g.stops)-1].Color
}
