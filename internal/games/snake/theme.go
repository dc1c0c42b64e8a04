package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-eater/internal/core"
)

// Theme is a background color in CSS notation, either a hex color or
// "hsl(h, s%, l%)".
type Theme string

// DefaultTheme is the background before the first theme change.
const DefaultTheme Theme = "#ecf0f1"

var (
	defaultGridColor = core.MustParseColor("#e6e6e6")
	darkGridColor    = core.MustParseColor("rgba(0, 0, 0, 0.1)")
	lightGridColor   = core.MustParseColor("rgba(255, 255, 255, 0.2)")
)

// RandomPastel picks a light, desaturated HSL background.
func RandomPastel(rng Rand) Theme {
	hue := int(rng.Float64() * 360)
	sat := 30 + int(rng.Float64()*30)
	light := 80 + int(rng.Float64()*10)
	return Theme(fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, sat, light))
}

// Color returns the background color, DefaultTheme's when t does not parse.
func (t Theme) Color() core.RGBA {
	c, err := core.ParseColor(string(t))
	if err != nil {
		return core.MustParseColor(string(DefaultTheme))
	}
	return c
}

// GridColor returns the grid line color that contrasts with the theme:
// a dark veil on light HSL backgrounds, a light veil on dark ones, and
// plain #e6e6e6 for anything that is not HSL.
func (t Theme) GridColor() core.RGBA {
	_, _, light, ok := core.ParseHSL(string(t))
	switch {
	case !ok:
		return defaultGridColor
	case light > 50:
		return darkGridColor
	default:
		return lightGridColor
	}
}
