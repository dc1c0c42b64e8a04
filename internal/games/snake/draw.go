package snake

import "github.com/vovakirdan/snake-eater/internal/core"

const (
	gridLineWidth = 0.5
	edgeGlowSize  = 10
)

var (
	edgeGlow      = core.MustParseColor("rgba(41, 128, 185, 0.5)")
	edgeGlowClear = core.MustParseColor("rgba(41, 128, 185, 0)")
	foodColor     = core.MustParseColor("#e74c3c")
	stemColor     = core.MustParseColor("#27ae60")
	bodyColor     = core.MustParseColor("#3498db")
	headColor     = core.MustParseColor("#2980b9")
	eyeColor      = core.MustParseColor("white")
)

// Draw renders the current state onto c. It reads state only, so it can be
// called any number of times between updates.
func (g *Game) Draw(c core.Canvas) {
	grid := g.settings.Grid
	c.SetFill(g.background.Color())
	c.FillRect(0, 0, float64(grid.Width), float64(grid.Height))

	g.drawGrid(c)
	g.drawEdgeGlow(c)
	g.drawFood(c)
	g.drawSnake(c)
}

func (g *Game) drawGrid(c core.Canvas) {
	grid := g.settings.Grid
	w, h := float64(grid.Width), float64(grid.Height)

	c.SetStroke(g.background.GridColor())
	c.SetLineWidth(gridLineWidth)
	for x := 0; x <= grid.Width; x += grid.Size {
		c.StrokeLine(float64(x), 0, float64(x), h)
	}
	for y := 0; y <= grid.Height; y += grid.Size {
		c.StrokeLine(0, float64(y), w, float64(y))
	}
}

// drawEdgeGlow shades each border with a fading band marking the wrap-around
// edges.
func (g *Game) drawEdgeGlow(c core.Canvas) {
	w, h := float64(g.settings.Grid.Width), float64(g.settings.Grid.Height)
	const s = edgeGlowSize

	bands := []struct {
		x0, y0, x1, y1 float64 // Gradient axis, glow at (x0, y0)
		x, y, bw, bh   float64 // Filled band
	}{
		{0, 0, 0, s, 0, 0, w, s},         // top
		{0, h, 0, h - s, 0, h - s, w, s}, // bottom
		{0, 0, s, 0, 0, 0, s, h},         // left
		{w, 0, w - s, 0, w - s, 0, s, h}, // right
	}
	for _, b := range bands {
		grad := c.CreateLinearGradient(b.x0, b.y0, b.x1, b.y1)
		grad.AddColorStop(0, edgeGlow)
		grad.AddColorStop(1, edgeGlowClear)
		c.SetFill(grad)
		c.FillRect(b.x, b.y, b.bw, b.bh)
	}
}

func (g *Game) drawFood(c core.Canvas) {
	size := float64(g.settings.Grid.Size)
	pos := g.food.Position()
	x, y := float64(pos.X), float64(pos.Y)

	c.SetFill(foodColor)
	c.FillCircle(x+size/2, y+size/2, size/2)

	c.SetFill(stemColor)
	c.FillRect(x+size/2-1, y, 2, size/4)
}

func (g *Game) drawSnake(c core.Canvas) {
	size := float64(g.settings.Grid.Size)
	body := g.snake.body

	c.SetFill(bodyColor)
	for _, seg := range body[1:] {
		c.FillRect(float64(seg.X), float64(seg.Y), size, size)
	}

	head := body[0]
	c.SetFill(headColor)
	c.FillRect(float64(head.X), float64(head.Y), size, size)

	c.SetFill(eyeColor)
	eyeSize := size / 5
	for _, eye := range eyePositions(head, g.snake.direction, size) {
		c.FillRect(eye[0], eye[1], eyeSize, eyeSize)
	}
}

// eyePositions returns the top-left corners of the two eyes, placed on the
// side of the head facing dir.
func eyePositions(head Cell, dir Direction, size float64) [2][2]float64 {
	eyeSize := size / 5
	offset := size / 3
	x, y := float64(head.X), float64(head.Y)
	near := offset
	far := size - offset - eyeSize

	switch dir {
	case DirUp:
		return [2][2]float64{{x + near, y + near}, {x + far, y + near}}
	case DirDown:
		return [2][2]float64{{x + near, y + far}, {x + far, y + far}}
	case DirLeft:
		return [2][2]float64{{x + near, y + near}, {x + near, y + far}}
	default:
		return [2][2]float64{{x + far, y + near}, {x + far, y + far}}
	}
}
