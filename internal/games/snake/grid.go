package snake

// Cell is a grid-aligned position in canvas units. Both coordinates are
// multiples of the grid size. Cells are values and compare with ==.
type Cell struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Grid is the playfield: Width x Height canvas units split into square cells
// of Size units. Width and Height must be multiples of Size.
type Grid struct {
	Width  int
	Height int
	Size   int
}

// Cols returns the number of cells per row.
func (g Grid) Cols() int {
	return g.Width / g.Size
}

// Rows returns the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.Size
}

// CellAt returns the cell at column col and row row.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.Size, Y: row * g.Size}
}

// Step moves c one cell in direction d without wrapping.
func (g Grid) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx*g.Size, Y: c.Y + dy*g.Size}
}

// Wrap maps a cell that left the playfield back in from the opposite edge,
// keeping the perpendicular coordinate.
func (g Grid) Wrap(c Cell) Cell {
	if c.X < 0 {
		c.X = g.Width - g.Size
	} else if c.X >= g.Width {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = g.Height - g.Size
	} else if c.Y >= g.Height {
		c.Y = 0
	}
	return c
}

// Contains reports whether c lies on the playfield.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Aligned reports whether c sits on a cell boundary.
func (g Grid) Aligned(c Cell) bool {
	return c.X%g.Size == 0 && c.Y%g.Size == 0
}

// Center returns the cell at (or just up-left of) the middle of the playfield.
func (g Grid) Center() Cell {
	return Cell{
		X: g.Width / 2 / g.Size * g.Size,
		Y: g.Height / 2 / g.Size * g.Size,
	}
}

// Corners returns the four corner cells: top-left, top-right, bottom-left,
// bottom-right.
func (g Grid) Corners() [4]Cell {
	right := g.Width - g.Size
	bottom := g.Height - g.Size
	return [4]Cell{
		{X: 0, Y: 0},
		{X: right, Y: 0},
		{X: 0, Y: bottom},
		{X: right, Y: bottom},
	}
}
