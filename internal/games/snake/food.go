package snake

import "math"

// DefaultFoodAttempts is how many random cells Generate samples before
// falling back to fixed candidates.
const DefaultFoodAttempts = 100

// Rand is the random source for food placement and themes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Food is the single pellet on the board.
type Food struct {
	grid        Grid
	rng         Rand
	maxAttempts int

	pos      Cell
	attempts int
	fellBack bool
}

// NewFood creates a food generator. The pellet sits at the origin until
// Generate is called.
func NewFood(grid Grid, rng Rand, maxAttempts int) *Food {
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodAttempts
	}
	return &Food{grid: grid, rng: rng, maxAttempts: maxAttempts}
}

// Position returns the pellet's cell.
func (f *Food) Position() Cell {
	return f.pos
}

// Attempts returns how many random samples the last Generate drew.
func (f *Food) Attempts() int {
	return f.attempts
}

// FellBack reports whether the last Generate exhausted its samples.
func (f *Food) FellBack() bool {
	return f.fellBack
}

// Generate places the pellet on a random cell not in occupied. occupied is
// the snake body, head first. When every sample hits the body the pellet
// goes to the first corner or center cell that is not the head; that cell
// may still be on the body.
func (f *Food) Generate(occupied []Cell) {
	taken := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	f.fellBack = false
	for f.attempts = 1; f.attempts <= f.maxAttempts; f.attempts++ {
		f.pos = f.sample()
		if _, hit := taken[f.pos]; !hit {
			return
		}
	}
	f.attempts = f.maxAttempts
	f.fellBack = true

	if len(occupied) == 0 {
		return
	}
	head := occupied[0]
	corners := f.grid.Corners()
	candidates := append(corners[:], f.grid.Center())
	for _, c := range candidates {
		if c != head {
			f.pos = c
			return
		}
	}
}

func (f *Food) sample() Cell {
	col := int(math.Floor(f.rng.Float64() * float64(f.grid.Cols())))
	row := int(math.Floor(f.rng.Float64() * float64(f.grid.Rows())))
	return f.grid.CellAt(col, row)
}
