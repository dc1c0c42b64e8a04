package snake

import (
	"math/rand"
	"testing"
)

func TestFoodAvoidsOccupied(t *testing.T) {
	body := []Cell{{100, 100}, {80, 100}}
	// First two samples land on the body, the third is free.
	rng := cellRand(testGrid, Cell{100, 100}, Cell{80, 100}, Cell{300, 20})
	f := NewFood(testGrid, rng, DefaultFoodAttempts)

	f.Generate(body)

	if f.Position() != (Cell{300, 20}) {
		t.Errorf("Position() = %v, expected {300 20}", f.Position())
	}
	if f.Attempts() != 3 {
		t.Errorf("Attempts() = %d, expected 3", f.Attempts())
	}
	if f.FellBack() {
		t.Error("FellBack() should be false when a sample succeeded")
	}
}

func TestFoodFallbackSkipsHead(t *testing.T) {
	// Every sample hits the top-left cell, which is the head.
	rng := &scriptedRand{vals: []float64{0}}
	f := NewFood(testGrid, rng, DefaultFoodAttempts)

	f.Generate([]Cell{{0, 0}, {20, 0}})

	if !f.FellBack() {
		t.Fatal("FellBack() should be true after exhausting samples")
	}
	if f.Attempts() != DefaultFoodAttempts {
		t.Errorf("Attempts() = %d, expected %d", f.Attempts(), DefaultFoodAttempts)
	}
	if f.Position() != (Cell{380, 0}) {
		t.Errorf("fallback should pick the top-right corner, got %v", f.Position())
	}
}

func TestFoodFallbackOnlyAvoidsHead(t *testing.T) {
	// The top-left corner is on the body but not the head, so the fallback
	// takes it anyway.
	rng := &scriptedRand{vals: []float64{0}}
	f := NewFood(testGrid, rng, 10)

	f.Generate([]Cell{{100, 100}, {0, 0}})

	if f.Position() != (Cell{0, 0}) {
		t.Errorf("fallback should pick the top-left corner, got %v", f.Position())
	}
	if f.Attempts() != 10 {
		t.Errorf("Attempts() = %d, expected 10", f.Attempts())
	}
}

func TestFoodFallbackNarrowGrid(t *testing.T) {
	// A one-cell-wide grid makes all four corners collapse onto two cells.
	g := Grid{Width: 20, Height: 60, Size: 20}
	rng := &scriptedRand{vals: []float64{0}}
	f := NewFood(g, rng, 5)

	f.Generate([]Cell{{0, 0}, {0, 20}, {0, 40}})

	if f.Position() != (Cell{0, 40}) {
		t.Errorf("fallback should skip top corners equal to the head, got %v", f.Position())
	}
}

func TestFoodNeverOnBody(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewFood(testGrid, rng, DefaultFoodAttempts)

	for trial := 0; trial < 200; trial++ {
		// A random body covering up to three quarters of the grid.
		n := 1 + rng.Intn(300)
		perm := rng.Perm(testGrid.Cols() * testGrid.Rows())[:n]
		body := make([]Cell, n)
		for i, idx := range perm {
			body[i] = testGrid.CellAt(idx%testGrid.Cols(), idx/testGrid.Cols())
		}

		f.Generate(body)
		if f.FellBack() {
			continue
		}
		pos := f.Position()
		if !testGrid.Contains(pos) || !testGrid.Aligned(pos) {
			t.Fatalf("trial %d: food %v is not an aligned grid cell", trial, pos)
		}
		for _, c := range body {
			if c == pos {
				t.Fatalf("trial %d: food %v placed on the body", trial, pos)
			}
		}
	}
}

func TestFoodDefaultsAttempts(t *testing.T) {
	f := NewFood(testGrid, &scriptedRand{}, 0)
	if f.maxAttempts != DefaultFoodAttempts {
		t.Errorf("maxAttempts = %d, expected %d", f.maxAttempts, DefaultFoodAttempts)
	}
}
