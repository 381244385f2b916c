package engine

import "testing"

func TestIsGameOverWithEmptyCell(t *testing.T) {
	// Any grid containing a zero is never game over.
	g := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	if IsGameOver(g) {
		t.Error("grid with an empty cell should not be game over")
	}
}

func TestIsGameOverWithMergeablePair(t *testing.T) {
	g := Grid{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if IsGameOver(g) {
		t.Error("grid with an adjacent equal pair should not be game over")
	}
}

func TestIsGameOverCheckerboard(t *testing.T) {
	// Full board, strictly alternating values, no equal neighbors.
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	if !IsGameOver(g) {
		t.Error("checkerboard grid with no equal neighbors should be game over")
	}
}

func TestIsGameOverVerticalPair(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{2, 2, 4, 8},
	}
	// g[2][0] == g[3][0] == 2: vertical merge available.
	if IsGameOver(g) {
		t.Error("vertical equal pair should keep the game alive")
	}
}

func TestHasWonBoundaries(t *testing.T) {
	tests := []struct {
		name string
		tile int
		want bool
	}{
		{"below target", 1024, false},
		{"exact target", 2048, true},
		{"beyond target", 4096, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			g[1][2] = tt.tile
			if got := HasWon(g); got != tt.want {
				t.Errorf("HasWon with max tile %d = %v, want %v", tt.tile, got, tt.want)
			}
		})
	}
}

func TestHasWonEmptyGrid(t *testing.T) {
	if HasWon(NewGrid()) {
		t.Error("empty grid cannot be a win")
	}
}

func TestEmptyCells(t *testing.T) {
	g := Grid{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(g)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	for _, p := range cells {
		if g[p.Row][p.Col] != 0 {
			t.Errorf("EmptyCells reported occupied cell %v", p)
		}
	}
}

func TestMaxTile(t *testing.T) {
	g := Grid{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if max := MaxTile(g); max != 2048 {
		t.Errorf("MaxTile = %d, want 2048", max)
	}
	if max := MaxTile(NewGrid()); max != 0 {
		t.Errorf("MaxTile of empty grid = %d, want 0", max)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid()
	g[0][0] = 2

	clone := g.Clone()
	clone[0][0] = 4

	if g[0][0] != 2 {
		t.Error("mutating a clone must not affect the original")
	}
}
