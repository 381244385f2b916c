package engine

import "testing"

func TestSlideRow(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "four equal tiles merge pairwise",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 4},
			expected: [4]int{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge across gap",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "already compacted",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile slides",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4,4,4,4] must become [8,8,0,0] scoring 16, never [16,0,0,0].
	result, score := slideRow([4]int{4, 4, 4, 4})

	if result != [4]int{8, 8, 0, 0} {
		t.Errorf("slideRow = %v, want [8 8 0 0]", result)
	}
	if score != 16 {
		t.Errorf("score = %d, want 16", score)
	}
}

func TestSlideLeft(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, moved := SlideLeft(g)

	if result != expected {
		t.Errorf("SlideLeft: got\n%v\nwant\n%v", result, expected)
	}
	if !moved {
		t.Error("SlideLeft should report the grid changed")
	}
	if score != 20 {
		t.Errorf("SlideLeft score = %d, want 20", score)
	}
}

func TestSlideLeftEndToEnd(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
	}

	result := Move(g, DirLeft)

	if result.Grid[0] != [4]int{4, 0, 0, 0} {
		t.Errorf("row 0 = %v, want [4 0 0 0]", result.Grid[0])
	}
	for r := 1; r < Size; r++ {
		if result.Grid[r] != [4]int{} {
			t.Errorf("row %d = %v, want all zeros", r, result.Grid[r])
		}
	}
	if result.Score != 4 {
		t.Errorf("score = %d, want 4", result.Score)
	}
	if !result.Moved {
		t.Error("move should be accepted")
	}
}

func TestSlideRightEndToEnd(t *testing.T) {
	g := Grid{
		{2, 0, 0, 2},
	}

	result := Move(g, DirRight)

	if result.Grid[0] != [4]int{0, 0, 0, 4} {
		t.Errorf("row 0 = %v, want [0 0 0 4]", result.Grid[0])
	}
	if result.Score != 4 {
		t.Errorf("score = %d, want 4", result.Score)
	}
	if !result.Moved {
		t.Error("move should be accepted")
	}
}

func TestSlideUpEndToEnd(t *testing.T) {
	var g Grid
	g[0][0] = 2
	g[1][0] = 2

	result := Move(g, DirUp)

	if result.Grid[0][0] != 4 {
		t.Errorf("cell [0][0] = %d, want 4", result.Grid[0][0])
	}
	for r := 1; r < Size; r++ {
		if result.Grid[r][0] != 0 {
			t.Errorf("cell [%d][0] = %d, want 0", r, result.Grid[r][0])
		}
	}
	if result.Score != 4 {
		t.Errorf("score = %d, want 4", result.Score)
	}
	if !result.Moved {
		t.Error("move should be accepted")
	}
}

func TestSlideDown(t *testing.T) {
	g := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, moved := SlideDown(g)

	if result != expected {
		t.Errorf("SlideDown: got\n%v\nwant\n%v", result, expected)
	}
	if !moved {
		t.Error("SlideDown should report the grid changed")
	}
}

func TestRepeatedSlideIsNoOp(t *testing.T) {
	g := Grid{
		{4, 2, 0, 0},
		{8, 4, 2, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
	}

	first, _, moved := SlideLeft(g)
	if moved {
		t.Error("already left-compacted grid with no merges should not move")
	}

	// Sliding the result again without a spawn in between must also
	// report no movement.
	_, score, moved := SlideLeft(first)
	if moved {
		t.Error("second SlideLeft should report moved = false")
	}
	if score != 0 {
		t.Errorf("second SlideLeft score = %d, want 0", score)
	}
}

func TestMoveUnknownDirectionIsNoOp(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
	}

	result := Move(g, Direction(42))

	if result.Grid != g {
		t.Error("unknown direction must leave the grid unchanged")
	}
	if result.Moved {
		t.Error("unknown direction must report moved = false")
	}
	if result.Score != 0 {
		t.Errorf("unknown direction score = %d, want 0", result.Score)
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	g := Grid{
		{2, 2, 4, 4},
		{0, 2, 0, 2},
		{8, 0, 8, 0},
		{2, 4, 2, 4},
	}
	before := g

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		Move(g, dir)
		if g != before {
			t.Fatalf("Move(%v) mutated the input grid", dir)
		}
	}
}

func TestNoMoveOnSaturatedGrid(t *testing.T) {
	// Fully populated, no equal neighbors: every direction must be
	// rejected with zero score. This is exactly the game-over grid.
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		result := Move(g, dir)
		if result.Moved {
			t.Errorf("Move(%v) on saturated grid reported moved = true", dir)
		}
		if result.Score != 0 {
			t.Errorf("Move(%v) score = %d, want 0", dir, result.Score)
		}
		if result.Grid != g {
			t.Errorf("Move(%v) changed a saturated grid", dir)
		}
	}

	if !IsGameOver(g) {
		t.Error("saturated grid should be game over")
	}
}

func TestMoveConservesMass(t *testing.T) {
	// A move redistributes and merges tiles but never changes the sum
	// of cell values. Exercise many random grids in all directions.
	spawner := NewSpawner(99, DefaultFourProb)

	g := spawner.InitialGrid()
	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}

	for i := 0; i < 200; i++ {
		dir := dirs[i%len(dirs)]
		before := Sum(g)
		result := Move(g, dir)

		if Sum(result.Grid) != before {
			t.Fatalf("Move(%v) changed grid sum: %d -> %d", dir, before, Sum(result.Grid))
		}

		g = result.Grid
		if result.Moved {
			withSpawn := spawner.AddTile(g)
			spawned := Sum(withSpawn) - Sum(g)
			if !IsGameOver(g) && spawned != 2 && spawned != 4 {
				t.Fatalf("spawned tile value = %d, want 2 or 4", spawned)
			}
			g = withSpawn
		}
		if IsGameOver(g) {
			g = spawner.InitialGrid()
		}
	}
}

func TestTranspose(t *testing.T) {
	g := Grid{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	tr := Transpose(g)

	for r := range Size {
		for c := range Size {
			if tr[r][c] != g[c][r] {
				t.Fatalf("Transpose[%d][%d] = %d, want %d", r, c, tr[r][c], g[c][r])
			}
		}
	}

	if Transpose(tr) != g {
		t.Error("double transpose should restore the grid")
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
