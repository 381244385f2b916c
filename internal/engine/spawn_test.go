package engine

import "testing"

func TestInitialGridHasTwoTiles(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewSpawner(seed, DefaultFourProb).InitialGrid()

		tiles := 0
		for r := range Size {
			for c := range Size {
				switch g[r][c] {
				case 0:
				case 2, 4:
					tiles++
				default:
					t.Fatalf("seed %d: unexpected tile value %d", seed, g[r][c])
				}
			}
		}

		if tiles != 2 {
			t.Fatalf("seed %d: initial grid has %d tiles, want 2", seed, tiles)
		}
	}
}

func TestAddTileFillsLastEmptyCell(t *testing.T) {
	// With exactly one empty cell the spawner has no choice of position.
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	}

	for seed := int64(0); seed < 20; seed++ {
		result := NewSpawner(seed, DefaultFourProb).AddTile(g)

		v := result[3][3]
		if v != 2 && v != 4 {
			t.Fatalf("seed %d: filled value = %d, want 2 or 4", seed, v)
		}

		// Every other cell stays untouched.
		result[3][3] = 0
		g2 := g
		g2[3][3] = 0
		if result != g2 {
			t.Fatalf("seed %d: spawn modified an occupied cell", seed)
		}
	}
}

func TestAddTileFullGridIsNoOp(t *testing.T) {
	g := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	result := NewSpawner(7, DefaultFourProb).AddTile(g)
	if result != g {
		t.Error("AddTile on a full grid must return the grid unchanged")
	}
}

func TestAddTileDoesNotMutateInput(t *testing.T) {
	g := NewGrid()
	before := g

	NewSpawner(1, DefaultFourProb).AddTile(g)
	if g != before {
		t.Error("AddTile mutated the caller's grid")
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	a := NewSpawner(12345, DefaultFourProb)
	b := NewSpawner(12345, DefaultFourProb)

	ga := a.InitialGrid()
	gb := b.InitialGrid()
	if ga != gb {
		t.Fatalf("same seed produced different grids:\n%v\nvs\n%v", ga, gb)
	}

	for i := 0; i < 10; i++ {
		ga = a.AddTile(ga)
		gb = b.AddTile(gb)
		if ga != gb {
			t.Fatalf("spawn sequence diverged at step %d", i)
		}
	}
}

func TestSpawnerFourProbability(t *testing.T) {
	// With fourProb 1.0 every spawn is a 4; with 0.0 every spawn is a 2.
	all4 := NewSpawner(3, 1.0)
	all2 := NewSpawner(3, 0.0)

	for i := 0; i < 30; i++ {
		g4 := all4.AddTile(NewGrid())
		g2 := all2.AddTile(NewGrid())

		if MaxTile(g4) != 4 {
			t.Fatalf("fourProb=1.0 spawned %d, want 4", MaxTile(g4))
		}
		if MaxTile(g2) != 2 {
			t.Fatalf("fourProb=0.0 spawned %d, want 2", MaxTile(g2))
		}
	}
}

func TestNewSpawnerClampsInvalidProbability(t *testing.T) {
	// Out-of-range probabilities fall back to the default; observable
	// only statistically, so just exercise both sides for panics and
	// check spawned values stay in {2, 4}.
	for _, p := range []float64{-0.5, 1.5} {
		g := NewSpawner(11, p).AddTile(NewGrid())
		if v := MaxTile(g); v != 2 && v != 4 {
			t.Errorf("fourProb=%v spawned %d, want 2 or 4", p, v)
		}
	}
}
