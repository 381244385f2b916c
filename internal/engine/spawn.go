package engine

import "math/rand"

// DefaultFourProb is the default probability that a spawned tile is a 4
// rather than a 2.
const DefaultFourProb = 0.2

// Spawner places random tiles. It owns the engine's only randomness;
// callers inject the seed so spawn sequences are reproducible in tests.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
}

// NewSpawner creates a spawner with the given seed and probability of
// spawning a 4. Probabilities outside [0, 1] fall back to the default.
func NewSpawner(seed int64, fourProb float64) *Spawner {
	if fourProb < 0 || fourProb > 1 {
		fourProb = DefaultFourProb
	}
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		fourProb: fourProb,
	}
}

// AddTile places a 2 or 4 in a uniformly chosen empty cell and returns
// the new grid. A full grid is not an error: the input grid is returned
// unchanged, and callers detect the terminal state via IsGameOver.
func (s *Spawner) AddTile(g Grid) Grid {
	cells := EmptyCells(g)
	if len(cells) == 0 {
		return g
	}

	p := cells[s.rng.Intn(len(cells))]

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	g[p.Row][p.Col] = value
	return g
}

// InitialGrid returns a fresh starting grid with exactly two tiles.
// The second AddTile selects from the remaining 15 empty cells, so the
// tiles always land in distinct cells.
func (s *Spawner) InitialGrid() Grid {
	g := NewGrid()
	g = s.AddTile(g)
	g = s.AddTile(g)
	return g
}
