// Package engine implements the 2048 grid transform and merge rules.
// All operations are pure: grids are passed and returned by value, the
// caller's grid is never modified. The only source of randomness is the
// Spawner, which takes an injectable seed.
package engine

// Size is the board dimension. The grid is always Size x Size.
const Size = 4

// Grid is a fixed 4x4 board. 0 marks an empty cell; every non-zero
// value the engine writes is a power of two. Being an array type,
// plain assignment yields an independent deep copy.
type Grid [Size][Size]int

// Position identifies a cell by row and column.
type Position struct {
	Row, Col int
}

// NewGrid returns an all-empty grid.
func NewGrid() Grid {
	return Grid{}
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	return g
}

// Transpose swaps rows and columns: cell [r][c] moves to [c][r].
// Composition primitive for the vertical moves.
func Transpose(g Grid) Grid {
	var result Grid
	for r := range Size {
		for c := range Size {
			result[r][c] = g[c][r]
		}
	}
	return result
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(g Grid) []Position {
	var cells []Position
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// Sum returns the sum of all cell values. Useful for conservation
// checks: a move never changes the sum, a spawn adds the new tile.
func Sum(g Grid) int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += g[r][c]
		}
	}
	return total
}
