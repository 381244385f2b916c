package engine

// WinTile is the tile value that counts as a win.
const WinTile = 2048

// HasEmptyCell reports whether at least one cell is empty.
func HasEmptyCell(g Grid) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// hasAdjacentPair reports whether any cell has a horizontally or
// vertically adjacent neighbor with an equal value.
func hasAdjacentPair(g Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if c < Size-1 && g[r][c+1] == v {
				return true
			}
			if r < Size-1 && g[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether no move in any direction would change the
// grid: every cell is occupied and no equal neighbors remain. This is a
// direct adjacency scan, not a move simulation; for these rules the two
// are equivalent.
func IsGameOver(g Grid) bool {
	if HasEmptyCell(g) {
		return false
	}
	return !hasAdjacentPair(g)
}

// HasWon reports whether any cell holds exactly WinTile. It does not
// end the game by itself; the session decides whether play continues.
func HasWon(g Grid) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == WinTile {
				return true
			}
		}
	}
	return false
}
