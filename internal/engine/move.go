package engine

// Direction is a requested move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
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

// MoveResult is the outcome of a single move attempt.
type MoveResult struct {
	Grid  Grid // resulting grid
	Score int  // sum of merged tile values created by this move
	Moved bool // whether the grid changed at all
}

// slideRow slides and merges a single row toward the left.
// Policy: compact out zeros, then one left-to-right sweep where each
// adjacent equal pair merges into the left tile and the sweep skips
// past the consumed tile, so a freshly merged tile never merges again
// within the same move ([2,2,2,2] -> [4,4,0,0] scoring 8, and
// [2,2,4,4] -> [4,8,0,0] scoring 12). Returns the row and score gained.
func slideRow(row [Size]int) (result [Size]int, score int) {
	var compact [Size]int
	n := 0
	for _, v := range row {
		if v != 0 {
			compact[n] = v
			n++
		}
	}

	writePos := 0
	for i := 0; i < n; i++ {
		v := compact[i]
		if i+1 < n && compact[i+1] == v {
			v *= 2
			score += v
			i++ // skip the consumed right tile
		}
		result[writePos] = v
		writePos++
	}

	return result, score
}

// reverseRow reverses a row.
func reverseRow(row [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = row[Size-1-i]
	}
	return result
}

// SlideLeft slides all tiles left and merges.
// Returns the new grid, score gained, and whether the grid changed.
// The change check compares each final output row to its original
// input row, element-wise.
func SlideLeft(g Grid) (Grid, int, bool) {
	var result Grid
	totalScore := 0
	moved := false

	for r := range Size {
		newRow, score := slideRow(g[r])
		result[r] = newRow
		totalScore += score

		if newRow != g[r] {
			moved = true
		}
	}

	return result, totalScore, moved
}

// SlideRight slides all tiles right and merges.
func SlideRight(g Grid) (Grid, int, bool) {
	var result Grid
	totalScore := 0
	moved := false

	for r := range Size {
		newRow, score := slideRow(reverseRow(g[r]))
		result[r] = reverseRow(newRow)
		totalScore += score

		if result[r] != g[r] {
			moved = true
		}
	}

	return result, totalScore, moved
}

// SlideUp slides all tiles up and merges.
func SlideUp(g Grid) (Grid, int, bool) {
	slid, score, moved := SlideLeft(Transpose(g))
	return Transpose(slid), score, moved
}

// SlideDown slides all tiles down and merges.
func SlideDown(g Grid) (Grid, int, bool) {
	slid, score, moved := SlideRight(Transpose(g))
	return Transpose(slid), score, moved
}

// Move performs a move in the given direction. An unrecognized
// direction is a deliberate no-op: unchanged grid, zero score,
// Moved=false. The dispatcher stays total so input-layer noise
// (e.g. an unmapped gesture) cannot corrupt state.
func Move(g Grid, dir Direction) MoveResult {
	var (
		grid  Grid
		score int
		moved bool
	)

	switch dir {
	case DirLeft:
		grid, score, moved = SlideLeft(g)
	case DirRight:
		grid, score, moved = SlideRight(g)
	case DirUp:
		grid, score, moved = SlideUp(g)
	case DirDown:
		grid, score, moved = SlideDown(g)
	default:
		return MoveResult{Grid: g}
	}

	return MoveResult{Grid: grid, Score: score, Moved: moved}
}
