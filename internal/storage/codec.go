package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andrevka/tilt48/internal/engine"
)

// ErrInvalidGrid marks a stored grid that does not round-trip as a 4x4
// matrix of valid tile values. Shape and value errors fail fast here so
// a corrupt save can never masquerade as a playable board.
var ErrInvalidGrid = errors.New("invalid grid")

// encodeGrid serializes a grid as 16 space-separated integers in
// row-major order.
func encodeGrid(g engine.Grid) string {
	fields := make([]string, 0, engine.Size*engine.Size)
	for r := range engine.Size {
		for c := range engine.Size {
			fields = append(fields, strconv.Itoa(g[r][c]))
		}
	}
	return strings.Join(fields, " ")
}

// decodeGrid parses and validates a serialized grid. Every cell must be
// zero or a power of two; anything else is ErrInvalidGrid.
func decodeGrid(text string) (engine.Grid, error) {
	var g engine.Grid

	fields := strings.Fields(text)
	if len(fields) != engine.Size*engine.Size {
		return g, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidGrid, len(fields), engine.Size*engine.Size)
	}

	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return engine.Grid{}, fmt.Errorf("%w: cell %d: %q is not an integer", ErrInvalidGrid, i, f)
		}
		if v < 0 {
			return engine.Grid{}, fmt.Errorf("%w: cell %d: negative value %d", ErrInvalidGrid, i, v)
		}
		if v != 0 && !isPowerOfTwo(v) {
			return engine.Grid{}, fmt.Errorf("%w: cell %d: %d is not a power of two", ErrInvalidGrid, i, v)
		}
		g[i/engine.Size][i%engine.Size] = v
	}

	return g, nil
}

// isPowerOfTwo reports whether v is a positive power of two. A lone 1
// is rejected as well: the smallest legal tile is 2.
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
