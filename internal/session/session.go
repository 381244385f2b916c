// Package session owns one playing session: the grid threaded through a
// sequence of moves, the accumulated score, and the win/terminal
// observations. The engine itself is pure; the session is the layer
// that serializes move calls, so a server-authoritative caller can
// share a session across goroutines safely.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andrevka/tilt48/internal/engine"
)

// ErrMoveInFlight is returned when a move arrives while the previous
// accepted move is still waiting for its tile spawn. The move/spawn
// sequence is not atomic at the presentation layer, so a second move
// must not be accepted mid-flight.
var ErrMoveInFlight = errors.New("session: move already in flight")

// State is the session's coarse game state.
type State int

const (
	StatePlaying State = iota
	StateWon            // win tile observed; play may continue
	StateOver           // no legal move remains; absorbing
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Record is the durable shape of a session: what gets persisted after
// every accepted move and what seeds a resumed session.
type Record struct {
	Grid      engine.Grid
	Score     int
	Best      int
	UpdatedAt time.Time
}

// undoState captures the grid and score before the last accepted move.
type undoState struct {
	grid  engine.Grid
	score int
}

// Session is a single game in progress. All methods are safe for
// concurrent use; moves are serialized per session.
type Session struct {
	mu sync.Mutex

	id      string
	player  string
	spawner *engine.Spawner

	grid  engine.Grid
	score int
	best  int

	wonSeen      bool // non-reversible once observed
	over         bool
	pendingSpawn bool
	prev         *undoState
}

// New starts a fresh session for the given player. The spawner supplies
// the two initial tiles and every subsequent spawn.
func New(player string, spawner *engine.Spawner) *Session {
	return &Session{
		id:      uuid.NewString(),
		player:  player,
		spawner: spawner,
		grid:    spawner.InitialGrid(),
	}
}

// Resume reconstructs a session from a persisted record.
func Resume(player string, rec Record, spawner *engine.Spawner) *Session {
	s := &Session{
		id:      uuid.NewString(),
		player:  player,
		spawner: spawner,
		grid:    rec.Grid,
		score:   rec.Score,
		best:    rec.Best,
	}
	s.wonSeen = engine.HasWon(rec.Grid)
	s.over = engine.IsGameOver(rec.Grid)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Player returns the player name the session belongs to.
func (s *Session) Player() string {
	return s.player
}

// Grid returns the current grid value.
func (s *Session) Grid() engine.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Score returns the accumulated score for this session.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Best returns the best score seen, including scores carried in from a
// resumed record.
func (s *Session) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// State returns the session state. StateWon sticks once the win tile
// has been observed, unless the game has since reached StateOver.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	switch {
	case s.over:
		return StateOver
	case s.wonSeen:
		return StateWon
	default:
		return StatePlaying
	}
}

// Move attempts a move in the given direction. An accepted move
// (Moved=true) updates the grid and score and leaves a spawn pending;
// the caller presents the slide, then calls Settle to place the new
// tile. A rejected move changes nothing. Calling Move again before
// Settle returns ErrMoveInFlight.
func (s *Session) Move(dir engine.Direction) (engine.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingSpawn {
		return engine.MoveResult{Grid: s.grid}, ErrMoveInFlight
	}

	result := engine.Move(s.grid, dir)
	if !result.Moved {
		return result, nil
	}

	s.prev = &undoState{grid: s.grid, score: s.score}
	s.grid = result.Grid
	s.score += result.Score
	if s.score > s.best {
		s.best = s.score
	}
	s.pendingSpawn = true

	return result, nil
}

// Settle places the pending spawn tile and re-evaluates win and
// terminal conditions on the post-spawn grid. Calling Settle with no
// spawn pending is a no-op.
func (s *Session) Settle() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pendingSpawn {
		return s.stateLocked()
	}

	s.grid = s.spawner.AddTile(s.grid)
	s.pendingSpawn = false

	if engine.HasWon(s.grid) {
		s.wonSeen = true
	}
	if engine.IsGameOver(s.grid) {
		s.over = true
	}

	return s.stateLocked()
}

// Apply performs Move and Settle in one step, for callers without a
// presentation delay.
func (s *Session) Apply(dir engine.Direction) (engine.MoveResult, State, error) {
	result, err := s.Move(dir)
	if err != nil || !result.Moved {
		return result, s.State(), err
	}
	return result, s.Settle(), nil
}

// Undo restores the grid and score from before the last accepted move,
// including the spawned tile. One level deep; reports whether anything
// was undone. The win observation is not reversible.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prev == nil || s.pendingSpawn {
		return false
	}

	s.grid = s.prev.grid
	s.score = s.prev.score
	s.over = false
	s.prev = nil
	return true
}

// NewGame discards the grid and starts over. Score resets; best and
// the session identity are kept.
func (s *Session) NewGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = s.spawner.InitialGrid()
	s.score = 0
	s.wonSeen = false
	s.over = false
	s.pendingSpawn = false
	s.prev = nil
}

// Snapshot returns the durable record for the current state.
func (s *Session) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Record{
		Grid:      s.grid,
		Score:     s.score,
		Best:      s.best,
		UpdatedAt: time.Now(),
	}
}
