package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andrevka/tilt48/internal/engine"
	"github.com/andrevka/tilt48/internal/session"
	"github.com/andrevka/tilt48/internal/storage"
)

// spawnDelay is the presentation gap between an accepted move and the
// new tile appearing. Input arriving inside the gap is rejected by the
// session, never queued.
const spawnDelay = 120 * time.Millisecond

// spawnMsg fires when the pending tile should be placed.
type spawnMsg struct{}

func spawnCmd() tea.Cmd {
	return tea.Tick(spawnDelay, func(time.Time) tea.Msg {
		return spawnMsg{}
	})
}

// GameModel is the Bubble Tea model for one game screen.
type GameModel struct {
	sess  *session.Session
	store *storage.Store
	theme string

	keys GameKeyMap
	help help.Model

	width  int
	height int

	quitting       bool
	scoreSubmitted bool
}

// NewGameModel creates the game screen for an existing session.
// store may be nil; saving and score submission are then skipped.
func NewGameModel(sess *session.Session, store *storage.Store, theme string, width, height int) GameModel {
	h := help.New()
	h.ShowAll = false

	return GameModel{
		sess:   sess,
		store:  store,
		theme:  theme,
		keys:   DefaultGameKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles input and spawn timing.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spawnMsg:
		return m.handleSpawn()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.autosave()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.sess.NewGame()
		m.scoreSubmitted = false
		m.autosave()
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if m.sess.Undo() {
			m.autosave()
		}
		return m, nil
	}

	if dir, ok := directionFor(msg, m.keys); ok {
		if m.sess.State() == session.StateOver {
			return m, nil
		}

		result, err := m.sess.Move(dir)
		if err != nil {
			// A spawn is still in flight; drop the move.
			return m, nil
		}
		if result.Moved {
			return m, spawnCmd()
		}
	}

	return m, nil
}

// handleSpawn settles the pending tile and persists the session.
func (m GameModel) handleSpawn() (tea.Model, tea.Cmd) {
	state := m.sess.Settle()
	m.autosave()

	if state == session.StateOver && !m.scoreSubmitted {
		if m.store != nil {
			//nolint:errcheck // Best-effort submission, game continues regardless
			m.store.SubmitScore(m.sess.Player(), m.sess.Score(), engine.MaxTile(m.sess.Grid()))
			//nolint:errcheck // Finished games have no save to resume
			m.store.DeleteGame(m.sess.Player())
		}
		m.scoreSubmitted = true
	}

	return m, nil
}

// autosave persists the current session record, best-effort.
func (m *GameModel) autosave() {
	if m.store == nil || m.sess.State() == session.StateOver {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(m.sess.Player(), m.sess.Snapshot())
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	overStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the game screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	grid := m.sess.Grid()

	hud := hudStyle.Render(fmt.Sprintf("Score: %d   Best: %d", m.sess.Score(), m.sess.Best()))

	var banner string
	switch m.sess.State() {
	case session.StateWon:
		banner = wonStyle.Render("2048! Keep going or press R to restart")
	case session.StateOver:
		banner = overStyle.Render(fmt.Sprintf("GAME OVER - max tile %d - press R to restart", engine.MaxTile(grid)))
	}

	parts := []string{
		titleStyle.Render("tilt48"),
		hud,
		renderGrid(grid, m.theme),
	}
	if banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts a standalone Bubble Tea program for the given session.
func Run(sess *session.Session, store *storage.Store, theme string, width, height int) error {
	model := NewGameModel(sess, store, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
