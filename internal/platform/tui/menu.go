package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andrevka/tilt48/internal/config"
	"github.com/andrevka/tilt48/internal/engine"
	"github.com/andrevka/tilt48/internal/session"
	"github.com/andrevka/tilt48/internal/storage"
)

// screen identifies which child screen a SessionModel is showing.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenBoard
)

// Menu entries. Resume appears only when a save exists.
const (
	menuNewGame     = "New Game"
	menuResume      = "Resume"
	menuLeaderboard = "Leaderboard"
	menuQuit        = "Quit"
)

// SessionModel drives one player's visit: a menu that hands off to the
// game or the leaderboard and takes control back on escape. Used for
// SSH sessions and the local menu alike.
type SessionModel struct {
	store  *storage.Store
	player string
	cfg    config.Config

	width  int
	height int

	screen  screen
	cursor  int
	choices []string

	game  GameModel
	board ScoreboardModel

	quitting bool
}

// NewSessionModel creates the menu-first session flow for a player.
func NewSessionModel(store *storage.Store, player string, cfg config.Config, width, height int) SessionModel {
	m := SessionModel{
		store:  store,
		player: player,
		cfg:    cfg,
		width:  width,
		height: height,
	}
	m.choices = m.menuChoices()
	return m
}

// menuChoices builds the menu, including Resume only when a save exists.
func (m *SessionModel) menuChoices() []string {
	choices := []string{menuNewGame}
	if m.store != nil {
		if entry, err := m.store.LoadGame(m.player); err == nil && entry != nil {
			choices = append(choices, menuResume)
		}
	}
	return append(choices, menuLeaderboard, menuQuit)
}

// newSpawner builds a time-seeded spawner from the config.
func (m *SessionModel) newSpawner() *engine.Spawner {
	return engine.NewSpawner(time.Now().UnixNano(), m.cfg.Spawn.FourProbability)
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenBoard:
		return m.updateBoard(msg)
	}
	return m, nil
}

// updateMenu handles menu navigation.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j", "s":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case "enter", " ":
		return m.selectMenuItem()
	}

	return m, nil
}

// selectMenuItem acts on the highlighted menu entry.
func (m SessionModel) selectMenuItem() (tea.Model, tea.Cmd) {
	switch m.choices[m.cursor] {
	case menuNewGame:
		sess := session.New(m.player, m.newSpawner())
		m.game = NewGameModel(sess, m.store, m.cfg.UI.Theme, m.width, m.height)
		m.screen = screenGame

	case menuResume:
		entry, err := m.store.LoadGame(m.player)
		if err != nil || entry == nil {
			// Save vanished or is corrupt; fall back to a new game.
			sess := session.New(m.player, m.newSpawner())
			m.game = NewGameModel(sess, m.store, m.cfg.UI.Theme, m.width, m.height)
		} else {
			sess := session.Resume(m.player, entry.Record, m.newSpawner())
			m.game = NewGameModel(sess, m.store, m.cfg.UI.Theme, m.width, m.height)
		}
		m.screen = screenGame

	case menuLeaderboard:
		m.board = NewScoreboardModel(m.store, m.width, m.height)
		m.screen = screenBoard

	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// updateGame forwards to the game screen, intercepting escape to return
// to the menu instead of ending the program.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.game.autosave()
			return m.backToMenu()
		case "tab":
			m.game.autosave()
			m.board = NewScoreboardModel(m.store, m.width, m.height)
			m.screen = screenBoard
			return m, nil
		}
	}

	child, cmd := m.game.Update(msg)
	if game, ok := child.(GameModel); ok {
		m.game = game
		if game.quitting {
			m.quitting = true
		}
	}
	return m, cmd
}

// updateBoard forwards to the leaderboard screen, returning to the menu
// when the user backs out.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "b", "tab":
			return m.backToMenu()
		}
	}

	child, cmd := m.board.Update(msg)
	if board, ok := child.(ScoreboardModel); ok {
		m.board = board
		if board.quitting {
			m.quitting = true
		}
	}
	return m, cmd
}

// backToMenu rebuilds the menu (a save may have appeared or vanished).
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.choices = m.menuChoices()
	if m.cursor >= len(m.choices) {
		m.cursor = 0
	}
	m.screen = screenMenu
	return m, nil
}

var (
	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
)

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenBoard:
		return m.board.View()
	}

	lines := []string{
		titleStyle.Render("tilt48"),
		hudStyle.Render(fmt.Sprintf("player: %s", m.player)),
		"",
	}

	for i, choice := range m.choices {
		if i == m.cursor {
			lines = append(lines, menuSelectedStyle.Render("> "+choice))
		} else {
			lines = append(lines, menuItemStyle.Render("  "+choice))
		}
	}

	lines = append(lines, "", helpStyle.Render("↑/↓ move · enter select · q quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunMenu starts the menu-first flow as a standalone program.
func RunMenu(store *storage.Store, player string, cfg config.Config, width, height int) error {
	model := NewSessionModel(store, player, cfg, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
