package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrevka/tilt48/internal/engine"
)

const tileWidth = 7

// classicTileColors approximates the palette of the original web game.
var classicTileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("255"),
	4:    lipgloss.Color("230"),
	8:    lipgloss.Color("215"),
	16:   lipgloss.Color("209"),
	32:   lipgloss.Color("203"),
	64:   lipgloss.Color("196"),
	128:  lipgloss.Color("227"),
	256:  lipgloss.Color("221"),
	512:  lipgloss.Color("220"),
	1024: lipgloss.Color("214"),
	2048: lipgloss.Color("226"),
}

var (
	emptyCellStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	boardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// tileStyle returns the style for a tile value under the given theme.
func tileStyle(value int, theme string) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true)

	if theme == "mono" {
		return s.Foreground(lipgloss.Color("252"))
	}

	if c, ok := classicTileColors[value]; ok {
		return s.Foreground(c)
	}
	// Beyond 2048: keep escalating tiles visually loud.
	return s.Foreground(lipgloss.Color("201"))
}

// renderGrid draws the 4x4 board as a bordered block of styled rows.
func renderGrid(g engine.Grid, theme string) string {
	rows := make([]string, 0, engine.Size)

	for r := range engine.Size {
		cells := make([]string, 0, engine.Size)
		for c := range engine.Size {
			v := g[r][c]
			if v == 0 {
				cells = append(cells, emptyCellStyle.Render("."))
				continue
			}
			cells = append(cells, tileStyle(v, theme).Render(strconv.Itoa(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}

	return boardBorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
