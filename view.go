package main

import (
	"fmt"
	"strings"

	"go-tiles/internal/board"
	"go-tiles/internal/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // errors and misses
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // matches and results
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // attempts line
	boldStyle   = lipgloss.NewStyle().Bold(true)
	cursorColor = lipgloss.Color("12")

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(5).
			Align(lipgloss.Center)
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(boldStyle.Render("go-tiles") + "\n\n")

	if m.session.Phase == game.PhasePlaying {
		b.WriteString(m.renderBoard())
		b.WriteString("\n")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Number of attempts: %d", m.session.Game.Attempts())))
		if m.status != "" {
			style := greenStyle
			if m.status != "Match!" {
				style = redStyle
			}
			b.WriteString("  " + style.Render(m.status))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSelector())
	}

	if m.err != nil {
		b.WriteString("\n" + redStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *model) renderSelector() string {
	var b strings.Builder

	if r := m.session.LastResult; r != nil {
		b.WriteString(greenStyle.Render(r.Message()) + "\n")
		display := fmt.Sprintf("Score: %d", r.Score)
		if r.HighScore {
			display += " | You got a high score! Top scores (" + r.Size.String() + "):"
			for _, entry := range r.Top {
				display += fmt.Sprintf("\n  * %d in %d attempts on %s", entry.Score, entry.Attempts, entry.Timestamp)
			}
		}
		b.WriteString(display + "\n")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Rounds: %d | Total score: %d", m.session.RoundsPlayed, m.session.TotalScore)) + "\n\n")
	}

	b.WriteString("Choose number of tiles:\n")
	for _, opt := range []struct {
		key  string
		size board.Size
	}{{"1", board.Small}, {"2", board.Medium}, {"3", board.Large}} {
		w, h := opt.size.Dimensions()
		line := fmt.Sprintf("  [%s] %d x %d", opt.key, w, h)
		if opt.size == m.defaultSize {
			line = boldStyle.Render(line + "  (enter)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *model) renderBoard() string {
	bd := m.session.Game.Board
	w := bd.Width()

	var rows []string
	var cells []string
	for i, t := range bd.Tiles() {
		cells = append(cells, m.renderTile(t, i == m.cursor, bd.Narrow()))
		if (i+1)%w == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *model) renderTile(t *board.Tile, selected, narrow bool) string {
	style := tileStyle
	if narrow {
		style = style.Width(3).Padding(0)
	}
	content := "?"

	switch {
	case t.Hidden():
		content = " "
		style = style.BorderForeground(lipgloss.Color("8"))
	case t.FaceUp():
		content = t.Face()
		style = style.Bold(true)
	case t.Disabled():
		style = style.Foreground(lipgloss.Color("8"))
	}

	if selected {
		style = style.BorderForeground(cursorColor).Reverse(true)
	}
	return style.Render(content)
}
