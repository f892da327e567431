package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
)

// homeMenu is the difficulty picker shown on the home screen.
type homeMenu struct {
	items  []config.Difficulty
	cursor int
	mode   config.Mode
}

func newHomeMenu(d config.Difficulty, mode config.Mode) homeMenu {
	m := homeMenu{items: config.AllDifficulties(), mode: mode}
	if m.mode == "" {
		m.mode = config.ModeClueRound
	}
	for i, item := range m.items {
		if item == d {
			m.cursor = i
		}
	}
	return m
}

func (h *homeMenu) up() {
	if h.cursor > 0 {
		h.cursor--
	}
}

func (h *homeMenu) down() {
	if h.cursor < len(h.items)-1 {
		h.cursor++
	}
}

func (h *homeMenu) toggleMode() {
	if h.mode == config.ModeClassicReveal {
		h.mode = config.ModeClueRound
	} else {
		h.mode = config.ModeClassicReveal
	}
}

func (h homeMenu) selected() config.Difficulty {
	return h.items[h.cursor]
}

// view renders the home screen.
func (h homeMenu) view(cfg config.SessionConfig, highScore, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S C R I B B L E  "), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Draw the word before the clock runs out", width))
	b.WriteString("\n\n")

	// Difficulty list
	for i, d := range h.items {
		cursor := "  "
		if i == h.cursor {
			cursor = "> "
		}

		detail := fmt.Sprintf("%d words, %s", cfg.TargetCount(d), formatSeconds(cfg.TimeLimit(d)))
		if h.mode == config.ModeClassicReveal {
			detail = fmt.Sprintf("1 word, %s", formatSeconds(cfg.ClassicTimeLimit))
		}

		line := fmt.Sprintf("%s%-8s %s", cursor, d, dimStyle.Render("("+detail+")"))
		if i == h.cursor {
			line = accentStyle.Render(cursor+fmt.Sprintf("%-8s", d)) + " " + dimStyle.Render("("+detail+")")
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Mode: %s", modeTitle(h.mode)), width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", highScore), width))
	b.WriteString("\n\n")

	// Footer with controls
	controls := "Up/Down: Difficulty  |  Enter: Play  |  M: Mode  |  H: History  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), width))
	b.WriteString("\n")

	return b.String()
}

func modeTitle(m config.Mode) string {
	if m == config.ModeClassicReveal {
		return "Classic (one word, beat the clock)"
	}
	return "Clue round (score per drawing)"
}

// resultsView renders the summary of a finished session.
func resultsView(r session.Result, highScore, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	title := "TIME'S UP"
	switch r.Reason {
	case session.EndCompleted:
		title = "ALL DRAWN"
	case session.EndExhausted:
		title = "OUT OF WORDS"
	}
	b.WriteString(centerText(titleStyle.Render(title), width))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("%d/%d Images", r.WordsCompleted, r.TargetCount),
		fmt.Sprintf("Time taken: %s", formatSeconds(r.ElapsedSeconds)),
		fmt.Sprintf("Score: %d", r.Score),
		fmt.Sprintf("High score: %d", highScore),
	}
	for _, line := range lines {
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}
	if r.NewHighScore {
		b.WriteString("\n")
		b.WriteString(centerText(accentStyle.Render("New high score!"), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "R/Enter: Play again  |  B/Esc: Home  |  H: History  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), width))
	b.WriteString("\n")

	return b.String()
}
