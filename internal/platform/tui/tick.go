// Package tui provides the Bubble Tea front end for the drawing game.
// It maps terminal input to session commands, carries out the effects the
// controller returns and renders the canvas with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockTickMsg is one second of game clock for a clock generation.
type ClockTickMsg struct {
	Generation uint64
}

// clockCmd returns a command that delivers the next tick in one second.
func clockCmd(generation uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return ClockTickMsg{Generation: generation}
	})
}
