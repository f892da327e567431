package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GameKeyMap defines the key bindings while drawing.
type GameKeyMap struct {
	Submit    key.Binding
	Undo      key.Binding
	Clear     key.Binding
	Pencil    key.Binding
	Eraser    key.Binding
	Fill      key.Binding
	PrevColor key.Binding
	NextColor key.Binding
	Thinner   key.Binding
	Thicker   key.Binding
	Pause     key.Binding
	Home      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Undo, k.Clear, k.Pencil, k.Eraser, k.Fill, k.NextColor, k.Thicker, k.Pause, k.Home}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Undo, k.Clear},
		{k.Pencil, k.Eraser, k.Fill},
		{k.PrevColor, k.NextColor, k.Thinner, k.Thicker},
		{k.Pause, k.Home, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "submit"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Pencil: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "pencil"),
		),
		Eraser: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "eraser"),
		),
		Fill: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "fill"),
		),
		PrevColor: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev color"),
		),
		NextColor: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]/[", "color"),
		),
		Thinner: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "thinner"),
		),
		Thicker: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "brush"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Home: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionMode
	MenuActionHistory
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "m", "tab":
		return MenuActionMode
	case "h":
		return MenuActionHistory
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
