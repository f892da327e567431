package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/storage"
)

const historyLimit = 100 // Max sessions loaded per view

// historyKeys are the key bindings of the history view.
type historyKeys struct {
	Up    key.Binding
	Down  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Order key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Order, k.Back, k.Quit}
}

func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev, k.Order}, {k.Back, k.Quit}}
}

func defaultHistoryKeys() historyKeys {
	return historyKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "difficulty")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
		Order: key.NewBinding(key.WithKeys("o", "r"), key.WithHelp("o", "best/recent")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HistoryModel lists recorded sessions, filtered by difficulty and ordered
// by score or by date, above a stats line for the selection.
type HistoryModel struct {
	store *storage.Store
	keys  historyKeys
	help  help.Model
	table table.Model

	filters []config.Difficulty // "" first, meaning all difficulties
	filter  int
	recent  bool

	sessions []storage.SessionEntry
	stats    map[config.Difficulty]*storage.DifficultyStats

	width, height int
	standalone    bool // Back quits when run outside the game
	back, quit    bool
}

// NewHistoryModel loads the best sessions across all difficulties.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:   store,
		keys:    defaultHistoryKeys(),
		help:    help.New(),
		filters: append([]config.Difficulty{""}, config.AllDifficulties()...),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = newHistoryTable(height)
	m.reload()
	return m
}

func newHistoryTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 6},
			{Title: "Words", Width: 6},
			{Title: "Time", Width: 6},
			{Title: "Level", Width: 7},
			{Title: "Mode", Width: 8},
			{Title: "Played", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, height-9)), // Title, tabs, stats, borders and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// reload queries the store for the current filter and order.
func (m *HistoryModel) reload() {
	m.sessions, m.stats = nil, nil
	if m.store != nil {
		d := m.filters[m.filter]
		var err error
		if m.recent {
			m.sessions, err = m.store.RecentSessions(historyLimit)
			if err == nil && d != "" {
				m.sessions = lo.Filter(m.sessions, func(s storage.SessionEntry, _ int) bool { return s.Difficulty == d })
			}
		} else {
			m.sessions, err = m.store.TopSessions(d, historyLimit)
		}
		if err != nil {
			m.sessions = nil
		}
		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}

	m.table.SetRows(lo.Map(m.sessions, func(s storage.SessionEntry, i int) table.Row {
		return table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d/%d", s.WordsCompleted, s.TargetCount),
			formatSeconds(s.ElapsedSeconds),
			string(s.Difficulty),
			string(s.Mode),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}))
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.update(msg)
}

func (m HistoryModel) update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.filter = (m.filter + 1) % len(m.filters)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.recent = !m.recent
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-9))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m HistoryModel) View() string {
	if m.quit {
		return ""
	}

	order := "BEST"
	if m.recent {
		order = "RECENT"
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HISTORY - "+order), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabsView(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")

	body := m.table.View()
	if len(m.sessions) == 0 {
		body = lipgloss.NewStyle().Italic(true).Padding(1, 4).
			Render("No sessions recorded yet.\nFinish a game to set a high score!")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(box.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) tabsView() string {
	active := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	idle := dimStyle.Padding(0, 1)

	tabs := lo.Map(m.filters, func(d config.Difficulty, i int) string {
		title := string(d)
		if d == "" {
			title = "All"
		}
		if i == m.filter {
			return active.Render(title)
		}
		return idle.Render(title)
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsLine summarizes the sessions of the selected difficulty.
func (m HistoryModel) statsLine() string {
	var sessions, completed, best, words int
	var total float64
	for d, s := range m.stats {
		if f := m.filters[m.filter]; f != "" && d != f {
			continue
		}
		sessions += s.Sessions
		completed += s.Completed
		best = max(best, s.BestScore)
		words += s.WordsDrawn
		total += s.AvgScore * float64(s.Sessions)
	}
	if sessions == 0 {
		return "No sessions"
	}
	return fmt.Sprintf("%d sessions, %d completed, best %d, average %.1f, %d words drawn",
		sessions, completed, best, total/float64(sessions), words)
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m HistoryModel) IsGoingBack() bool { return m.back }

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool { return m.quit }

// formatSeconds renders a duration as m:ss.
func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// RunHistory browses the history as a standalone program.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)
	model.standalone = true

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
