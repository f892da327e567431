package tui

import (
	"context"
	"fmt"
	"image"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/raster"
	"github.com/vovakirdan/tui-scribble/internal/refimage"
	"github.com/vovakirdan/tui-scribble/internal/session"
	"github.com/vovakirdan/tui-scribble/internal/storage"
	"github.com/vovakirdan/tui-scribble/internal/words"
)

// Layout constants
const (
	hudLines       = 2  // Lines above the canvas border
	footerLines    = 2  // Feedback and help lines below the canvas border
	minCanvasCols  = 10 // Smallest usable canvas
	minCanvasRows  = 4
	minWidthForRef = 80 // Minimum width to show the reference preview
	refCols        = 24 // Reference preview width in cells
	maxBrushSize   = 50
)

// palette is the set of ink colors cycled with [ and ].
var palette = []string{
	"#000000", "#e03131", "#f08c00", "#2f9e44",
	"#1971c2", "#9c36b5", "#868e96", "#ffffff",
}

// Scorer rates a drawing against the reference image for seed.
type Scorer interface {
	Score(ctx context.Context, user image.Image, seed string) float64
}

// Deps are the collaborators a Model drives.
type Deps struct {
	Config     config.Config
	Words      []words.Word
	Scorer     Scorer
	References refimage.Provider // Optional; enables the reference preview
	Store      *storage.Store    // Optional; nil disables persistence
	Logger     *log.Logger
	Seed       uint64 // Word shuffle seed, 0 for random
}

// ModelOptions configure the initial screen.
type ModelOptions struct {
	Width      int
	Height     int
	Difficulty config.Difficulty
	Mode       config.Mode
	AutoStart  bool // Start a session immediately instead of showing the menu
}

// layout is where the canvas sits on screen.
type layout struct {
	canvasX, canvasY int // Screen cell of the canvas origin
	cols, rows       int // Canvas size in cells
	showRef          bool
}

// scoreResultMsg carries the accuracy for a score request.
type scoreResultMsg struct {
	Token    uint64
	Accuracy float64
}

// referenceMsg carries a decoded reference image for the preview.
type referenceMsg struct {
	Seed  string
	Image image.Image
	Err   error
}

// Model is the Bubble Tea model for a drawing session.
type Model struct {
	deps   Deps
	ctrl   *session.Controller
	logger *log.Logger

	keys GameKeyMap
	help help.Model
	menu homeMenu

	history     HistoryModel
	showHistory bool

	width, height int
	layout        layout

	clockGen   uint64 // Active clock generation, 0 when stopped
	feedback   string
	word       words.Word
	reference  image.Image
	paletteIdx int
	highScore  int

	initCmd  tea.Cmd
	quitting bool
}

// NewModel creates a model on the home screen, or in a running session when
// opts.AutoStart is set.
func NewModel(deps Deps, opts ModelOptions) Model {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyEasy
	}

	var ctrlOpts []session.Option
	if deps.Seed != 0 {
		ctrlOpts = append(ctrlOpts, session.WithRand(rand.New(rand.NewPCG(deps.Seed, deps.Seed))))
	}

	var high int
	if deps.Store != nil {
		high = session.LoadHighScore(deps.Store, logger)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		deps:       deps,
		ctrl:       session.NewController(deps.Config, deps.Words, high, ctrlOpts...),
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		help:       h,
		menu:       newHomeMenu(opts.Difficulty, opts.Mode),
		width:      opts.Width,
		height:     opts.Height,
		paletteIdx: max(0, lo.IndexOf(palette, deps.Config.Canvas.Color)),
		highScore:  high,
	}
	m.relayout()

	if opts.AutoStart {
		m.initCmd = m.apply(m.ctrl.Handle(session.StartGame{
			Difficulty: m.menu.selected(),
			Mode:       m.menu.mode,
		}))
	}
	return m
}

// Init returns the commands for an auto-started session.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Controller exposes the session controller.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// Feedback returns the last feedback message.
func (m Model) Feedback() string {
	return m.feedback
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		if m.showHistory {
			var cmd tea.Cmd
			m.history, cmd = m.history.update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHistory {
			return m.handleHistory(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ClockTickMsg:
		if m.clockGen == 0 || msg.Generation != m.clockGen {
			return m, nil
		}
		cmd := m.apply(m.ctrl.Handle(session.Tick{Generation: msg.Generation}))
		if m.clockGen == msg.Generation {
			cmd = tea.Batch(cmd, clockCmd(msg.Generation))
		}
		return m, cmd

	case scoreResultMsg:
		return m, m.apply(m.ctrl.Handle(session.ScoreResolved{Token: msg.Token, Accuracy: msg.Accuracy}))

	case referenceMsg:
		if msg.Err != nil {
			m.logger.Debug("Reference preview unavailable", "seed", msg.Seed, "error", msg.Err)
			return m, nil
		}
		if msg.Seed == m.word.Seed() {
			m.reference = msg.Image
		}
		return m, nil
	}

	if m.showHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press for the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ctrl.Screen() {
	case session.ScreenHome:
		return m.handleMenuKey(msg)
	case session.ScreenResults:
		return m.handleResultsKey(msg)
	default:
		return m.handleGameKey(msg)
	}
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.menu.up()
	case MenuActionDown:
		m.menu.down()
	case MenuActionMode:
		m.menu.toggleMode()
	case MenuActionHistory:
		m.openHistory()
	case MenuActionSelect:
		return m, m.start()
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "r", "enter":
		return m, m.start()
	case "b", "esc":
		return m, m.apply(m.ctrl.Handle(session.GoHome{}))
	case "h":
		m.openHistory()
	}
	return m, nil
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd session.Command

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Home):
		cmd = session.GoHome{}
	case key.Matches(msg, m.keys.Pause):
		cmd = session.TogglePause{}
	case key.Matches(msg, m.keys.Submit):
		cmd = session.Submit{}
	case key.Matches(msg, m.keys.Undo):
		cmd = session.Undo{}
	case key.Matches(msg, m.keys.Clear):
		cmd = session.Clear{}
	case key.Matches(msg, m.keys.Pencil):
		cmd = session.SelectTool{Tool: raster.ToolPencil}
	case key.Matches(msg, m.keys.Eraser):
		cmd = session.SelectTool{Tool: raster.ToolEraser}
	case key.Matches(msg, m.keys.Fill):
		cmd = session.SelectTool{Tool: raster.ToolFill}
	case key.Matches(msg, m.keys.NextColor):
		m.paletteIdx = (m.paletteIdx + 1) % len(palette)
		cmd = session.SetColor{Hex: palette[m.paletteIdx]}
	case key.Matches(msg, m.keys.PrevColor):
		m.paletteIdx = (m.paletteIdx + len(palette) - 1) % len(palette)
		cmd = session.SetColor{Hex: palette[m.paletteIdx]}
	case key.Matches(msg, m.keys.Thicker):
		cmd = session.SetBrushSize{Width: min(maxBrushSize, m.ctrl.Surface().BrushSize()+1)}
	case key.Matches(msg, m.keys.Thinner):
		cmd = session.SetBrushSize{Width: max(1, m.ctrl.Surface().BrushSize()-1)}
	default:
		return m, nil
	}

	return m, m.apply(m.ctrl.Handle(cmd))
}

// handleHistory forwards keys to the history table until it is closed.
func (m Model) handleHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.update(msg)

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		m.showHistory = false
		return m, nil
	}
	return m, cmd
}

// handleMouse turns left button drags on the canvas into pointer commands.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHistory || m.ctrl.Screen() != session.ScreenPlaying {
		return m, nil
	}

	p, inside := m.canvasPoint(msg.X, msg.Y)

	var cmd session.Command
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		cmd = session.PointerDown{Point: p}
	case tea.MouseActionMotion:
		cmd = session.PointerMove{Point: p}
	case tea.MouseActionRelease:
		cmd = session.PointerUp{}
	default:
		return m, nil
	}

	return m, m.apply(m.ctrl.Handle(cmd))
}

// canvasPoint maps a screen cell to display space. Each cell is one display
// pixel wide and two tall; the point is the center of the cell.
func (m Model) canvasPoint(x, y int) (raster.Point, bool) {
	cx, cy := x-m.layout.canvasX, y-m.layout.canvasY
	inside := cx >= 0 && cy >= 0 && cx < m.layout.cols && cy < m.layout.rows
	return raster.Point{X: float64(cx) + 0.5, Y: float64(cy)*2 + 1}, inside
}

// start begins a session with the menu selection. The stored high score is
// re-read first since other sessions may share the store.
func (m *Model) start() tea.Cmd {
	if m.deps.Store != nil {
		m.ctrl.SyncHighScore(session.LoadHighScore(m.deps.Store, m.logger))
	}
	return m.apply(m.ctrl.Handle(session.StartGame{
		Difficulty: m.menu.selected(),
		Mode:       m.menu.mode,
	}))
}

func (m *Model) openHistory() {
	m.history = NewHistoryModel(m.deps.Store, m.width, m.height)
	m.showHistory = true
}

// relayout recomputes the canvas placement and resizes the canvas buffer.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	l := layout{canvasX: 1, canvasY: hudLines + 1}
	l.showRef = m.width >= minWidthForRef && m.deps.References != nil

	cols := m.width - 2
	if l.showRef {
		cols -= refCols + 3 // Preview border and gap
	}
	l.cols = max(minCanvasCols, cols)
	l.rows = max(minCanvasRows, m.height-hudLines-footerLines-2)
	m.layout = l

	ppc := max(1, m.deps.Config.Canvas.PixelsPerCell)
	m.ctrl.Handle(session.Resize{
		Width:         l.cols * ppc,
		Height:        l.rows * 2 * ppc,
		DisplayWidth:  float64(l.cols),
		DisplayHeight: float64(l.rows * 2),
	})
}

// apply carries out the driver effects and records the presentation ones.
// It returns the commands that deliver asynchronous results back to Update.
func (m *Model) apply(effects []session.Effect) tea.Cmd {
	var cmds []tea.Cmd

	for _, e := range effects {
		switch e := e.(type) {
		case session.Feedback:
			m.feedback = e.Message
		case session.WordChanged:
			m.word = e.Word
			m.reference = nil
			cmds = append(cmds, m.fetchReference(e.Word.Seed()))
		case session.ScoreChanged:
			m.highScore = e.HighScore
		case session.StartClock:
			m.clockGen = e.Generation
			cmds = append(cmds, clockCmd(e.Generation))
		case session.StopClock:
			m.clockGen = 0
		case session.RequestScore:
			cmds = append(cmds, m.scoreCmd(e))
		case session.RecordSession, session.SetHighScore:
			if m.deps.Store != nil {
				session.Persist(m.deps.Store, m.logger, e)
			}
		case session.ScreenChanged:
			if e.Screen == session.ScreenHome {
				m.word = words.Word{}
				m.reference = nil
				m.feedback = ""
			}
		}
	}

	return tea.Batch(cmds...)
}

// scoreCmd rates the canvas off the UI goroutine.
func (m Model) scoreCmd(req session.RequestScore) tea.Cmd {
	scorer := m.deps.Scorer
	fallback := m.deps.Config.Scoring.FallbackScore

	return func() tea.Msg {
		if scorer == nil {
			return scoreResultMsg{Token: req.Token, Accuracy: fallback}
		}
		return scoreResultMsg{
			Token:    req.Token,
			Accuracy: scorer.Score(context.Background(), req.Canvas, req.Seed),
		}
	}
}

// fetchReference loads the preview image for seed.
func (m Model) fetchReference(seed string) tea.Cmd {
	p := m.deps.References
	if p == nil || !m.layout.showRef {
		return nil
	}
	timeout := m.deps.Config.Reference.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		img, err := refimage.Load(ctx, p, seed)
		return referenceMsg{Seed: seed, Image: img, Err: err}
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	switch m.ctrl.Screen() {
	case session.ScreenHome:
		return m.menu.view(m.deps.Config.Session, m.highScore, m.width)
	case session.ScreenResults:
		r, _ := m.ctrl.Result()
		return resultsView(r, m.highScore, m.width)
	default:
		return m.gameView()
	}
}

// gameView renders the HUD, canvas, preview, feedback and help.
func (m Model) gameView() string {
	st := m.ctrl.State()
	line := lipgloss.NewStyle().MaxWidth(max(1, m.width))

	var b strings.Builder

	// HUD
	word := titleStyle.Render(m.word.Text)
	if m.word.Clue != "" {
		word += dimStyle.Render(" (" + m.word.Clue + ")")
	}
	top := fmt.Sprintf("Draw %d/%d: %s   Time %s   Score %d   Best %d",
		min(st.DrawnCount+1, st.TargetCount), st.TargetCount, word,
		formatSeconds(st.RemainingSeconds), st.Score, st.HighScore)
	b.WriteString(line.Render(top))
	b.WriteString("\n")

	surface := m.ctrl.Surface()
	ink, ok := raster.ParseHex(surface.Color())
	if !ok {
		ink = raster.Black
	}
	accuracy := "--"
	if acc, ok := m.ctrl.LastAccuracy(); ok {
		accuracy = fmt.Sprintf("%d%%", int(acc+0.5))
	}
	status := fmt.Sprintf("Tool %s   Color %s %s   Brush %.0f   Accuracy %s",
		st.ActiveTool, swatch(ink), surface.Color(), surface.BrushSize(), accuracy)
	if m.ctrl.Scoring() {
		status += dimStyle.Render("   scoring...")
	}
	b.WriteString(line.Render(status))
	b.WriteString("\n")

	// Canvas and preview
	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	var canvas string
	if st.Paused {
		canvas = lipgloss.Place(m.layout.cols, m.layout.rows, lipgloss.Center, lipgloss.Center,
			accentStyle.Render("PAUSED")+"\n"+dimStyle.Render("press p to resume"))
	} else {
		canvas = RenderImage(surface.Buffer().Image(), m.layout.cols, m.layout.rows)
	}
	body := border.Render(canvas)

	if m.layout.showRef {
		ref := lipgloss.Place(refCols, refCols/2, lipgloss.Center, lipgloss.Center, dimStyle.Render("loading..."))
		if m.reference != nil && !st.Paused {
			ref = RenderImage(m.reference, refCols, refCols/2)
		}
		panel := dimStyle.Render("Reference") + "\n" + border.Render(ref)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", panel)
	}
	b.WriteString(body)
	b.WriteString("\n")

	// Footer
	b.WriteString(line.Render(m.feedback))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts a local game on the terminal.
func Run(deps Deps, opts ModelOptions) error {
	model := NewModel(deps, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to draw
	)

	_, err := p.Run()
	return err
}
