// Package session implements the game state machine.
//
// A Controller owns the session record, the drawing surface, the word queue,
// the countdown and the score keeper. It is driven by a single goroutine
// through Handle, which applies one Command and returns the Effects the
// caller must present or carry out. The controller never blocks: clock ticks
// and accuracy scoring are requested through effects and fed back as
// commands.
package session

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/raster"
	"github.com/vovakirdan/tui-scribble/internal/words"
)

// Default canvas size until the first Resize.
const (
	DefaultCanvasWidth  = 160
	DefaultCanvasHeight = 96
)

// State is a read-only view of the current session.
type State struct {
	ID               string
	Mode             config.Mode
	Difficulty       config.Difficulty
	TargetCount      int
	DrawnCount       int
	Score            int
	HighScore        int
	RemainingSeconds int
	Paused           bool
	ActiveTool       raster.Tool
	ActiveWordIndex  int
}

// EndReason tells why a session ended.
type EndReason string

const (
	EndCompleted EndReason = "completed" // every target word was drawn
	EndTimeout   EndReason = "timeout"
	EndExhausted EndReason = "exhausted" // the word queue ran out first
)

// Result is the summary of a finished session.
type Result struct {
	ID             string
	Mode           config.Mode
	Difficulty     config.Difficulty
	WordsCompleted int
	TargetCount    int
	Score          int
	ElapsedSeconds int
	NewHighScore   bool
	Reason         EndReason
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used to shuffle words.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithCanvasSize sets the initial canvas buffer size.
func WithCanvasSize(width, height int) Option {
	return func(c *Controller) { c.surface.Resize(width, height) }
}

// WithIDGenerator replaces the session ID generator.
func WithIDGenerator(next func() string) Option {
	return func(c *Controller) { c.newID = next }
}

// Controller is the session state machine.
type Controller struct {
	cfg     config.Config
	master  []words.Word
	rng     *rand.Rand
	newID   func() string
	surface *raster.Surface
	timer   Timer
	keeper  *ScoreKeeper

	screen  Screen
	policy  Policy
	state   State
	queue   *words.Queue
	current words.Word

	tokens   uint64 // last issued score token
	inFlight uint64 // token awaiting ScoreResolved, 0 if none

	accuracy    float64
	hasAccuracy bool
	result      *Result
}

// NewController creates a controller on the home screen.
// master is the full word list; highScore is the stored best score.
func NewController(cfg config.Config, master []words.Word, highScore int, opts ...Option) *Controller {
	bg, ok := raster.ParseHex(cfg.Canvas.Background)
	if !ok {
		bg = raster.White
	}

	c := &Controller{
		cfg:    cfg,
		master: master,
		newID:  uuid.NewString,
		surface: raster.NewSurface(DefaultCanvasWidth, DefaultCanvasHeight, raster.SurfaceOptions{
			UndoDepth:        cfg.Canvas.UndoDepth,
			BrushSize:        cfg.Canvas.BrushSize,
			EraserMultiplier: cfg.Canvas.EraserMultiplier,
			Color:            cfg.Canvas.Color,
			Background:       bg,
		}),
		keeper: NewScoreKeeper(cfg.Session, highScore),
		screen: ScreenHome,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen { return c.screen }

// State returns a snapshot of the session.
func (c *Controller) State() State {
	s := c.state
	s.Score = c.keeper.Score()
	s.HighScore = c.keeper.HighScore()
	s.RemainingSeconds = c.timer.Remaining()
	s.Paused = c.screen == ScreenPaused
	s.ActiveTool = c.surface.Tool()
	return s
}

// Word returns the active word.
func (c *Controller) Word() words.Word { return c.current }

// Surface exposes the canvas for rendering. Mutate it only through Handle.
func (c *Controller) Surface() *raster.Surface { return c.surface }

// LastAccuracy returns the most recent measured accuracy of this session.
func (c *Controller) LastAccuracy() (float64, bool) { return c.accuracy, c.hasAccuracy }

// Scoring returns true while a score request is in flight.
func (c *Controller) Scoring() bool { return c.inFlight != 0 }

// SyncHighScore adopts a stored high score set elsewhere, for example by
// another player sharing the store. Lower values are ignored.
func (c *Controller) SyncHighScore(high int) { c.keeper.Observe(high) }

// Result returns the summary of the last finished session.
func (c *Controller) Result() (Result, bool) {
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

// Handle applies cmd and returns the resulting effects in order.
func (c *Controller) Handle(cmd Command) []Effect {
	switch cmd := cmd.(type) {
	case StartGame:
		return c.startGame(cmd.Difficulty, cmd.Mode)
	case TogglePause:
		return c.togglePause()
	case Tick:
		return c.tick(cmd.Generation)
	case Submit:
		return c.submit()
	case ScoreResolved:
		return c.resolveScore(cmd.Token, cmd.Accuracy)
	case GoHome:
		return c.goHome()
	case Resize:
		return c.resize(cmd)
	case SelectTool:
		if c.active() {
			c.surface.SetTool(cmd.Tool)
		}
		return nil
	case SetColor:
		if !c.active() {
			return nil
		}
		if !c.surface.SetColor(cmd.Hex) {
			return []Effect{Feedback{Message: fmt.Sprintf("Invalid color %q", cmd.Hex)}}
		}
		return nil
	case SetBrushSize:
		if c.active() {
			c.surface.SetBrushSize(cmd.Width)
		}
		return nil
	}

	// Canvas input is accepted only while playing
	if c.screen != ScreenPlaying {
		return nil
	}

	switch cmd := cmd.(type) {
	case PointerDown:
		c.surface.PointerDown(cmd.Point)
		return []Effect{CanvasChanged{}}
	case PointerMove:
		if c.surface.PointerMove(cmd.Point) {
			return []Effect{CanvasChanged{}}
		}
	case PointerUp:
		c.surface.PointerUp()
	case Undo:
		if c.surface.Undo() {
			return []Effect{CanvasChanged{}}
		}
	case Clear:
		c.surface.Clear()
		return []Effect{CanvasChanged{}}
	}
	return nil
}

// active returns true while a session is playing or paused.
func (c *Controller) active() bool {
	return c.screen == ScreenPlaying || c.screen == ScreenPaused
}

func (c *Controller) startGame(d config.Difficulty, mode config.Mode) []Effect {
	if mode == "" {
		mode = config.ModeClueRound
	}
	c.policy = PolicyFor(mode, d, c.cfg.Session)
	c.queue = words.Build(d, c.master, c.policy.TargetCount, c.rng)
	c.current = words.Word{}
	c.state = State{
		ID:          c.newID(),
		Mode:        c.policy.Mode,
		Difficulty:  d,
		TargetCount: c.policy.TargetCount,
	}

	c.surface.Reset()
	c.surface.SetTool(raster.ToolPencil)
	c.keeper.Reset()
	c.inFlight = 0
	c.accuracy, c.hasAccuracy = 0, false
	c.result = nil

	c.screen = ScreenPlaying
	gen := c.timer.Start(c.policy.TimeLimit)

	effects := []Effect{
		ScreenChanged{Screen: ScreenPlaying},
		ScoreChanged{Score: 0, HighScore: c.keeper.HighScore()},
		StartClock{Generation: gen, Seconds: c.policy.TimeLimit},
		TimerTicked{Remaining: c.timer.Remaining()},
	}
	return append(effects, c.advance()...)
}

// advance moves to the next word, or ends the game when none is left.
func (c *Controller) advance() []Effect {
	w, ok := c.queue.Next()
	if !ok {
		return c.endGame(EndExhausted)
	}

	c.current = w
	c.state.ActiveWordIndex = c.state.DrawnCount
	c.surface.Reset()

	return []Effect{
		WordChanged{Word: w, Index: c.state.ActiveWordIndex, Total: c.state.TargetCount},
		CanvasChanged{},
		Feedback{Message: fmt.Sprintf("Draw %d/%d: %s", c.state.DrawnCount+1, c.state.TargetCount, w.Text)},
	}
}

func (c *Controller) togglePause() []Effect {
	switch c.screen {
	case ScreenPlaying:
		c.screen = ScreenPaused
		c.timer.SetPaused(true)
		c.surface.EndStroke()
		return []Effect{ScreenChanged{Screen: ScreenPaused}, Feedback{Message: "Game Paused"}}
	case ScreenPaused:
		c.screen = ScreenPlaying
		c.timer.SetPaused(false)
		return []Effect{ScreenChanged{Screen: ScreenPlaying}, Feedback{Message: "Game Resumed"}}
	default:
		return nil
	}
}

func (c *Controller) tick(gen uint64) []Effect {
	if c.screen != ScreenPlaying {
		return nil
	}
	remaining, expired, ok := c.timer.Tick(gen)
	if !ok {
		return nil
	}

	effects := []Effect{TimerTicked{Remaining: remaining}}
	if expired {
		effects = append(effects, Feedback{Message: "Time's up!"})
		effects = append(effects, c.endGame(EndTimeout)...)
	}
	return effects
}

func (c *Controller) submit() []Effect {
	if c.screen != ScreenPlaying {
		return nil
	}
	if c.inFlight != 0 {
		return []Effect{Feedback{Message: "Still checking your drawing..."}}
	}

	c.surface.EndStroke()
	c.tokens++
	c.inFlight = c.tokens

	return []Effect{
		Feedback{Message: "Checking your drawing..."},
		RequestScore{
			Token:  c.inFlight,
			Seed:   c.current.Seed(),
			Canvas: c.surface.Snapshot().Image(),
		},
	}
}

func (c *Controller) resolveScore(token uint64, accuracy float64) []Effect {
	// Results for an earlier word or session are stale
	if token == 0 || token != c.inFlight || !c.active() {
		return nil
	}
	c.inFlight = 0

	accuracy = math.Min(100, math.Max(0, accuracy))
	c.accuracy, c.hasAccuracy = accuracy, true

	if c.policy.Threshold > 0 && accuracy < c.policy.Threshold {
		return []Effect{
			AccuracyMeasured{Accuracy: accuracy, Accepted: false},
			Feedback{Message: fmt.Sprintf("Need more detail! Current accuracy: %d%% (Need %d%%)",
				int(math.Round(accuracy)), int(math.Round(c.policy.Threshold)))},
		}
	}

	c.state.DrawnCount++
	effects := []Effect{AccuracyMeasured{Accuracy: accuracy, Accepted: true}}

	if c.policy.PerWordScoring() {
		c.keeper.AwardWord(accuracy)
		effects = append(effects, ScoreChanged{Score: c.keeper.Score(), HighScore: c.keeper.HighScore()})
	}

	if c.state.DrawnCount >= c.state.TargetCount {
		return append(effects, c.endGame(EndCompleted)...)
	}
	return append(effects, c.advance()...)
}

// endGame stops the clock, finalizes the score and enters Results.
func (c *Controller) endGame(reason EndReason) []Effect {
	c.timer.Stop()
	c.surface.EndStroke()
	c.inFlight = 0
	elapsed := c.timer.Elapsed()

	completed := c.state.TargetCount > 0 && c.state.DrawnCount == c.state.TargetCount
	if c.policy.PerWordScoring() {
		if completed {
			c.keeper.AwardCompletionBonus(elapsed)
		}
	} else if completed {
		c.keeper.SetTimeScore(elapsed)
	}

	beaten := c.keeper.Finalize()
	result := Result{
		ID:             c.state.ID,
		Mode:           c.state.Mode,
		Difficulty:     c.state.Difficulty,
		WordsCompleted: c.state.DrawnCount,
		TargetCount:    c.state.TargetCount,
		Score:          c.keeper.Score(),
		ElapsedSeconds: elapsed,
		NewHighScore:   beaten,
		Reason:         reason,
	}
	c.result = &result
	c.screen = ScreenResults

	effects := []Effect{
		StopClock{},
		ScoreChanged{Score: result.Score, HighScore: c.keeper.HighScore()},
	}
	if beaten {
		effects = append(effects, SetHighScore{Score: result.Score})
	}
	return append(effects,
		RecordSession{Result: result},
		ScreenChanged{Screen: ScreenResults},
	)
}

func (c *Controller) goHome() []Effect {
	if c.screen == ScreenHome {
		return nil
	}
	c.timer.Stop()
	c.inFlight = 0
	c.queue = nil
	c.current = words.Word{}
	c.surface.Reset()
	c.screen = ScreenHome
	return []Effect{StopClock{}, ScreenChanged{Screen: ScreenHome}}
}

func (c *Controller) resize(cmd Resize) []Effect {
	var effects []Effect
	buf := c.surface.Buffer()
	if cmd.Width > 0 && cmd.Height > 0 && (cmd.Width != buf.Width() || cmd.Height != buf.Height()) {
		c.surface.Resize(cmd.Width, cmd.Height)
		effects = append(effects, CanvasChanged{})
	}
	c.surface.SetDisplaySize(cmd.DisplayWidth, cmd.DisplayHeight)
	return effects
}
