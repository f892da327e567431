package session

import (
	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/raster"
)

// Command is an input to Controller.Handle.
type Command interface {
	isCommand()
}

// StartGame begins a new session, discarding any current one.
type StartGame struct {
	Difficulty config.Difficulty
	Mode       config.Mode
}

// PointerDown starts a stroke or fill at a display-space point.
type PointerDown struct{ Point raster.Point }

// PointerMove extends the open stroke.
type PointerMove struct{ Point raster.Point }

// PointerUp closes the open stroke.
type PointerUp struct{}

// SelectTool switches the drawing tool.
type SelectTool struct{ Tool raster.Tool }

// SetColor sets the ink color as "#rrggbb".
type SetColor struct{ Hex string }

// SetBrushSize sets the pencil width in buffer pixels.
type SetBrushSize struct{ Width float64 }

// Undo restores the canvas before the last stroke or fill.
type Undo struct{}

// Clear paints the canvas with the background color.
type Clear struct{}

// Submit asks for the current drawing to be scored.
type Submit struct{}

// ScoreResolved delivers the accuracy for a RequestScore with the same token.
type ScoreResolved struct {
	Token    uint64
	Accuracy float64
}

// Tick is one second of clock time for the given clock generation.
type Tick struct{ Generation uint64 }

// TogglePause pauses or resumes the running session.
type TogglePause struct{}

// Resize sets the canvas buffer size and the size it is displayed at.
// A zero buffer size keeps the current buffer.
type Resize struct {
	Width, Height               int
	DisplayWidth, DisplayHeight float64
}

// GoHome abandons the session and returns to the home screen.
type GoHome struct{}

func (StartGame) isCommand()     {}
func (PointerDown) isCommand()   {}
func (PointerMove) isCommand()   {}
func (PointerUp) isCommand()     {}
func (SelectTool) isCommand()    {}
func (SetColor) isCommand()      {}
func (SetBrushSize) isCommand()  {}
func (Undo) isCommand()          {}
func (Clear) isCommand()         {}
func (Submit) isCommand()        {}
func (ScoreResolved) isCommand() {}
func (Tick) isCommand()          {}
func (TogglePause) isCommand()   {}
func (Resize) isCommand()        {}
func (GoHome) isCommand()        {}
