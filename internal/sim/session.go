// Package sim owns the board between frames: the playback state, the grid and
// its cell size, and the tick rate. The shell drives it once per frame.
package sim

import (
	"image"
	"log/slog"
	"strconv"

	"lifepaint/internal/config"
	"lifepaint/internal/core"
	"lifepaint/internal/edit"
	"lifepaint/internal/grid"
	"lifepaint/internal/life"
	"lifepaint/internal/resample"
)

// State is the playback state of a session.
type State int

const (
	// Stopped is the only editable state; the simulation does not tick.
	Stopped State = iota
	// Running ticks the simulation at the configured speed.
	Running
	// Paused freezes the board. It is not editable.
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// Parameter keys understood by SetIntParameter and SetFloatParameter.
const (
	KeyCellSize = "cell_size"
	KeySpeed    = "speed"
)

// Session is the single owner of the board.
type Session struct {
	log *slog.Logger

	canvas   core.Size
	cellSize int
	cellCtl  core.ParameterControl
	speedCtl core.ParameterControl
	speed    float64

	state   State
	stepper *life.Stepper
}

// New builds a Stopped session for cfg. The board starts dead, or random
// when cfg.Random is set. A nil logger discards output.
func New(cfg *config.Config, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		log:    log,
		canvas: core.Size{W: cfg.Width, H: cfg.Height},
		cellCtl: core.ParameterControl{
			Key: KeyCellSize, Label: "Cell size", Type: core.ParamTypeInt,
			Step: 1, Min: float64(cfg.MinCellSize), Max: float64(cfg.MaxCellSize),
		},
		speedCtl: core.ParameterControl{
			Key: KeySpeed, Label: "Speed", Type: core.ParamTypeFloat,
			Step: 1, Min: config.MinSpeed, Max: config.MaxSpeed,
		},
	}
	if s.cellCtl.Max < s.cellCtl.Min {
		s.cellCtl.Max = s.cellCtl.Min
	}
	s.cellSize = int(s.cellCtl.Clamp(float64(cfg.CellSize)))
	s.speed = s.speedCtl.Clamp(cfg.Speed)

	rows, cols := grid.DimensionsFor(s.canvas.W, s.canvas.H, s.cellSize)
	g := grid.Reset(rows, cols)
	if cfg.Random {
		g.Randomize(cfg.Seed)
	}
	s.stepper = life.NewStepper(g)
	s.log.Debug("session created", "rows", rows, "cols", cols, "cell_size", s.cellSize, "random", cfg.Random)
	return s
}

// State returns the playback state.
func (s *Session) State() State { return s.state }

// Editable reports whether pointer input may change the board.
func (s *Session) Editable() bool { return s.state == Stopped }

// View exposes the current board for rendering.
func (s *Session) View() grid.View { return s.stepper.Grid() }

// Generation counts ticks since the last stop or resize.
func (s *Session) Generation() int { return s.stepper.Generation() }

// Population counts live cells on the current board.
func (s *Session) Population() int { return s.stepper.Grid().Population() }

// CellSize returns the current cell edge length in pixels.
func (s *Session) CellSize() int { return s.cellSize }

// Canvas returns the canvas size in pixels.
func (s *Session) Canvas() core.Size { return s.canvas }

// Speed returns the tick rate in generations per second.
func (s *Session) Speed() float64 { return s.speed }

// Start moves a stopped session to Running. It reports whether the state
// changed.
func (s *Session) Start() bool {
	if s.state != Stopped {
		return false
	}
	s.transition(Running)
	return true
}

// TogglePause flips between Running and Paused. It does nothing while
// stopped.
func (s *Session) TogglePause() bool {
	switch s.state {
	case Running:
		s.transition(Paused)
	case Paused:
		s.transition(Running)
	default:
		return false
	}
	return true
}

// Stop returns to the editable state with an all-dead board.
func (s *Session) Stop() {
	g := s.stepper.Grid()
	s.stepper.Replace(grid.Reset(g.Rows(), g.Cols()))
	s.transition(Stopped)
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	s.log.Debug("state change", "from", from, "to", to, "generation", s.Generation())
}

// Tick advances one generation while Running. It reports whether the board
// advanced.
func (s *Session) Tick() bool {
	if s.state != Running {
		return false
	}
	s.stepper.Step()
	return true
}

// Paint sets the cell under p when the session is editable.
func (s *Session) Paint(p image.Point, alive bool) bool {
	if !s.Editable() {
		return false
	}
	return edit.PaintCell(s.stepper.Grid(), p, s.cellSize, alive)
}

// Stroke paints the segment between two pointer samples when the session is
// editable.
func (s *Session) Stroke(from, to image.Point, alive bool) bool {
	if !s.Editable() {
		return false
	}
	edit.PaintLine(s.stepper.Grid(), from, to, s.cellSize, alive)
	return true
}

// SetCellSize changes the cell size, clamped to the configured bounds, and
// remaps the live cells onto the new grid. It works in every state and
// restarts the generation count. It returns the size in effect.
func (s *Session) SetCellSize(n int) int {
	n = int(s.cellCtl.Clamp(float64(n)))
	if n == s.cellSize {
		return n
	}
	old := s.cellSize
	next := resample.Resample(s.stepper.Grid(), old, n, s.canvas.W, s.canvas.H)
	s.stepper.Replace(next)
	s.cellSize = n
	s.log.Debug("cell size changed", "from", old, "to", n, "rows", next.Rows(), "cols", next.Cols(), "population", next.Population())
	return n
}

// SetSpeed changes the tick rate, clamped to [1, 30]. It returns the rate in
// effect.
func (s *Session) SetSpeed(tps float64) float64 {
	s.speed = s.speedCtl.Clamp(tps)
	return s.speed
}
