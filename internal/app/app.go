//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log/slog"

	"lifepaint/internal/core"
	"lifepaint/internal/render"
	"lifepaint/internal/sim"
	"lifepaint/internal/ui"
	"lifepaint/internal/widget"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface. Input is read every
// frame; the board ticks only when the pacer allows.
type Game struct {
	session *sim.Session
	log     *slog.Logger
	pacer   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	canvas    image.Rectangle
	stroking  bool
	drawAlive bool
	last      image.Point
}

// New constructs a Game for the provided session.
func New(session *sim.Session, log *slog.Logger) *Game {
	size := session.Canvas()
	return &Game{
		session:  session,
		log:      log,
		pacer:    core.NewFixedStep(session.Speed()),
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(session, size.W, size.H),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		canvas:   image.Rect(0, 0, size.W, size.H),
	}
}

// WindowSize returns the outer size the window should open at.
func (g *Game) WindowSize() (int, int) {
	return g.canvas.Dx(), g.canvas.Dy() + widget.Height
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleKeys()
	g.apply(g.hud.Update(g.session.State() == sim.Paused))
	if !g.hud.Dragging() {
		g.handlePointer()
	}
	g.overlay.Update(g.session.View(), g.session.CellSize(), g.session.Editable())

	g.pacer.SetTPS(g.session.Speed())
	if g.session.State() == sim.Running && g.pacer.ShouldStep() {
		g.session.Tick()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.apply(widget.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.apply(widget.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.apply(widget.ActionStop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.session.SetCellSize(g.session.CellSize() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.session.SetCellSize(g.session.CellSize() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.SetSpeed(g.session.Speed() + 1)
		g.hud.SyncSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.session.SetSpeed(g.session.Speed() - 1)
		g.hud.SyncSpeed()
	}
}

// apply performs a playback action. Speed and cell-size clicks are handled
// by the HUD itself.
func (g *Game) apply(a widget.Action) {
	switch a {
	case widget.ActionStart:
		if g.session.Start() {
			g.pacer.Reset()
			g.log.Info("started", "population", g.session.Population())
		}
	case widget.ActionPause:
		if g.session.TogglePause() {
			g.log.Info("playback", "state", g.session.State(), "generation", g.session.Generation())
		}
	case widget.ActionStop:
		g.session.Stop()
		g.stroking = false
		g.log.Info("stopped")
	}
}

// handlePointer paints with the left button and erases with the right one.
// Consecutive samples of one drag are joined with a line.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx, my)

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		g.stroking = false
		return
	}
	if !g.session.Editable() {
		return
	}
	if !g.stroking {
		justLeft := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		justRight := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
		if !(justLeft || justRight) || !p.In(g.canvas) {
			return
		}
		g.stroking = true
		g.drawAlive = justLeft
		g.last = p
		g.session.Paint(p, g.drawAlive)
		return
	}
	if p != g.last {
		g.session.Stroke(g.last, p, g.drawAlive)
		g.last = p
	}
}

// Draw renders the board, the overlay and the toolbar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	view := g.session.View()
	g.painter.Blit(screen, view, g.session.CellSize(), g.onColor, g.offColor)
	g.overlay.Draw(screen, view, g.session.CellSize())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
