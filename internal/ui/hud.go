//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"lifepaint/internal/core"
	"lifepaint/internal/widget"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Controlled is what the HUD needs from the session.
type Controlled interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
	Parameters() core.ParameterSnapshot
	CellSize() int
	Speed() float64
}

// HUD draws the toolbar strip under the canvas and turns clicks on it into
// actions. Speed and cell size are applied directly; playback actions are
// returned to the caller.
type HUD struct {
	target  Controlled
	toolbar widget.Toolbar

	snapshot core.ParameterSnapshot
	dragging bool
	paused   bool
}

// NewHUD lays out a toolbar of the given width with its top edge at y = top.
func NewHUD(target Controlled, width, top int) *HUD {
	speed := core.ParameterControl{Min: 1, Max: 30}
	for _, ctrl := range target.ParameterControls() {
		if ctrl.Type == core.ParamTypeFloat {
			speed = ctrl
		}
	}
	return &HUD{
		target:  target,
		toolbar: widget.NewToolbar(width, top, speed, target.Speed()),
	}
}

// Bounds returns the toolbar rectangle in screen coordinates.
func (h *HUD) Bounds() image.Rectangle { return h.toolbar.Bounds }

// Update refreshes the status snapshot and handles toolbar input. It returns
// the playback action clicked this frame, if any.
func (h *HUD) Update(paused bool) widget.Action {
	h.paused = paused
	h.snapshot = h.target.Parameters()

	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx, my)

	if h.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			h.dragging = false
			return widget.ActionNone
		}
		h.target.SetFloatParameter("speed", h.toolbar.Speed.Set(mx))
		return widget.ActionSpeed
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return widget.ActionNone
	}
	action := h.toolbar.Hit(p)
	switch action {
	case widget.ActionSpeed:
		h.dragging = true
		h.target.SetFloatParameter("speed", h.toolbar.Speed.Set(mx))
	case widget.ActionShrink:
		h.target.SetIntParameter("cell_size", h.target.CellSize()-1)
	case widget.ActionGrow:
		h.target.SetIntParameter("cell_size", h.target.CellSize()+1)
	}
	return action
}

// Dragging reports whether the speed slider currently holds the pointer.
func (h *HUD) Dragging() bool { return h.dragging }

// SyncSpeed moves the slider knob to the session's current speed, for when
// the speed changed through the keyboard.
func (h *HUD) SyncSpeed() { h.toolbar.Speed.Value = h.target.Speed() }

// Draw paints the toolbar.
func (h *HUD) Draw(screen *ebiten.Image) {
	b := h.toolbar.Bounds
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), color.RGBA{R: 16, G: 16, B: 20, A: 255}, false)

	h.toolbar.Pause.Label = "Pause"
	if h.paused {
		h.toolbar.Pause.Label = "Resume"
	}
	for _, btn := range h.toolbar.Buttons() {
		drawButton(screen, btn.Rect, btn.Label)
	}
	h.drawSlider(screen)
	h.drawStatus(screen)
}

func (h *HUD) drawSlider(screen *ebiten.Image) {
	s := h.toolbar.Speed
	face := basicfont.Face7x13
	label := fmt.Sprintf("%4.1f/s", s.Value)
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, s.Rect.Min.X-bounds.Dx()-6, s.Rect.Min.Y+s.Rect.Dy()/2+bounds.Dy()/2, textColor)

	midY := float32(s.Rect.Min.Y + s.Rect.Dy()/2)
	vector.StrokeLine(screen, float32(s.Rect.Min.X), midY, float32(s.Rect.Max.X), midY, 2, color.RGBA{R: 90, G: 92, B: 104, A: 255}, false)
	kx := float32(s.KnobX())
	vector.DrawFilledRect(screen, kx-4, float32(s.Rect.Min.Y), 8, float32(s.Rect.Dy()), color.RGBA{R: 220, G: 220, B: 230, A: 255}, false)
}

// drawStatus writes the state, generation and population above the slider
// track.
func (h *HUD) drawStatus(screen *ebiten.Image) {
	var parts []string
	for _, key := range []string{"state", "generation", "population", "cell_size"} {
		if p, ok := h.snapshot.Lookup(key); ok {
			parts = append(parts, p.Label+" "+p.Value)
		}
	}
	if len(parts) == 0 {
		return
	}
	s := h.toolbar.Speed.Rect
	text.Draw(screen, strings.Join(parts, "  "), basicfont.Face7x13, s.Min.X, s.Min.Y+4, dimColor)
}

func drawButton(screen *ebiten.Image, rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, textColor)
}

var (
	textColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	dimColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)
