//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifepaint/internal/edit"
	"lifepaint/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional editing aids on top of the board: cell grid lines
// and an outline around the cell under the pointer.
type Overlay struct {
	showLines bool
	hover     image.Point
	hoverOK   bool
}

// NewOverlay constructs an overlay with grid lines enabled.
func NewOverlay() *Overlay { return &Overlay{showLines: true} }

// Update toggles grid lines with G and tracks the hovered cell. Hover is
// shown only while the board is editable.
func (o *Overlay) Update(v grid.View, cellSize int, editable bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
	o.hoverOK = false
	if !editable || cellSize <= 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	r, c := edit.CellAt(image.Pt(mx, my), cellSize)
	if r >= 0 && r < v.Rows() && c >= 0 && c < v.Cols() {
		o.hover = image.Pt(c, r)
		o.hoverOK = true
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, v grid.View, cellSize int) {
	if cellSize <= 0 {
		return
	}
	w := float32(v.Cols() * cellSize)
	h := float32(v.Rows() * cellSize)
	if o.showLines && cellSize >= 4 {
		line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for c := 1; c < v.Cols(); c++ {
			x := float32(c * cellSize)
			vector.StrokeLine(screen, x, 0, x, h, 1, line, false)
		}
		for r := 1; r < v.Rows(); r++ {
			y := float32(r * cellSize)
			vector.StrokeLine(screen, 0, y, w, y, 1, line, false)
		}
	}
	if o.hoverOK {
		x := float32(o.hover.X * cellSize)
		y := float32(o.hover.Y * cellSize)
		s := float32(cellSize)
		vector.StrokeRect(screen, x, y, s, s, 1, color.RGBA{R: 255, G: 180, B: 60, A: 255}, false)
	}
}
