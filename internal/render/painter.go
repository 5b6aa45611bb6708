//go:build ebiten

package render

import (
	"image/color"

	"lifepaint/internal/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the board and draws it
// scaled up by the cell size.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter. The backing image is sized lazily.
func NewGridPainter() *GridPainter { return &GridPainter{} }

func (gp *GridPainter) ensure(rows, cols int) {
	if gp.img != nil && gp.rows == rows && gp.cols == cols {
		return
	}
	gp.rows, gp.cols = rows, cols
	gp.buf = make([]byte, 4*rows*cols)
	gp.img = ebiten.NewImage(cols, rows)
}

// Blit uploads the board and draws it onto dst at cellSize pixels per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, v grid.View, cellSize int, on, off color.Color) {
	rows, cols := v.Rows(), v.Cols()
	if rows == 0 || cols == 0 || cellSize <= 0 {
		return
	}
	gp.ensure(rows, cols)
	fillBinaryRGBA(gp.buf, v, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
