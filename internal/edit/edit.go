// Package edit maps pointer positions onto grid cells and paints them.
package edit

import (
	"image"

	"lifepaint/internal/grid"
)

// CellAt converts a pixel position into (row, col). Division floors, so
// pixels left of or above the canvas land on negative cells.
func CellAt(p image.Point, cellSize int) (row, col int) {
	return floorDiv(p.Y, cellSize), floorDiv(p.X, cellSize)
}

// PaintCell sets the cell under p to alive or dead. Positions outside the
// grid are ignored. It reports whether p addressed a cell.
func PaintCell(g *grid.Grid, p image.Point, cellSize int, alive bool) bool {
	if cellSize <= 0 {
		return false
	}
	r, c := CellAt(p, cellSize)
	if !g.InBounds(r, c) {
		return false
	}
	g.Set(r, c, alive)
	return true
}

// PaintLine paints every cell on the segment between two pointer samples so
// that fast drags do not leave gaps. Interpolation is coarse: one sample per
// cell along the dominant axis.
func PaintLine(g *grid.Grid, from, to image.Point, cellSize int, alive bool) {
	if cellSize <= 0 {
		return
	}
	r1, c1 := CellAt(from, cellSize)
	r2, c2 := CellAt(to, cellSize)
	if r1 == r2 && c1 == c2 {
		PaintCell(g, from, cellSize, alive)
		return
	}
	dr, dc := r2-r1, c2-c1
	steps := max(abs(dr), abs(dc))
	for i := 0; i <= steps; i++ {
		c := c1 + floorDiv(dc*i, steps)
		r := r1 + floorDiv(dr*i, steps)
		PaintCell(g, image.Pt(c*cellSize, r*cellSize), cellSize, alive)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
