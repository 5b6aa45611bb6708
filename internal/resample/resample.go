// Package resample maps a grid drawn at one cell size onto the grid for a
// different cell size over the same canvas.
package resample

import "lifepaint/internal/grid"

// Resample returns a grid sized for newSize on a width×height canvas. Every
// live cell of g keeps its pixel position: (r, c) moves to
// (r*oldSize/newSize, c*oldSize/newSize). Cells that land outside the new
// bounds are dropped and collisions simply stay alive, so the mapping is
// lossy in both directions. g is not modified.
func Resample(g *grid.Grid, oldSize, newSize, width, height int) *grid.Grid {
	rows, cols := grid.DimensionsFor(width, height, newSize)
	out := grid.New(rows, cols)
	if oldSize <= 0 || newSize <= 0 {
		return out
	}
	cells := g.Cells()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if cells[g.Index(r, c)] == 0 {
				continue
			}
			out.Set(r*oldSize/newSize, c*oldSize/newSize, true)
		}
	}
	return out
}
