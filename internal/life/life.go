// Package life implements the B3/S23 transition of Conway's Game of Life on a
// bounded grid. Cells outside the grid do not exist: edge cells simply have
// fewer neighbours.
package life

import "lifepaint/internal/grid"

// Tick returns the next generation of g. g is not modified.
func Tick(g *grid.Grid) *grid.Grid {
	next := grid.New(g.Rows(), g.Cols())
	step(next.Cells(), g.Cells(), g.Rows(), g.Cols())
	return next
}

// Neighbors counts live cells in the Moore neighbourhood of (r, c), skipping
// positions that fall outside the grid.
func Neighbors(g *grid.Grid, r, c int) int {
	return neighbors(g.Cells(), g.Rows(), g.Cols(), r, c)
}

func neighbors(cur []uint8, rows, cols, r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		nr := r + dr
		if nr < 0 || nr >= rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			nc := c + dc
			if (dr == 0 && dc == 0) || nc < 0 || nc >= cols {
				continue
			}
			n += int(cur[nr*cols+nc])
		}
	}
	return n
}

// step writes the generation after cur into nxt. Both slices must hold
// rows*cols cells and must not alias.
func step(nxt, cur []uint8, rows, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			n := neighbors(cur, rows, cols, r, c)
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				nxt[idx] = 1
			}
		}
	}
}

// Stepper advances a grid in place using a scratch buffer, so the frame loop
// does not allocate a new grid every tick.
type Stepper struct {
	cur *grid.Grid
	nxt *grid.Grid
	gen int
}

// NewStepper takes ownership of g.
func NewStepper(g *grid.Grid) *Stepper {
	return &Stepper{cur: g, nxt: grid.New(g.Rows(), g.Cols())}
}

// Grid returns the current generation.
func (s *Stepper) Grid() *grid.Grid { return s.cur }

// Generation returns how many steps have run since the stepper was created
// or last replaced.
func (s *Stepper) Generation() int { return s.gen }

// Replace swaps in a new current grid and restarts the generation count.
func (s *Stepper) Replace(g *grid.Grid) {
	s.cur = g
	if s.nxt.Rows() != g.Rows() || s.nxt.Cols() != g.Cols() {
		s.nxt = grid.New(g.Rows(), g.Cols())
	}
	s.gen = 0
}

// Step advances the simulation by one generation.
func (s *Stepper) Step() {
	step(s.nxt.Cells(), s.cur.Cells(), s.cur.Rows(), s.cur.Cols())
	s.cur, s.nxt = s.nxt, s.cur
	s.gen++
}
