package grid

import (
	"fmt"
	"strings"
)

// View is the read-only surface the renderer draws from.
type View interface {
	Rows() int
	Cols() int
	Alive(r, c int) bool
}

// Grid stores a rows×cols board of binary cells in row-major order.
type Grid struct {
	rows, cols int
	data       []uint8
}

// New allocates an all-dead grid. Negative dimensions panic.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", rows, cols))
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// Reset returns a fresh all-dead grid of the requested size.
func Reset(rows, cols int) *Grid { return New(rows, cols) }

// DimensionsFor reports how many whole cells of cellSize fit on a canvas.
func DimensionsFor(width, height, cellSize int) (rows, cols int) {
	if cellSize <= 0 || width <= 0 || height <= 0 {
		return 0, 0
	}
	return height / cellSize, width / cellSize
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (r, c).
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Alive reports whether (r, c) holds a live cell. Out of range is dead.
func (g *Grid) Alive(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}
	return g.data[g.Index(r, c)] == 1
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(r, c int, alive bool) {
	if !g.InBounds(r, c) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(r, c)] = v
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := New(g.rows, g.cols)
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live cells and '.' for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.data[g.Index(r, c)] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a grid from lines of '#' (alive) and '.' (dead). Short lines
// are padded with dead cells to the longest line.
func Parse(lines ...string) *Grid {
	cols := 0
	for _, l := range lines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	g := New(len(lines), cols)
	for r, l := range lines {
		for c := 0; c < len(l); c++ {
			if l[c] == '#' {
				g.data[g.Index(r, c)] = 1
			}
		}
	}
	return g
}
