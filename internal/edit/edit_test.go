package edit

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lifepaint/internal/grid"
)

const size = 10

func TestCellAt(t *testing.T) {
	cases := []struct {
		p        image.Point
		row, col int
	}{
		{image.Pt(0, 0), 0, 0},
		{image.Pt(9, 9), 0, 0},
		{image.Pt(10, 0), 0, 1},
		{image.Pt(35, 72), 7, 3},
		{image.Pt(-1, 5), 0, -1},
		{image.Pt(5, -10), -1, 0},
		{image.Pt(-11, -11), -2, -2},
	}
	for _, tc := range cases {
		r, c := CellAt(tc.p, size)
		if r != tc.row || c != tc.col {
			t.Fatalf("CellAt(%v) = (%d,%d), want (%d,%d)", tc.p, r, c, tc.row, tc.col)
		}
	}
}

func TestPaintCellIdempotent(t *testing.T) {
	once := grid.New(6, 8)
	PaintCell(once, image.Pt(25, 43), size, true)

	twice := grid.New(6, 8)
	PaintCell(twice, image.Pt(25, 43), size, true)
	PaintCell(twice, image.Pt(25, 43), size, true)

	if diff := cmp.Diff(once.String(), twice.String()); diff != "" {
		t.Fatalf("second paint changed the grid (-once +twice):\n%s", diff)
	}
	if !once.Alive(4, 2) || once.Population() != 1 {
		t.Fatalf("wrong cell painted:\n%s", once)
	}
}

func TestPaintCellErase(t *testing.T) {
	g := grid.Parse("###", "###")
	if !PaintCell(g, image.Pt(15, 5), size, false) {
		t.Fatal("in-bounds erase reported miss")
	}
	if g.Alive(0, 1) || g.Population() != 5 {
		t.Fatalf("erase hit wrong cells:\n%s", g)
	}
}

func TestPaintCellIgnoresOutOfRange(t *testing.T) {
	g := grid.New(3, 3)
	for _, p := range []image.Point{
		image.Pt(-1, 0),
		image.Pt(0, -1),
		image.Pt(30, 0),
		image.Pt(0, 30),
		image.Pt(1000, 1000),
	} {
		if PaintCell(g, p, size, true) {
			t.Fatalf("PaintCell(%v) reported a hit", p)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("out-of-range paint landed or wrapped:\n%s", g)
	}
	if PaintCell(g, image.Pt(0, 0), 0, true) {
		t.Fatal("zero cell size must be rejected")
	}
}

func TestPaintLineHorizontalCoverage(t *testing.T) {
	g := grid.New(3, 8)
	PaintLine(g, image.Pt(0, 0), image.Pt(5*size, 0), size, true)
	want := grid.Parse(
		"######..",
		"........",
		"........",
	)
	if diff := cmp.Diff(want.String(), g.String()); diff != "" {
		t.Fatalf("line coverage (-want +got):\n%s", diff)
	}
}

func TestPaintLineReversedAndDiagonal(t *testing.T) {
	g := grid.New(5, 5)
	PaintLine(g, image.Pt(44, 44), image.Pt(3, 1), size, true)
	want := grid.Parse(
		"#....",
		".#...",
		"..#..",
		"...#.",
		"....#",
	)
	if diff := cmp.Diff(want.String(), g.String()); diff != "" {
		t.Fatalf("diagonal (-want +got):\n%s", diff)
	}
}

func TestPaintLineSteepHasNoGaps(t *testing.T) {
	g := grid.New(8, 4)
	PaintLine(g, image.Pt(0, 0), image.Pt(2*size, 7*size), size, true)
	for r := 0; r < 8; r++ {
		hit := false
		for c := 0; c < 4; c++ {
			hit = hit || g.Alive(r, c)
		}
		if !hit {
			t.Fatalf("row %d has no painted cell:\n%s", r, g)
		}
	}
	if !g.Alive(0, 0) || !g.Alive(7, 2) {
		t.Fatalf("endpoints missing:\n%s", g)
	}
}

func TestPaintLineClipsOutsideGrid(t *testing.T) {
	g := grid.New(2, 4)
	PaintLine(g, image.Pt(-25, 5), image.Pt(25, 5), size, true)
	want := grid.Parse(
		"###.",
		"....",
	)
	if diff := cmp.Diff(want.String(), g.String()); diff != "" {
		t.Fatalf("clipped line (-want +got):\n%s", diff)
	}
}

func TestPaintLineSameCellPaintsOnce(t *testing.T) {
	g := grid.New(2, 2)
	PaintLine(g, image.Pt(1, 1), image.Pt(8, 9), size, true)
	if g.Population() != 1 || !g.Alive(0, 0) {
		t.Fatalf("same-cell line:\n%s", g)
	}
}

func TestPaintLineIdempotent(t *testing.T) {
	a := grid.New(6, 6)
	PaintLine(a, image.Pt(3, 57), image.Pt(51, 2), size, true)
	b := a.Clone()
	PaintLine(b, image.Pt(3, 57), image.Pt(51, 2), size, true)
	if !a.Equal(b) {
		t.Fatalf("repainting changed the grid:\n%s\n%s", a, b)
	}
}
