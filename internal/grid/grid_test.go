package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResetYieldsDeadGridOfRequestedSize(t *testing.T) {
	cases := []struct{ rows, cols int }{
		{0, 0},
		{0, 7},
		{5, 0},
		{1, 1},
		{60, 80},
	}
	for _, tc := range cases {
		g := Reset(tc.rows, tc.cols)
		if g.Rows() != tc.rows || g.Cols() != tc.cols {
			t.Fatalf("Reset(%d,%d) gave %dx%d", tc.rows, tc.cols, g.Rows(), g.Cols())
		}
		if len(g.Cells()) != tc.rows*tc.cols {
			t.Fatalf("Reset(%d,%d) backing len %d", tc.rows, tc.cols, len(g.Cells()))
		}
		if g.Population() != 0 {
			t.Fatalf("Reset(%d,%d) has %d live cells", tc.rows, tc.cols, g.Population())
		}
	}
}

func TestNewPanicsOnNegativeDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative rows")
		}
	}()
	New(-1, 3)
}

func TestDimensionsFor(t *testing.T) {
	cases := []struct {
		w, h, size int
		rows, cols int
	}{
		{800, 600, 10, 60, 80},
		{805, 609, 10, 60, 80},
		{800, 600, 7, 85, 114},
		{9, 9, 10, 0, 0},
		{800, 600, 0, 0, 0},
		{800, 600, -4, 0, 0},
	}
	for _, tc := range cases {
		rows, cols := DimensionsFor(tc.w, tc.h, tc.size)
		if rows != tc.rows || cols != tc.cols {
			t.Fatalf("DimensionsFor(%d,%d,%d) = %dx%d, want %dx%d", tc.w, tc.h, tc.size, rows, cols, tc.rows, tc.cols)
		}
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	g := New(3, 4)
	g.Set(-1, 0, true)
	g.Set(0, -1, true)
	g.Set(3, 0, true)
	g.Set(0, 4, true)
	if g.Population() != 0 {
		t.Fatalf("out-of-range writes landed: %q", g.String())
	}
	g.Set(2, 3, true)
	if !g.Alive(2, 3) || g.Population() != 1 {
		t.Fatalf("in-range write lost: %q", g.String())
	}
	if g.Alive(5, 5) {
		t.Fatal("out-of-range read must be dead")
	}
}

func TestParseAndString(t *testing.T) {
	g := Parse(
		".#.",
		"##",
		"",
	)
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("Parse size %dx%d", g.Rows(), g.Cols())
	}
	want := ".#.\n##.\n...\n"
	if diff := cmp.Diff(want, g.String()); diff != "" {
		t.Fatalf("String mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := Parse("#.", ".#")
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from source")
	}
	c.Set(0, 1, true)
	if g.Alive(0, 1) {
		t.Fatal("mutating clone changed source")
	}
	if g.Equal(c) {
		t.Fatal("Equal missed a differing cell")
	}
	if g.Equal(New(2, 3)) {
		t.Fatal("Equal must compare shapes")
	}
}

func TestRandomizeDeterministicAndBinary(t *testing.T) {
	a := New(20, 30)
	b := New(20, 30)
	a.Randomize(42)
	b.Randomize(42)
	if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
		t.Fatalf("same seed produced different boards (-a +b):\n%s", diff)
	}
	for i, v := range a.Cells() {
		if v > 1 {
			t.Fatalf("cell %d holds %d", i, v)
		}
	}
	if a.Population() == 0 || a.Population() == len(a.Cells()) {
		t.Fatalf("implausible random population %d", a.Population())
	}
}
