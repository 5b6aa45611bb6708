package life

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lifepaint/internal/grid"
)

func TestAllDeadStaysDead(t *testing.T) {
	g := grid.New(12, 17)
	next := Tick(g)
	if next.Population() != 0 {
		t.Fatalf("dead grid sprouted %d cells", next.Population())
	}
	if next.Rows() != 12 || next.Cols() != 17 {
		t.Fatalf("tick changed size to %dx%d", next.Rows(), next.Cols())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := grid.Parse(
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
	horizontal := grid.Parse(
		".....",
		".....",
		".###.",
		".....",
		".....",
	)

	g := Tick(vertical)
	if diff := cmp.Diff(horizontal.String(), g.String()); diff != "" {
		t.Fatalf("first step mismatch (-want +got):\n%s", diff)
	}
	g = Tick(g)
	if diff := cmp.Diff(vertical.String(), g.String()); diff != "" {
		t.Fatalf("second step mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockIsStill(t *testing.T) {
	block := grid.Parse(
		"....",
		".##.",
		".##.",
		"....",
	)
	if got := Tick(block); !got.Equal(block) {
		t.Fatalf("block changed:\n%s", got)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	g := grid.Parse(
		"##.",
		"#..",
		"...",
	)
	before := g.String()
	Tick(g)
	if g.String() != before {
		t.Fatalf("input modified:\n%s", g)
	}
}

func TestCornerCountsOnlyInBoundsNeighbors(t *testing.T) {
	// Corner (0,0) has three neighbour slots; the far corners would be
	// neighbours only under wraparound.
	g := grid.Parse(
		"##..#",
		"##...",
		".....",
		"#...#",
	)
	if n := Neighbors(g, 0, 0); n != 3 {
		t.Fatalf("corner neighbours = %d, want 3", n)
	}
	if n := Neighbors(g, 3, 4); n != 0 {
		t.Fatalf("bottom-right neighbours = %d, want 0", n)
	}

	next := Tick(g)
	if !next.Alive(0, 0) {
		t.Fatal("corner with 3 neighbours should survive")
	}
	if next.Alive(3, 0) || next.Alive(3, 4) || next.Alive(0, 4) {
		t.Fatalf("isolated edge cells should die:\n%s", next)
	}
}

func TestLoneCornerDiesWithoutWraparound(t *testing.T) {
	// Under toroidal wrapping (0,0) would see the three cells in the
	// opposite corners and be born.
	g := grid.Parse(
		"...#",
		"....",
		"##.#",
	)
	next := Tick(g)
	if next.Alive(0, 0) {
		t.Fatalf("corner born from wrapped neighbours:\n%s", next)
	}
}

func TestRules(t *testing.T) {
	cases := []struct {
		name  string
		in    []string
		alive bool
	}{
		{"underpopulation", []string{"...", ".##", "..."}, false},
		{"survive two", []string{"#..", ".#.", "..#"}, true},
		{"survive three", []string{"#.#", ".#.", "..#"}, true},
		{"overcrowding", []string{"#.#", ".#.", "#.#"}, false},
		{"birth", []string{"#.#", "...", ".#."}, true},
		{"no birth with two", []string{"#.#", "...", "..."}, false},
		{"no birth with four", []string{"#.#", "...", "#.#"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := Tick(grid.Parse(tc.in...))
			if next.Alive(1, 1) != tc.alive {
				t.Fatalf("centre alive=%v, want %v", next.Alive(1, 1), tc.alive)
			}
		})
	}
}

func TestDegenerateGrids(t *testing.T) {
	for _, g := range []*grid.Grid{grid.New(0, 0), grid.New(0, 9), grid.New(4, 0)} {
		next := Tick(g)
		if next.Rows() != g.Rows() || next.Cols() != g.Cols() || len(next.Cells()) != 0 {
			t.Fatalf("degenerate %dx%d produced %dx%d", g.Rows(), g.Cols(), next.Rows(), next.Cols())
		}
	}
	single := grid.Parse("#")
	if Tick(single).Population() != 0 {
		t.Fatal("single cell must die")
	}
}

func TestStepperMatchesTick(t *testing.T) {
	seed := grid.New(16, 16)
	seed.Randomize(7)

	expect := seed.Clone()
	s := NewStepper(seed.Clone())
	for i := 0; i < 20; i++ {
		expect = Tick(expect)
		s.Step()
		if !s.Grid().Equal(expect) {
			t.Fatalf("generation %d diverged:\nwant\n%s\ngot\n%s", i+1, expect, s.Grid())
		}
	}
	if s.Generation() != 20 {
		t.Fatalf("generation = %d, want 20", s.Generation())
	}

	s.Replace(grid.New(3, 5))
	if s.Generation() != 0 || s.Grid().Rows() != 3 || s.Grid().Cols() != 5 {
		t.Fatal("Replace did not reset the stepper")
	}
	s.Step()
	if s.Grid().Population() != 0 {
		t.Fatal("stepping an empty replacement produced cells")
	}
}
