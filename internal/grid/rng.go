package grid

import "math/rand/v2"

// Randomize fills the grid with 0/1 values drawn from a PCG seeded with seed.
// The same seed always produces the same board.
func (g *Grid) Randomize(seed int64) {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.data {
		g.data[i] = uint8(r.IntN(2))
	}
}
