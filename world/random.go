package world

import "golang.org/x/exp/rand"

// RandomGrid returns an n-cell grid where each cell is independently dirty
// with probability dirtProb.
func RandomGrid(n int, dirtProb float64, rng *rand.Rand) (*Grid, error) {
	cells := make([]int, n)
	for i := range cells {
		if rng.Float64() < dirtProb {
			cells[i] = DirtyCell
		}
	}
	return NewGrid(cells)
}
