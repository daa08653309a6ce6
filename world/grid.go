package world

import (
	"errors"
	"fmt"
)

// Cell dirt flags. The whole environment is binary: a cell either holds
// trash or it does not.
const (
	CleanCell = 0
	DirtyCell = 1
)

var ErrOutOfRange = errors.New("position out of range")

// Observation is one neighbouring cell as seen from the agent's position.
// Present is false at a room boundary, and Dirty is meaningless there.
type Observation struct {
	Present bool
	Dirty   bool
}

// Percept is everything the agent can sense in one tick: its own cell and
// the two adjacent ones.
type Percept struct {
	Left   Observation
	Right  Observation
	Centre bool // dirty
}

// Grid is a one-dimensional row of cells indexed [0, N). The size is fixed
// at construction; only the dirt flags change afterwards.
type Grid struct {
	cells []int
}

func NewGrid(cells []int) (*Grid, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("grid needs at least one cell")
	}
	for pos, flag := range cells {
		if flag != CleanCell && flag != DirtyCell {
			return nil, fmt.Errorf("cell %d has flag %d, want %d or %d", pos, flag, CleanCell, DirtyCell)
		}
	}
	g := &Grid{cells: make([]int, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

// FromMap builds a grid from a position-to-flag mapping. Positions must be
// contiguous starting at 0.
func FromMap(cells map[int]int) (*Grid, error) {
	flat := make([]int, len(cells))
	for pos, flag := range cells {
		if pos < 0 || pos >= len(cells) {
			return nil, fmt.Errorf("position %d leaves a gap in [0, %d)", pos, len(cells))
		}
		flat[pos] = flag
	}
	return NewGrid(flat)
}

func (g *Grid) Len() int {
	return len(g.cells)
}

// Sense returns the percept at pos. Neighbours beyond the row boundaries
// come back absent.
func (g *Grid) Sense(pos int) (Percept, error) {
	if pos < 0 || pos >= len(g.cells) {
		return Percept{}, fmt.Errorf("sense at %d on %d cells: %w", pos, len(g.cells), ErrOutOfRange)
	}

	percept := Percept{Centre: g.cells[pos] == DirtyCell}
	if pos-1 >= 0 {
		percept.Left = Observation{Present: true, Dirty: g.cells[pos-1] == DirtyCell}
	}
	if pos+1 < len(g.cells) {
		percept.Right = Observation{Present: true, Dirty: g.cells[pos+1] == DirtyCell}
	}
	return percept, nil
}

// Clean marks the cell at pos as clean. Cleaning an already clean cell is a
// no-op.
func (g *Grid) Clean(pos int) error {
	if pos < 0 || pos >= len(g.cells) {
		return fmt.Errorf("clean at %d on %d cells: %w", pos, len(g.cells), ErrOutOfRange)
	}
	g.cells[pos] = CleanCell
	return nil
}

// IsFullyClean reports whether no cell holds trash. This is the run loop's
// sole termination condition.
func (g *Grid) IsFullyClean() bool {
	for _, flag := range g.cells {
		if flag == DirtyCell {
			return false
		}
	}
	return true
}

func (g *Grid) DirtyCount() int {
	count := 0
	for _, flag := range g.cells {
		if flag == DirtyCell {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the cell flags.
func (g *Grid) Snapshot() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}
