package agent

import (
	"errors"
	"fmt"

	"vacuum/world"
)

// ErrNoLegalAction means rule evaluation produced an empty candidate set on
// a grid that still has dirt. Well-formed grids cannot cause it; it signals
// a broken configuration and aborts the run.
var ErrNoLegalAction = errors.New("no legal action")

// Agent is a reflex vacuum cleaner. It owns its position and its running
// cost/performance totals; the grid owns the cell contents. Previous holds
// the position occupied immediately before the current one and exists only
// to deter back-and-forth oscillation.
type Agent struct {
	Position    int
	Previous    int
	Cost        int
	Performance int

	grid *world.Grid
}

func New(grid *world.Grid, start int) (*Agent, error) {
	if start < 0 || start >= grid.Len() {
		return nil, fmt.Errorf("start position %d on %d cells: %w", start, grid.Len(), world.ErrOutOfRange)
	}
	return &Agent{Position: start, Previous: start, grid: grid}, nil
}

// Step runs one decision cycle: sense, derive candidates, select with loop
// avoidance, execute. It returns the executed candidate. The avoidance
// filter only applies when more than one candidate exists; a lone candidate
// is executed unconditionally even if it is the avoided action.
func (a *Agent) Step() (Candidate, error) {
	percept, err := a.grid.Sense(a.Position)
	if err != nil {
		return Candidate{}, err
	}

	candidates := Candidates(percept)
	if len(candidates) == 0 {
		return Candidate{}, fmt.Errorf("empty candidate set at position %d: %w", a.Position, ErrNoLegalAction)
	}

	chosen := candidates[0]
	if len(candidates) > 1 {
		chosen = pickAction(candidates, a.avoid())
	}

	if err := a.execute(chosen.Action); err != nil {
		return Candidate{}, err
	}
	return chosen, nil
}

// avoid returns the action that would undo the previous move: an agent that
// arrived by moving right avoids moving left, and vice versa.
func (a *Agent) avoid() Action {
	switch a.Previous {
	case a.Position - 1:
		return MoveLeft
	case a.Position + 1:
		return MoveRight
	}
	return noAvoid
}

// execute applies one action. Moves are not bounds-checked here: an action
// is only offered when the percept showed it legal. Sucking does not touch
// Previous, so the avoidance target survives a cleaning stop.
func (a *Agent) execute(action Action) error {
	switch action {
	case MoveLeft:
		a.Previous = a.Position
		a.Cost++
		a.Performance--
		a.Position--
	case MoveRight:
		a.Previous = a.Position
		a.Cost++
		a.Performance--
		a.Position++
	case Suck:
		a.Cost++
		a.Performance--
		return a.grid.Clean(a.Position)
	default:
		return fmt.Errorf("unknown action %d", action)
	}
	return nil
}
