package engine

import "vacuum/agent"

// Status is the run loop's lifecycle state. Done is the only terminal
// status, reached when the grid is fully clean.
type Status int

const (
	Running Status = iota
	Done
)

func (s Status) String() string {
	if s == Done {
		return "done"
	}
	return "running"
}

// DefaultMaxTicks bounds a run. The avoidance heuristic deters oscillation
// between two cells but is not proven to prevent every infinite loop, so a
// run that outlives the budget is aborted instead of spinning forever.
const DefaultMaxTicks = 10000

// Update describes one executed action: where the agent was, where it ended
// up, and the grid after the action.
type Update struct {
	Tick   int
	From   int
	To     int
	Action agent.Action
	Score  int
	Cells  []int
}

// Report summarises a finished run.
type Report struct {
	Status      Status
	Ticks       int
	TotalCost   int
	Performance int
}

// Sink consumes per-tick updates, e.g. for display.
type Sink interface {
	Observe(Update)
	Complete(Report)
}
