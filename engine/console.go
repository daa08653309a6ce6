package engine

import (
	"fmt"
	"io"
	"os"

	"vacuum/agent"
)

// ConsoleSink renders each tick for an interactive run: where the agent
// moved, what it did, and the room after the action.
type ConsoleSink struct {
	Out io.Writer
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{Out: os.Stdout}
}

func (s *ConsoleSink) Observe(u Update) {
	fmt.Fprintf(s.Out, "I was in %d and now I am in %d\n", u.From, u.To)
	switch u.Action {
	case agent.MoveLeft:
		fmt.Fprintln(s.Out, "Moving left...")
	case agent.MoveRight:
		fmt.Fprintln(s.Out, "Moving right...")
	case agent.Suck:
		fmt.Fprintln(s.Out, "Cleaning trash...")
	}
	fmt.Fprintf(s.Out, "%v\n\n", u.Cells)
}

func (s *ConsoleSink) Complete(r Report) {
	if r.Status == Done {
		fmt.Fprintf(s.Out, "Finished. Total cost: %d\n", r.TotalCost)
	} else {
		fmt.Fprintf(s.Out, "Stopped after %d ticks. Total cost: %d\n", r.Ticks, r.TotalCost)
	}
}
