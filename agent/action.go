package agent

import "vacuum/world"

// Action identifies one of the agent's actuators.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	Suck
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case Suck:
		return "suck"
	}
	return "unknown"
}

// rule is one condition-action row: when the condition holds for a percept,
// the action is legal with the fixed payoff.
type rule struct {
	condition   func(world.Percept) bool
	action      Action
	performance int
	cost        int
}

// ruleTable is evaluated top to bottom. Its order is the candidate
// derivation order and therefore the tie-break order during selection, so it
// must stay fixed: move_left, move_right, suck.
var ruleTable = []rule{
	{action: MoveLeft, performance: -1, cost: 1, condition: func(p world.Percept) bool { return p.Left.Present }},
	{action: MoveRight, performance: -1, cost: 1, condition: func(p world.Percept) bool { return p.Right.Present }},
	{action: Suck, performance: 1, cost: 1, condition: func(p world.Percept) bool { return p.Centre }},
}

// Candidate pairs a legal action with its net performance-minus-cost score.
type Candidate struct {
	Action Action
	Score  int
}

// Candidates derives the legal actions and their scores for a percept. The
// result is empty only when the percept has no neighbours and a clean
// centre, i.e. on an already clean single-cell grid.
func Candidates(p world.Percept) []Candidate {
	var candidates []Candidate
	for _, r := range ruleTable {
		if r.condition(p) {
			candidates = append(candidates, Candidate{Action: r.action, Score: r.performance - r.cost})
		}
	}
	return candidates
}
