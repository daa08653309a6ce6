package agent

// noAvoid marks that no action is excluded from winning a tie.
const noAvoid Action = -1

// pickAction scans candidates in derivation order keeping a running best: a
// candidate replaces the best when no best is chosen yet or when its score
// strictly exceeds the best's, so ties go to the first candidate seen. The
// avoided action never becomes best while an alternative exists; if every
// candidate is avoided the first one is returned anyway, so avoidance can
// never leave the agent without an action.
func pickAction(candidates []Candidate, avoid Action) Candidate {
	best := -1
	for i, c := range candidates {
		if c.Action == avoid {
			continue
		}
		if best < 0 || c.Score > candidates[best].Score {
			best = i
		}
	}
	if best < 0 {
		return candidates[0]
	}
	return candidates[best]
}
