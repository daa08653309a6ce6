package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vacuum/world"
)

func TestCandidates(t *testing.T) {
	present := func(dirty bool) world.Observation {
		return world.Observation{Present: true, Dirty: dirty}
	}

	t.Run("interior dirty cell offers all three", func(t *testing.T) {
		got := Candidates(world.Percept{Left: present(false), Right: present(true), Centre: true})
		require.Equal(t, []Candidate{
			{Action: MoveLeft, Score: -2},
			{Action: MoveRight, Score: -2},
			{Action: Suck, Score: 0},
		}, got, "derivation order must be move_left, move_right, suck")
	})

	t.Run("left boundary drops move_left", func(t *testing.T) {
		got := Candidates(world.Percept{Right: present(false), Centre: false})
		require.Equal(t, []Candidate{{Action: MoveRight, Score: -2}}, got)
	})

	t.Run("right boundary drops move_right", func(t *testing.T) {
		got := Candidates(world.Percept{Left: present(false), Centre: false})
		require.Equal(t, []Candidate{{Action: MoveLeft, Score: -2}}, got)
	})

	t.Run("clean single cell offers nothing", func(t *testing.T) {
		got := Candidates(world.Percept{Centre: false})
		require.Empty(t, got)
	})

	t.Run("dirty single cell offers suck only", func(t *testing.T) {
		got := Candidates(world.Percept{Centre: true})
		require.Equal(t, []Candidate{{Action: Suck, Score: 0}}, got)
	})
}

func TestActionString(t *testing.T) {
	require.Equal(t, "move_left", MoveLeft.String())
	require.Equal(t, "move_right", MoveRight.String())
	require.Equal(t, "suck", Suck.String())
	require.Equal(t, "unknown", Action(9).String())
}
