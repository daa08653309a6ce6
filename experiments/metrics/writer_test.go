package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()

	// The writer creates its directory relative to the working directory.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	w, err := NewWriter("test_sweep")
	require.NoError(t, err)
	return w
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteScenarioConfigs(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteScenarioConfigs([]ScenarioConfig{
		{ID: 1, GridSize: 7, DirtProb: 0.3, Seed: 42},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.BaseDir(), "scenario_configs.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"id", "grid_size", "dirt_prob", "seed"}, rows[0])
	require.Equal(t, []string{"1", "7", "0.3", "42"}, rows[1])
}

func TestWriteRunRecords(t *testing.T) {
	w := newTestWriter(t)

	now := time.Now().UTC()
	err := w.WriteRunRecords([]RunRecord{
		{
			ID:       uuid.NewString(),
			Scenario: 1,
			RunMetric: RunMetric{
				GridSize:     7,
				InitialDirty: 3,
				Ticks:        12,
				TotalCost:    12,
				Performance:  -6,
				Clean:        true,
				StartTime:    now,
				EndTime:      now.Add(time.Second),
				Duration:     time.Second,
			},
		},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.BaseDir(), "run_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "12", rows[1][4], "ticks column")
	require.Equal(t, "true", rows[1][7], "clean column")
}

func TestWriteTickRecords(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteTickRecords([]TickRecord{
		{Run: "run-1", TickMetric: TickMetric{Tick: 1, From: 0, To: 1, Action: "move_right", Score: -2, DirtyLeft: 3}},
		{Run: "run-1", TickMetric: TickMetric{Tick: 2, From: 1, To: 1, Action: "suck", Score: 0, DirtyLeft: 2}},
	})
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(w.BaseDir(), "tick_records.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"run", "tick", "from", "to", "action", "score", "dirty_left"}, rows[0])
	require.Equal(t, []string{"run-1", "2", "1", "1", "suck", "0", "2"}, rows[2])
}
