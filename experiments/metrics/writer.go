package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ScenarioConfig describes one sweep scenario: a batch of random grids of
// the same size and dirt density.
type ScenarioConfig struct {
	ID       int
	GridSize int
	DirtProb float64
	Seed     uint64
}

// RunRecord ties a run's metrics to the sweep scenario that produced it.
type RunRecord struct {
	ID       string // uuid
	Scenario int    // ScenarioConfig.ID
	RunMetric
}

// TickRecord ties a tick's metrics to its run.
type TickRecord struct {
	Run string // RunRecord.ID
	TickMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteScenarioConfigs(configs []ScenarioConfig) error {
	path := filepath.Join(w.baseDir, "scenario_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create scenario configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "grid_size", "dirt_prob", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write scenario configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.GridSize),
			strconv.FormatFloat(config.DirtProb, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write scenario config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "run_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "scenario", "grid_size", "initial_dirty", "ticks", "total_cost", "performance", "clean", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			strconv.Itoa(record.Scenario),
			strconv.Itoa(record.GridSize),
			strconv.Itoa(record.InitialDirty),
			strconv.Itoa(record.Ticks),
			strconv.Itoa(record.TotalCost),
			strconv.Itoa(record.Performance),
			strconv.FormatBool(record.Clean),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteTickRecords(records []TickRecord) error {
	path := filepath.Join(w.baseDir, "tick_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tick records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run", "tick", "from", "to", "action", "score", "dirty_left"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write tick records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Run,
			strconv.Itoa(record.Tick),
			strconv.Itoa(record.From),
			strconv.Itoa(record.To),
			record.Action,
			strconv.Itoa(record.Score),
			strconv.Itoa(record.DirtyLeft),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write tick record row: %w", err)
		}
	}

	return nil
}
