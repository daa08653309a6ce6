package experiments

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"vacuum/agent"
	"vacuum/engine"
	"vacuum/experiments/metrics"
	"vacuum/world"
)

const RunsPerScenario = 30

var sweepConfigs = []metrics.ScenarioConfig{
	{ID: 1, GridSize: 3, DirtProb: 0.3, Seed: 1},
	{ID: 2, GridSize: 7, DirtProb: 0.3, Seed: 2},
	{ID: 3, GridSize: 7, DirtProb: 0.7, Seed: 3},
	{ID: 4, GridSize: 15, DirtProb: 0.3, Seed: 4},
	{ID: 5, GridSize: 15, DirtProb: 0.7, Seed: 5},
	{ID: 6, GridSize: 31, DirtProb: 0.5, Seed: 6},
}

// RunSizeSweep measures run length and cost across grid sizes and dirt
// densities, storing CSV records under experiments/size_sweep.
func RunSizeSweep() {
	runRecords := []metrics.RunRecord{}
	tickRecords := []metrics.TickRecord{}

	for ci, config := range sweepConfigs {
		rng := rand.New(rand.NewSource(config.Seed))
		for i := 0; i < RunsPerScenario; i++ {
			runMetric, tickMetrics, err := runScenario(config, rng)
			if err != nil {
				panic(fmt.Sprintf("scenario %d run %d failed: %v", config.ID, i+1, err))
			}

			id := uuid.NewString()
			runRecords = append(runRecords, metrics.RunRecord{
				ID:        id,
				Scenario:  config.ID,
				RunMetric: runMetric,
			})
			for _, tm := range tickMetrics {
				tickRecords = append(tickRecords, metrics.TickRecord{
					Run:        id,
					TickMetric: tm,
				})
			}
		}
		log.Info().Msgf("completed scenario %d of %d", ci+1, len(sweepConfigs))
	}

	log.Info().Msg("completed size sweep")

	// Store experiment metadata
	writer, err := metrics.NewWriter("size_sweep")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteScenarioConfigs(sweepConfigs)
	if err != nil {
		panic(fmt.Sprintf("failed to store scenario configs: %v", err))
	}
	log.Info().Msg("stored scenario configs")

	// Store experiment results
	err = writer.WriteRunRecords(runRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write run records: %v", err))
	}
	log.Info().Msg("stored run records")

	err = writer.WriteTickRecords(tickRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write tick records: %v", err))
	}
	log.Info().Msg("stored tick records")
}

// runScenario executes a single run on a fresh random grid and returns its
// metrics.
func runScenario(config metrics.ScenarioConfig, rng *rand.Rand) (metrics.RunMetric, []metrics.TickMetric, error) {
	grid, err := world.RandomGrid(config.GridSize, config.DirtProb, rng)
	if err != nil {
		return metrics.RunMetric{}, nil, err
	}
	cleaner, err := agent.New(grid, 0)
	if err != nil {
		return metrics.RunMetric{}, nil, err
	}

	collector := metrics.NewCollector()
	e := engine.New(cleaner, grid, engine.WithCollector(collector))
	report, err := e.Run()
	if err != nil {
		return metrics.RunMetric{}, nil, err
	}

	runMetric := collector.Complete(report.TotalCost, report.Performance, report.Status == engine.Done)
	return runMetric, collector.Ticks(), nil
}
