package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"vacuum/agent"
	"vacuum/experiments/metrics"
	"vacuum/world"
)

// ErrTickBudget means the run was aborted before the grid came clean.
var ErrTickBudget = errors.New("tick budget exhausted")

type Option func(e *Engine)

func WithDelay(delay time.Duration) Option {
	return func(e *Engine) {
		if delay > 0 {
			e.delay = delay
		}
	}
}

func WithMaxTicks(ticks int) Option {
	return func(e *Engine) {
		if ticks > 0 {
			e.maxTicks = ticks
		}
	}
}

func WithSink(sink Sink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

// Engine drives a single agent over a single grid, fully synchronously.
type Engine struct {
	agent     *agent.Agent
	grid      *world.Grid
	delay     time.Duration
	maxTicks  int
	sink      Sink
	collector metrics.Collector
}

func New(a *agent.Agent, grid *world.Grid, options ...Option) *Engine {
	e := &Engine{ // Default values
		agent:     a,
		grid:      grid,
		maxTicks:  DefaultMaxTicks,
		sink:      nopSink{},
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes decision cycles until the grid is fully clean or the tick
// budget runs out. The completion check comes first on every tick, so an
// already clean grid finishes in zero ticks.
func (e *Engine) Run() (Report, error) {
	e.collector.Start(e.grid.Len(), e.grid.DirtyCount())

	for tick := 1; ; tick++ {
		if e.grid.IsFullyClean() {
			report := e.report(Done, tick-1)
			log.Info().Msgf("fully clean after %d ticks with total cost %d", report.Ticks, report.TotalCost)
			e.sink.Complete(report)
			return report, nil
		}
		if tick > e.maxTicks {
			report := e.report(Running, tick-1)
			e.sink.Complete(report)
			return report, fmt.Errorf("%d ticks without coming clean: %w", e.maxTicks, ErrTickBudget)
		}

		from := e.agent.Position
		chosen, err := e.agent.Step()
		if err != nil {
			return e.report(Running, tick-1), err
		}

		e.sink.Observe(Update{
			Tick:   tick,
			From:   from,
			To:     e.agent.Position,
			Action: chosen.Action,
			Score:  chosen.Score,
			Cells:  e.grid.Snapshot(),
		})
		e.collector.AddTick(metrics.TickMetric{
			Tick:      tick,
			From:      from,
			To:        e.agent.Position,
			Action:    chosen.Action.String(),
			Score:     chosen.Score,
			DirtyLeft: e.grid.DirtyCount(),
		})

		if e.delay > 0 {
			time.Sleep(e.delay)
		}
	}
}

func (e *Engine) report(status Status, ticks int) Report {
	return Report{
		Status:      status,
		Ticks:       ticks,
		TotalCost:   e.agent.Cost,
		Performance: e.agent.Performance,
	}
}

type nopSink struct{}

func (nopSink) Observe(u Update)  {}
func (nopSink) Complete(r Report) {}
