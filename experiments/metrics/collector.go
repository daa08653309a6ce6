package metrics

import "time"

// TickMetric records one executed action.
type TickMetric struct {
	Tick      int
	From      int
	To        int
	Action    string
	Score     int
	DirtyLeft int
}

// RunMetric summarises one finished run.
type RunMetric struct {
	GridSize     int
	InitialDirty int
	Ticks        int
	TotalCost    int
	Performance  int
	Clean        bool
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

type Collector interface {
	Start(gridSize, initialDirty int)
	AddTick(TickMetric)
	Ticks() []TickMetric
	Complete(totalCost, performance int, clean bool) RunMetric
}

type collector struct {
	gridSize     int
	initialDirty int
	startTime    time.Time
	ticks        []TickMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(gridSize, initialDirty int) {
	c.startTime = time.Now()
	c.gridSize = gridSize
	c.initialDirty = initialDirty
	c.ticks = nil
}

func (c *collector) AddTick(tick TickMetric) {
	c.ticks = append(c.ticks, tick)
}

func (c *collector) Ticks() []TickMetric {
	return c.ticks
}

func (c *collector) Complete(totalCost, performance int, clean bool) RunMetric {
	end := time.Now()
	return RunMetric{
		GridSize:     c.gridSize,
		InitialDirty: c.initialDirty,
		Ticks:        len(c.ticks),
		TotalCost:    totalCost,
		Performance:  performance,
		Clean:        clean,
		StartTime:    c.startTime,
		EndTime:      end,
		Duration:     end.Sub(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(gridSize, initialDirty int)                       {}
func (dummyCollector) AddTick(tick TickMetric)                                {}
func (dummyCollector) Ticks() []TickMetric                                    { return nil }
func (dummyCollector) Complete(totalCost, performance int, clean bool) RunMetric { return RunMetric{} }
