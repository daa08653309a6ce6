package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vacuum/agent"
	"vacuum/config"
	"vacuum/engine"
	"vacuum/experiments"
	"vacuum/world"
)

// demoRoom is the seven-cell room the simulator cleans when no scenario is
// given.
var demoRoom = []int{0, 0, 1, 0, 1, 0, 1}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacuum",
		Short: "Reflex vacuum agent simulator",
	}
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newSweepCmd())
	return cmd
}

// runOptions holds options for the run command.
type runOptions struct {
	configPath string
	cells      string
	start      int
	delay      time.Duration
	maxTicks   int
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one cleaning scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML scenario file")
	cmd.Flags().StringVar(&opts.cells, "cells", "", "Comma-separated dirt flags, e.g. 0,0,1")
	cmd.Flags().IntVar(&opts.start, "start", 0, "Initial agent position")
	cmd.Flags().DurationVar(&opts.delay, "delay", 2*time.Second, "Delay between ticks")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", engine.DefaultMaxTicks, "Abort after this many ticks")

	return cmd
}

func run(opts *runOptions) error {
	cells := demoRoom
	start := opts.start
	delay := opts.delay
	maxTicks := opts.maxTicks

	if opts.configPath != "" {
		scenario, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		cells = scenario.Cells
		start = scenario.Start
		if scenario.Delay > 0 {
			delay = time.Duration(scenario.Delay)
		}
		if scenario.MaxTicks > 0 {
			maxTicks = scenario.MaxTicks
		}
	} else if opts.cells != "" {
		parsed, err := parseCells(opts.cells)
		if err != nil {
			return err
		}
		cells = parsed
	}

	grid, err := world.NewGrid(cells)
	if err != nil {
		return err
	}
	cleaner, err := agent.New(grid, start)
	if err != nil {
		return err
	}

	e := engine.New(cleaner, grid,
		engine.WithDelay(delay),
		engine.WithMaxTicks(maxTicks),
		engine.WithSink(engine.NewConsoleSink()),
	)
	_, err = e.Run()
	return err
}

func parseCells(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	cells := make([]int, len(parts))
	for i, part := range parts {
		flag, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("failed to parse cell %d: %w", i, err)
		}
		cells[i] = flag
	}
	return cells, nil
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run the grid size sweep and store CSV records",
		RunE: func(cmd *cobra.Command, args []string) error {
			experiments.RunSizeSweep()
			return nil
		},
	}
}
