// Package config loads YAML scenario files describing a room and run setup.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"vacuum/world"
)

// Duration wraps time.Duration so scenario files can say "2s" or "250ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("failed to parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Scenario is one room and run setup. Cells are the dirt flags in position
// order starting at 0.
type Scenario struct {
	Cells    []int    `yaml:"cells"`
	Start    int      `yaml:"start"`
	Delay    Duration `yaml:"delay"`
	MaxTicks int      `yaml:"max_ticks"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Cells) == 0 {
		return fmt.Errorf("scenario needs at least one cell")
	}
	for pos, flag := range s.Cells {
		if flag != world.CleanCell && flag != world.DirtyCell {
			return fmt.Errorf("cell %d has flag %d, want %d or %d", pos, flag, world.CleanCell, world.DirtyCell)
		}
	}
	if s.Start < 0 || s.Start >= len(s.Cells) {
		return fmt.Errorf("start position %d outside [0, %d)", s.Start, len(s.Cells))
	}
	if s.Delay < 0 {
		return fmt.Errorf("delay must not be negative")
	}
	if s.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must not be negative")
	}
	return nil
}
