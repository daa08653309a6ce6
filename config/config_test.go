package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	scenario, err := Parse([]byte(`
cells: [0, 0, 1, 0, 1]
start: 2
delay: 250ms
max_ticks: 100
`))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1, 0, 1}, scenario.Cells)
	require.Equal(t, 2, scenario.Start)
	require.Equal(t, 250*time.Millisecond, time.Duration(scenario.Delay))
	require.Equal(t, 100, scenario.MaxTicks)
}

func TestParseDefaults(t *testing.T) {
	scenario, err := Parse([]byte(`cells: [1]`))
	require.NoError(t, err)
	require.Equal(t, 0, scenario.Start)
	require.Equal(t, time.Duration(0), time.Duration(scenario.Delay))
	require.Equal(t, 0, scenario.MaxTicks)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"empty cells":        `cells: []`,
		"bad flag":           `cells: [0, 2]`,
		"start out of range": "cells: [0, 1]\nstart: 2",
		"negative start":     "cells: [0, 1]\nstart: -1",
		"bad delay":          "cells: [1]\ndelay: soon",
		"negative max_ticks": "cells: [1]\nmax_ticks: -5",
		"not yaml":           `{{`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cells: [0, 1]\nstart: 1\n"), 0644))

	scenario, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, scenario.Start)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
