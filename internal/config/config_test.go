package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-mcts/internal/mcts"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcts.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, mcts.DefaultTimeBudget, cfg.TimeBudget)
	assert.Equal(t, mcts.DefaultExploration, cfg.Exploration)
	assert.Equal(t, 1, cfg.Trials)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
search {
  time_budget    = "250ms"
  exploration    = 2.0
  max_iterations = 5000
  seed           = 42
}

parallel {
  workers = 3
  trials  = 8
}

log {
  level = "DEBUG"
  json  = true
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.TimeBudget)
	assert.Equal(t, 2.0, cfg.Exploration)
	assert.Equal(t, 5000, cfg.MaxIterations)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 8, cfg.Trials)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.True(t, cfg.LogJSON)

	engine := cfg.Engine()
	assert.Equal(t, mcts.Config{
		TimeBudget:    250 * time.Millisecond,
		Exploration:   2.0,
		MaxIterations: 5000,
		Seed:          42,
		Workers:       3,
	}, engine)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
parallel {
  trials = 4
}
`))
	require.NoError(t, err)

	want := Default()
	want.Trials = 4
	assert.Equal(t, want, cfg)
}

func TestLoadZeroBudget(t *testing.T) {
	cfg, err := Load(writeConfig(t, `search { time_budget = "0s" }`))
	require.NoError(t, err)
	assert.Zero(t, cfg.TimeBudget)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `search {`},
		{"unknown block", `server { port = 1 }`},
		{"unknown attribute", `search { budget = "1s" }`},
		{"bad duration", `search { time_budget = "soon" }`},
		{"negative duration", `search { time_budget = "-1s" }`},
		{"negative exploration", `search { exploration = -1 }`},
		{"negative iterations", `search { max_iterations = -5 }`},
		{"negative workers", `parallel { workers = -2 }`},
		{"negative trials", `parallel { trials = -1 }`},
		{"bad level", `log { level = "loud" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Workers = 0
	assert.Error(t, cfg.Validate())
}
