// Package config loads mcts-odds settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-mcts/internal/mcts"
)

// File mirrors the HCL layout. Every block is optional.
type File struct {
	Search   *SearchBlock   `hcl:"search,block"`
	Parallel *ParallelBlock `hcl:"parallel,block"`
	Log      *LogBlock      `hcl:"log,block"`
}

// SearchBlock configures a single search
type SearchBlock struct {
	TimeBudget    string  `hcl:"time_budget,optional"`
	Exploration   float64 `hcl:"exploration,optional"`
	MaxIterations int     `hcl:"max_iterations,optional"`
	Seed          int64   `hcl:"seed,optional"`
}

// ParallelBlock configures concurrent searches
type ParallelBlock struct {
	Workers int `hcl:"workers,optional"`
	Trials  int `hcl:"trials,optional"`
}

// LogBlock configures logging
type LogBlock struct {
	Level string `hcl:"level,optional"`
	JSON  bool   `hcl:"json,optional"`
}

// Config is the resolved configuration
type Config struct {
	TimeBudget    time.Duration
	Exploration   float64
	MaxIterations int
	Seed          int64
	Workers       int
	Trials        int
	LogLevel      string
	LogJSON       bool
}

// Default returns the configuration used when no file is present
func Default() *Config {
	search := mcts.DefaultConfig()
	return &Config{
		TimeBudget:  search.TimeBudget,
		Exploration: search.Exploration,
		Workers:     search.Workers,
		Trials:      1,
		LogLevel:    "info",
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw File
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if s := raw.Search; s != nil {
		if s.TimeBudget != "" {
			budget, err := time.ParseDuration(s.TimeBudget)
			if err != nil {
				return nil, fmt.Errorf("search.time_budget: %w", err)
			}
			config.TimeBudget = budget
		}
		if s.Exploration != 0 {
			config.Exploration = s.Exploration
		}
		config.MaxIterations = s.MaxIterations
		config.Seed = s.Seed
	}
	if p := raw.Parallel; p != nil {
		if p.Workers != 0 {
			config.Workers = p.Workers
		}
		if p.Trials != 0 {
			config.Trials = p.Trials
		}
	}
	if l := raw.Log; l != nil {
		if l.Level != "" {
			config.LogLevel = strings.ToLower(l.Level)
		}
		config.LogJSON = l.JSON
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration values are usable
func (c *Config) Validate() error {
	if c.TimeBudget < 0 {
		return fmt.Errorf("invalid time budget: %v", c.TimeBudget)
	}
	if c.Exploration <= 0 {
		return fmt.Errorf("exploration must be positive, got %v", c.Exploration)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max iterations must not be negative, got %d", c.MaxIterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, info if unset
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// Engine returns the search configuration for mcts.NewEngine
func (c *Config) Engine() mcts.Config {
	return mcts.Config{
		TimeBudget:    c.TimeBudget,
		Exploration:   c.Exploration,
		MaxIterations: c.MaxIterations,
		Seed:          c.Seed,
		Workers:       c.Workers,
	}
}
