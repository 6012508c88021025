// Package mcts estimates a player's win probability with a Monte Carlo Tree
// Search over stay/fold decisions, resolving rollouts at a heads-up showdown.
package mcts

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/evaluator"
)

// ErrNoSimulations is returned when a search ends before completing an iteration
var ErrNoSimulations = errors.New("no simulations completed")

const (
	// DefaultExploration is the UCB1 exploration constant, sqrt(2)
	DefaultExploration = 1.414

	// DefaultTimeBudget is the wall-clock budget of one search
	DefaultTimeBudget = 10 * time.Second
)

// Config controls a search
type Config struct {
	TimeBudget    time.Duration
	Exploration   float64
	MaxIterations int   // 0 means bounded by TimeBudget only
	Seed          int64 // seeds the deck and rollout RNG
	Workers       int   // concurrent searches in RunBatch
}

// DefaultConfig returns the default search configuration
func DefaultConfig() Config {
	return Config{
		TimeBudget:  DefaultTimeBudget,
		Exploration: DefaultExploration,
		Workers:     defaultWorkers(),
	}
}

func defaultWorkers() int {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8 // Cap at 8 for diminishing returns
	}
	return workers
}

// Request describes the decision point to evaluate
type Request struct {
	Round     Round
	Hand      []deck.Card // the tracked player's two hole cards
	Community []deck.Card // known community cards, as many as Round implies
}

// Validate checks the request describes a reachable deal
func (r Request) Validate() error {
	if !r.Round.Valid() {
		return fmt.Errorf("%w: unknown round %d", evaluator.ErrInvalidHand, r.Round)
	}
	if len(r.Hand) != 2 {
		return fmt.Errorf("%w: need 2 hole cards, got %d", evaluator.ErrInvalidHand, len(r.Hand))
	}
	if want := r.Round.CommunityCards(); len(r.Community) != want {
		return fmt.Errorf("%w: %s needs %d community cards, got %d",
			evaluator.ErrInvalidHand, r.Round, want, len(r.Community))
	}
	for _, c := range append(append([]deck.Card{}, r.Hand...), r.Community...) {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card %v", evaluator.ErrInvalidHand, c)
		}
	}
	if c, dup := deck.FindDuplicate(r.Hand, r.Community); dup {
		return fmt.Errorf("%w: duplicate card %s", evaluator.ErrInvalidHand, c)
	}
	return nil
}

// ChildStats summarises one of the root's children
type ChildStats struct {
	IsStay bool
	Visits int
	Value  float64
}

// Mean returns the child's average rollout value
func (c ChildStats) Mean() float64 {
	if c.Visits == 0 {
		return 0
	}
	return c.Value / float64(c.Visits)
}

// Result is the outcome of one search
type Result struct {
	Round          Round
	WinProbability float64 // root value / root visits, in percent
	Visits         int
	Iterations     int
	Showdowns      int
	ShowdownWins   int
	Nodes          int
	Seed           int64
	Elapsed        time.Duration
	Children       []ChildStats // root children, stay first; empty at the river
}

// ShowdownEquity returns the percentage of showdowns the tracked hand won
func (r Result) ShowdownEquity() float64 {
	if r.Showdowns == 0 {
		return 0
	}
	return float64(r.ShowdownWins) / float64(r.Showdowns) * 100
}

// Engine runs searches. An Engine holds no per-search state and can serve
// concurrent searches; each search owns its own deck, tree and RNG.
type Engine struct {
	config Config
	clock  quartz.Clock
	logger zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock used for the search deadline
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLogger sets the engine logger
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine, filling unset config fields with defaults
func NewEngine(config Config, opts ...Option) *Engine {
	if config.Exploration <= 0 {
		config.Exploration = DefaultExploration
	}
	if config.TimeBudget < 0 {
		config.TimeBudget = 0
	}
	if config.Workers <= 0 {
		config.Workers = defaultWorkers()
	}

	e := &Engine{
		config: config,
		clock:  quartz.NewReal(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's effective configuration
func (e *Engine) Config() Config {
	return e.config
}

// Search runs MCTS for the request until the time budget elapses, the
// iteration cap is reached or ctx is cancelled.
func (e *Engine) Search(ctx context.Context, req Request) (Result, error) {
	return e.search(ctx, req, e.config.Seed)
}

func (e *Engine) search(ctx context.Context, req Request, seed int64) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	start := e.clock.Now()
	deadline := start.Add(e.config.TimeBudget)
	s := newSearch(req, seed, e.config.Exploration)

	e.logger.Debug().
		Str("round", req.Round.String()).
		Str("hand", deck.FormatCards(req.Hand)).
		Str("board", deck.FormatCards(req.Community)).
		Dur("budget", e.config.TimeBudget).
		Int64("seed", seed).
		Msg("Starting search")

	for e.config.MaxIterations == 0 || s.iterations < e.config.MaxIterations {
		if !e.clock.Now().Before(deadline) || ctx.Err() != nil {
			break
		}
		if err := s.iterate(); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", s.iterations+1, err)
		}
	}

	elapsed := e.clock.Now().Sub(start)
	root := s.tree.Node(s.tree.Root())
	if root.Visits == 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrNoSimulations, err)
		}
		return Result{}, fmt.Errorf("%w within %v", ErrNoSimulations, e.config.TimeBudget)
	}

	result := Result{
		Round:          req.Round,
		WinProbability: root.Value / float64(root.Visits) * 100,
		Visits:         root.Visits,
		Iterations:     s.iterations,
		Showdowns:      s.showdowns,
		ShowdownWins:   s.showdownWins,
		Nodes:          s.tree.Len(),
		Seed:           seed,
		Elapsed:        elapsed,
	}
	for _, id := range s.tree.Children(s.tree.Root()) {
		n := s.tree.Node(id)
		result.Children = append(result.Children, ChildStats{IsStay: n.IsStay, Visits: n.Visits, Value: n.Value})
	}

	e.logger.Debug().
		Str("round", req.Round.String()).
		Int("iterations", result.Iterations).
		Int("visits", result.Visits).
		Int("nodes", result.Nodes).
		Float64("win_pct", result.WinProbability).
		Float64("showdown_equity", result.ShowdownEquity()).
		Dur("elapsed", elapsed).
		Msg("Search complete")

	return result, nil
}
