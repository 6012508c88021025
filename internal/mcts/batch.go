package mcts

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/randutil"
	"github.com/lox/holdem-mcts/internal/statistics"
)

// RunBatch runs independent searches concurrently, at most Config.Workers at
// a time. Request i is seeded with randutil.Derive(Config.Seed, i) so a batch
// replays from a single seed. Results are returned in request order.
func (e *Engine) RunBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Workers)

	for i, req := range reqs {
		seed := randutil.Derive(e.config.Seed, i)
		g.Go(func() error {
			res, err := e.search(ctx, req, seed)
			if err != nil {
				return fmt.Errorf("search %d (%s): %w", i, req.Round, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TrialSummary aggregates repeated searches of the same request
type TrialSummary struct {
	Request Request
	Results []Result
	Stats   *statistics.Statistics
}

// RunTrials repeats a search n times with independent seeds
func (e *Engine) RunTrials(ctx context.Context, req Request, n int) (*TrialSummary, error) {
	if n < 1 {
		return nil, fmt.Errorf("trial count must be at least 1, got %d", n)
	}

	reqs := make([]Request, n)
	for i := range reqs {
		reqs[i] = req
	}

	results, err := e.RunBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(statistics.TrialResult{
			WinPct:       r.WinProbability,
			Seed:         r.Seed,
			Iterations:   r.Iterations,
			Showdowns:    r.Showdowns,
			ShowdownWins: r.ShowdownWins,
		})
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	e.logger.Debug().
		Str("round", req.Round.String()).
		Int("trials", n).
		Float64("mean_win_pct", stats.Mean()).
		Float64("stddev", stats.StdDev()).
		Msg("Trials complete")

	return &TrialSummary{Request: req, Results: results, Stats: stats}, nil
}

// RequestsForBoard returns one request per betting round the known board
// reaches, from pre-flop up to the round matching len(board).
func RequestsForBoard(hand, board []deck.Card) ([]Request, error) {
	last, err := RoundForBoard(len(board))
	if err != nil {
		return nil, err
	}

	reqs := make([]Request, 0, int(last)+1)
	for r := PreFlop; r <= last; r++ {
		reqs = append(reqs, Request{
			Round:     r,
			Hand:      hand,
			Community: board[:r.CommunityCards()],
		})
	}
	return reqs, nil
}
