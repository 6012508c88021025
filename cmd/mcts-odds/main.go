package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/holdem-mcts/internal/config"
	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/mcts"
	"github.com/lox/holdem-mcts/internal/randutil"
)

type CLI struct {
	Hand        []string       `arg:"" help:"Hole cards, e.g. 'AS AD' or ASAD" required:"true"`
	Board       string         `short:"b" help:"Community cards, e.g. 'AC AH 2D 3D 4D'"`
	Round       string         `short:"r" help:"Round to evaluate (pre-flop, pre-turn, pre-river, river); defaults to the round the board implies"`
	AllRounds   bool           `short:"a" help:"Evaluate every round the board reaches"`
	Budget      *time.Duration `short:"t" env:"MCTS_ODDS_BUDGET" help:"Time budget per search (default 10s)"`
	Iterations  *int           `short:"i" env:"MCTS_ODDS_ITERATIONS" help:"Stop each search after this many iterations"`
	Exploration *float64       `help:"UCB1 exploration constant (default 1.414)"`
	Trials      *int           `short:"n" help:"Repeat each search and report the spread"`
	Workers     *int           `short:"w" env:"MCTS_ODDS_WORKERS" help:"Searches to run concurrently"`
	Seed        *int64         `env:"MCTS_ODDS_SEED" help:"Random seed for reproducible results"`
	Config      string         `short:"c" env:"MCTS_ODDS_CONFIG" help:"HCL config file" type:"path"`
	LogLevel    string         `env:"MCTS_ODDS_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogJSON     bool           `name:"log-json" help:"Write logs as JSON"`
	NoColor     bool           `help:"Disable colored output"`
}

func main() {
	// Flags can also come from the environment or a local .env file
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mcts-odds"),
		kong.Description("Estimate heads-up win probability with a Monte Carlo Tree Search over stay/fold decisions."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(cli.Run(os.Stdout, os.Stderr))
}

// Run resolves configuration, runs the requested searches and prints the results
func (c *CLI) Run(stdout, stderr io.Writer) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		return err
	}

	logger := setupLogger(stderr, cfg.Level(), cfg.LogJSON)

	hand, board, err := parseCards(c.Hand, c.Board)
	if err != nil {
		return err
	}

	reqs, err := c.requests(hand, board)
	if err != nil {
		return err
	}

	ctx, stop := setupSignalHandler(logger)
	defer stop()

	engine := mcts.NewEngine(cfg.Engine(), mcts.WithLogger(logger))
	out := newPrinter(stdout, c.NoColor)
	out.header(hand, board)

	start := time.Now()
	if cfg.Trials > 1 {
		summaries, err := runTrials(ctx, engine, reqs, cfg.Trials)
		if err != nil {
			return err
		}
		out.trials(summaries)
	} else {
		results, err := runSearches(ctx, engine, reqs)
		if err != nil {
			return err
		}
		out.results(results)
	}
	out.footer(engine.Config(), cfg.Trials, time.Since(start))
	return nil
}

// resolveConfig loads the config file, if any, and applies flag overrides
func (c *CLI) resolveConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Budget != nil {
		cfg.TimeBudget = *c.Budget
	}
	if c.Iterations != nil {
		cfg.MaxIterations = *c.Iterations
	}
	if c.Exploration != nil {
		cfg.Exploration = *c.Exploration
	}
	if c.Trials != nil {
		cfg.Trials = *c.Trials
	}
	if c.Workers != nil {
		cfg.Workers = *c.Workers
	}
	if c.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(c.LogLevel)
	}
	if c.LogJSON {
		cfg.LogJSON = true
	}

	// A zero seed anywhere but the command line asks for a fresh one
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	} else if cfg.Seed == 0 {
		cfg.Seed = randutil.TimeSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseCards parses the hole cards and board, rejecting duplicates
func parseCards(handArgs []string, boardArg string) (hand, board []deck.Card, err error) {
	hand, err = deck.ParseCards(strings.Join(handArgs, " "))
	if err != nil {
		return nil, nil, fmt.Errorf("hand: %w", err)
	}
	if len(hand) != 2 {
		return nil, nil, fmt.Errorf("hand must contain exactly 2 cards, got %d", len(hand))
	}

	if boardArg != "" {
		board, err = deck.ParseCards(boardArg)
		if err != nil {
			return nil, nil, fmt.Errorf("board: %w", err)
		}
	}
	if len(board) > 5 {
		return nil, nil, fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
	}

	if card, dup := deck.FindDuplicate(hand, board); dup {
		return nil, nil, fmt.Errorf("duplicate card found: %s", card)
	}
	return hand, board, nil
}

// requests builds the searches to run. An explicit round uses the first
// cards of the board that round knows about.
func (c *CLI) requests(hand, board []deck.Card) ([]mcts.Request, error) {
	if c.AllRounds {
		if c.Round != "" {
			return nil, errors.New("--round and --all-rounds are mutually exclusive")
		}
		return mcts.RequestsForBoard(hand, board)
	}

	var round mcts.Round
	var err error
	if c.Round != "" {
		round, err = mcts.ParseRound(c.Round)
		if err != nil {
			return nil, err
		}
		if want := round.CommunityCards(); len(board) < want {
			return nil, fmt.Errorf("%s needs %d community cards, board has %d", round, want, len(board))
		}
	} else {
		round, err = mcts.RoundForBoard(len(board))
		if err != nil {
			return nil, err
		}
	}

	return []mcts.Request{{
		Round:     round,
		Hand:      hand,
		Community: board[:round.CommunityCards()],
	}}, nil
}

// runSearches runs a lone request with the configured seed and fans several
// out on the engine's worker pool.
func runSearches(ctx context.Context, engine *mcts.Engine, reqs []mcts.Request) ([]mcts.Result, error) {
	if len(reqs) == 1 {
		res, err := engine.Search(ctx, reqs[0])
		if err != nil {
			return nil, err
		}
		return []mcts.Result{res}, nil
	}
	return engine.RunBatch(ctx, reqs)
}

func runTrials(ctx context.Context, engine *mcts.Engine, reqs []mcts.Request, trials int) ([]*mcts.TrialSummary, error) {
	summaries := make([]*mcts.TrialSummary, 0, len(reqs))
	for _, req := range reqs {
		summary, err := engine.RunTrials(ctx, req, trials)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", req.Round, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
