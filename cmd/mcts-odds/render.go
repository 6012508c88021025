package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-mcts/internal/deck"
	"github.com/lox/holdem-mcts/internal/mcts"
)

type styles struct {
	header    lipgloss.Style
	label     lipgloss.Style
	redCard   lipgloss.Style
	blackCard lipgloss.Style
	win       lipgloss.Style
	stay      lipgloss.Style
	fold      lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		label: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		redCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		blackCard: r.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true),
		win: r.NewStyle().
			Foreground(lipgloss.Color("10")),
		stay: r.NewStyle().
			Foreground(lipgloss.Color("11")),
		fold: r.NewStyle().
			Foreground(lipgloss.Color("9")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// printer writes search results as aligned tables
type printer struct {
	w      io.Writer
	styles styles
}

func newPrinter(w io.Writer, noColor bool) *printer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &printer{w: w, styles: newStyles(r)}
}

func (p *printer) cards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
			parts = append(parts, p.styles.redCard.Render(c.String()))
		} else {
			parts = append(parts, p.styles.blackCard.Render(c.String()))
		}
	}
	return strings.Join(parts, " ")
}

func (p *printer) header(hand, board []deck.Card) {
	s := p.styles
	line := fmt.Sprintf("%s  %s", s.header.Render("hand"), p.cards(hand))
	if pct, ok := deck.StartingHandPercentile(hand); ok {
		line += s.muted.Render(fmt.Sprintf("  (%s, %.1f percentile)", deck.StartingHand(hand[0], hand[1]), pct*100))
	}
	fmt.Fprintln(p.w, line)

	if len(board) > 0 {
		fmt.Fprintf(p.w, "%s %s\n", s.header.Render("board"), p.cards(board))
	}
	fmt.Fprintln(p.w)
}

func (p *printer) results(results []mcts.Result) {
	s := p.styles
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		s.header.Render("round"),
		s.header.Render("win"),
		s.header.Render("showdown"),
		s.header.Render("stay"),
		s.header.Render("fold"),
		s.header.Render("iterations"),
		s.header.Render("elapsed"))

	for _, r := range results {
		stay, fold := "-", "-"
		for _, c := range r.Children {
			pct := fmt.Sprintf("%.1f%% (%d)", c.Mean()*100, c.Visits)
			if c.IsStay {
				stay = pct
			} else {
				fold = pct
			}
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%v\n",
			s.label.Render(r.Round.String()),
			s.win.Render(fmt.Sprintf("%.2f%%", r.WinProbability)),
			fmt.Sprintf("%.2f%%", r.ShowdownEquity()),
			s.stay.Render(stay),
			s.fold.Render(fold),
			r.Iterations,
			r.Elapsed.Truncate(time.Millisecond))
	}

	w.Flush()
}

func (p *printer) trials(summaries []*mcts.TrialSummary) {
	s := p.styles
	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		s.header.Render("round"),
		s.header.Render("win"),
		s.header.Render("median"),
		s.header.Render("stddev"),
		s.header.Render("95% ci"),
		s.header.Render("showdown"),
		s.header.Render("iterations"))

	for _, sum := range summaries {
		st := sum.Stats
		lo, hi := st.ConfidenceInterval95()
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%.2f\t%.2f%% - %.2f%%\t%.2f%%\t%d\n",
			s.label.Render(sum.Request.Round.String()),
			s.win.Render(fmt.Sprintf("%.2f%%", st.Mean())),
			st.Median(),
			st.StdDev(),
			lo, hi,
			st.ShowdownEquity(),
			st.Iterations)
	}

	w.Flush()
}

func (p *printer) footer(cfg mcts.Config, trials int, elapsed time.Duration) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.muted.Render(fmt.Sprintf(
		"budget %v, %d trial(s), %d workers, seed %d, %v total",
		cfg.TimeBudget, trials, cfg.Workers, cfg.Seed, elapsed.Truncate(time.Millisecond))))
}
