// Package scan runs the bluff candidate search over many flops in parallel.
package scan

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/flopbluff/classification"
	"github.com/lox/flopbluff/poker"
)

// Board is a named flop.
type Board struct {
	Name  string
	Cards []poker.Card
}

// Result holds the candidates found for one board, in catalog order.
type Result struct {
	Board      Board
	Candidates []poker.StartingHand
}

// Report is the outcome of a Run. Results follow the input board order.
type Report struct {
	Results []Result
	Started time.Time
	Elapsed time.Duration
}

// Total counts candidates across all boards.
func (r Report) Total() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Candidates)
	}
	return n
}

// Runner evaluates boards with a bounded number of workers.
type Runner struct {
	analyzer *classification.Analyzer
	workers  int
	clock    quartz.Clock
	logger   *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds how many boards are evaluated at once.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithClock sets the clock used for timing.
func WithClock(c quartz.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the runner's logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a Runner around analyzer.
func NewRunner(analyzer *classification.Analyzer, opts ...Option) *Runner {
	r := &Runner{
		analyzer: analyzer,
		workers:  1,
		clock:    quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = 1
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// Run finds the bluff candidates of every board. The first failing board
// cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context, boards []Board) (Report, error) {
	started := r.clock.Now()
	results := make([]Result, len(boards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, board := range boards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var hands []poker.StartingHand
			for hand, err := range r.analyzer.BluffCandidates(board.Cards) {
				if err != nil {
					return fmt.Errorf("board %s: %w", board.Name, err)
				}
				hands = append(hands, hand)
			}

			results[i] = Result{Board: board, Candidates: hands}
			r.logger.Debug("board scanned", "board", board.Name, "cards", poker.FormatCards(board.Cards), "candidates", len(hands))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		Results: results,
		Started: started,
		Elapsed: r.clock.Since(started),
	}
	r.logger.Info("scan complete", "boards", len(boards), "candidates", report.Total(), "elapsed", report.Elapsed)
	return report, nil
}
