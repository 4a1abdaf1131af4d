package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/flopbluff/classification"
	"github.com/lox/flopbluff/internal/randutil"
	"github.com/lox/flopbluff/internal/scan"
	"github.com/lox/flopbluff/poker"
)

// CheckCmd tests one hand on a flop.
type CheckCmd struct {
	Hole        string                     `arg:"" help:"Hole cards (e.g. 2d3d) or a starting hand label (e.g. 32s)"`
	Board       string                     `arg:"" help:"Flop cards (e.g. 7dAsKh)"`
	Requirement classification.Requirement `short:"r" default:"both" help:"Hole cards that must take part in the draws: none, at-least-one, both"`
}

func (c *CheckCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}
	analyzer := classification.NewAnalyzer(classification.WithLogger(logger))

	hole, board, err := parseSpot(c.Hole, c.Board, analyzer.Catalog())
	if err != nil {
		return err
	}

	straight, err := classification.HasThreeToStraight(hole, board, c.Requirement)
	if err != nil {
		return err
	}
	flush, err := classification.HasThreeToFlush(hole, board, c.Requirement)
	if err != nil {
		return err
	}
	bluff, err := analyzer.IsBluffCandidate(hole, board)
	if err != nil {
		return err
	}

	logger.Debug("checked hand", "hole", hole, "board", poker.FormatCards(board), "requirement", c.Requirement)
	renderCheck(os.Stdout, checkResult{
		Hole:        hole,
		Board:       board,
		Requirement: c.Requirement,
		Straight:    straight,
		Flush:       flush,
		Bluff:       bluff,
	})
	return nil
}

// ProfileCmd shows every property at every requirement level.
type ProfileCmd struct {
	Hole  string `arg:"" help:"Hole cards (e.g. 2d3d) or a starting hand label (e.g. 32s)"`
	Board string `arg:"" help:"Flop cards (e.g. 7dAsKh)"`
}

func (c *ProfileCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}
	analyzer := classification.NewAnalyzer(classification.WithLogger(logger))

	hole, board, err := parseSpot(c.Hole, c.Board, analyzer.Catalog())
	if err != nil {
		return err
	}
	profile, err := analyzer.Profile(hole, board)
	if err != nil {
		return err
	}
	renderProfile(os.Stdout, profile)
	return nil
}

// CandidatesCmd lists the bluff candidates on one flop.
type CandidatesCmd struct {
	Board string `arg:"" help:"Flop cards (e.g. 7dAsKh)"`
	Limit int    `short:"n" help:"Stop after this many candidates (0 = all)"`
}

func (c *CandidatesCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("parsing board: %w", err)
	}

	analyzer := classification.NewAnalyzer(classification.WithLogger(logger))
	hands, err := takeCandidates(analyzer, board, c.Limit)
	if err != nil {
		return err
	}
	renderCandidates(os.Stdout, board, hands)
	return nil
}

// RandomCmd deals random flops and lists their candidates.
type RandomCmd struct {
	Seed  *int64 `help:"Random seed for reproducible flops"`
	Count int    `short:"n" default:"1" help:"Number of flops to deal"`
	Limit int    `help:"Stop after this many candidates per flop (0 = all)"`
}

func (c *RandomCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	seed := randutil.Resolve(c.Seed, quartz.NewReal())
	logger.Info("dealing random flops", "seed", seed, "count", c.Count)

	deck := poker.NewDeck(randutil.New(seed))
	analyzer := classification.NewAnalyzer(classification.WithLogger(logger))
	for range c.Count {
		deck.Shuffle()
		board := deck.DealFlop()
		hands, err := takeCandidates(analyzer, board, c.Limit)
		if err != nil {
			return err
		}
		renderCandidates(os.Stdout, board, hands)
	}
	return nil
}

// ScanCmd scans every flop in the config file, plus any given as flags.
type ScanCmd struct {
	Workers int      `short:"w" help:"Boards evaluated in parallel (overrides config)"`
	Board   []string `short:"b" help:"Additional flop to scan; may be repeated"`
}

func (c *ScanCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	var boards []scan.Board
	for _, b := range cfg.Boards {
		cards, err := poker.ParseCards(b.Cards)
		if err != nil {
			return fmt.Errorf("board %q: %w", b.Name, err)
		}
		boards = append(boards, scan.Board{Name: b.Name, Cards: cards})
	}
	for i, b := range c.Board {
		cards, err := poker.ParseCards(b)
		if err != nil {
			return fmt.Errorf("board flag %d: %w", i+1, err)
		}
		boards = append(boards, scan.Board{Name: fmt.Sprintf("flag-%d", i+1), Cards: cards})
	}
	if len(boards) == 0 {
		return fmt.Errorf("no boards to scan in %s", g.Config)
	}

	workers := cfg.Settings.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := scan.NewRunner(
		classification.NewAnalyzer(classification.WithLogger(logger)),
		scan.WithWorkers(workers),
		scan.WithLogger(logger),
	)
	report, err := runner.Run(ctx, boards)
	if err != nil {
		return err
	}
	renderScan(os.Stdout, report)
	return nil
}

// parseSpot reads hole cards, accepting a catalog label in place of cards,
// and the board.
func parseSpot(holeArg, boardArg string, catalog *poker.Catalog) (classification.HoleCards, []poker.Card, error) {
	var hole classification.HoleCards
	if entry, ok := catalog.Lookup(holeArg); ok {
		hole = classification.HoleCards(entry.Cards)
	} else {
		h, err := classification.NewHoleCards(holeArg)
		if err != nil {
			return hole, nil, fmt.Errorf("parsing hole cards: %w", err)
		}
		hole = h
	}

	board, err := poker.ParseCards(boardArg)
	if err != nil {
		return hole, nil, fmt.Errorf("parsing board: %w", err)
	}
	return hole, board, nil
}

// takeCandidates pulls at most limit candidates (0 = all) from the lazy sequence.
func takeCandidates(analyzer *classification.Analyzer, board []poker.Card, limit int) ([]poker.StartingHand, error) {
	var hands []poker.StartingHand
	for hand, err := range analyzer.BluffCandidates(board) {
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
		if limit > 0 && len(hands) == limit {
			break
		}
	}
	return hands, nil
}
