package classification

import (
	"errors"
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/lox/flopbluff/poker"
)

// Analyzer evaluates bluff candidates with a pluggable pair classifier and
// starting-hand catalog. The zero value is not usable; use NewAnalyzer.
type Analyzer struct {
	pairs   PairClassifier
	catalog *poker.Catalog
	logger  *log.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithPairClassifier replaces the default evaluator-backed classifier.
func WithPairClassifier(c PairClassifier) Option {
	return func(a *Analyzer) { a.pairs = c }
}

// WithCatalog replaces the 169-hand canonical catalog.
func WithCatalog(c *poker.Catalog) Option {
	return func(a *Analyzer) { a.catalog = c }
}

// WithLogger sets the logger used for debug output during enumeration.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer returns an Analyzer using poker.CanonicalHoleCards and
// EvaluatorClassifier unless overridden.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		pairs:   EvaluatorClassifier{},
		catalog: poker.CanonicalHoleCards(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	return a
}

// Catalog returns the catalog the analyzer enumerates.
func (a *Analyzer) Catalog() *poker.Catalog {
	return a.catalog
}

// IsBluffCandidate reports whether the hole cards make no pair or better on
// the board while holding three to a flush and three to a straight, both
// using both hole cards.
//
// A card shared with the board is an error here; BluffCandidates is the
// caller that tolerates it.
func (a *Analyzer) IsBluffCandidate(hole HoleCards, board []poker.Card) (bool, error) {
	five, err := Assemble(hole, board)
	if err != nil {
		return false, err
	}

	noPair, err := a.pairs.IsNoPair(five)
	if err != nil || !noPair {
		return false, err
	}
	return hasThreeToFlush(five, RequireBoth) && hasThreeToStraight(five, RequireBoth), nil
}

// BluffCandidates lazily yields the catalog entries that are bluff candidates
// on board, in catalog order. Entries sharing a card with the board are
// skipped. Any other error is yielded once and ends the sequence. The
// sequence may be ranged over again to restart it.
//
// Results depend on the catalog's representative suits. With the default
// catalog every suited hand is two spades, so a both-card flush draw, and
// with it any candidate, needs exactly one spade on the flop.
func (a *Analyzer) BluffCandidates(board []poker.Card) iter.Seq2[poker.StartingHand, error] {
	return func(yield func(poker.StartingHand, error) bool) {
		for entry := range a.catalog.All() {
			ok, err := a.IsBluffCandidate(HoleCards(entry.Cards), board)
			switch {
			case errors.Is(err, ErrConflictingCards):
				a.logger.Debug("skipping starting hand", "hand", entry.Label, "reason", err)
				continue
			case err != nil:
				yield(poker.StartingHand{}, err)
				return
			case !ok:
				continue
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// CollectBluffCandidates drains BluffCandidates into a slice.
func (a *Analyzer) CollectBluffCandidates(board []poker.Card) ([]poker.StartingHand, error) {
	var hands []poker.StartingHand
	for hand, err := range a.BluffCandidates(board) {
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

var defaultAnalyzer = NewAnalyzer()

// IsBluffCandidate runs the predicate with the default analyzer.
func IsBluffCandidate(hole HoleCards, board []poker.Card) (bool, error) {
	return defaultAnalyzer.IsBluffCandidate(hole, board)
}

// BluffCandidates enumerates the canonical catalog with the default analyzer.
func BluffCandidates(board []poker.Card) iter.Seq2[poker.StartingHand, error] {
	return defaultAnalyzer.BluffCandidates(board)
}
