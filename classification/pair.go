package classification

import "github.com/lox/flopbluff/poker"

// PairClassifier decides whether a validated five-card hand has nothing
// better than high card. Any error it returns is passed through unchanged.
type PairClassifier interface {
	IsNoPair(hand FiveCardHand) (bool, error)
}

// PairClassifierFunc adapts a function to PairClassifier.
type PairClassifierFunc func(hand FiveCardHand) (bool, error)

// IsNoPair calls f.
func (f PairClassifierFunc) IsNoPair(hand FiveCardHand) (bool, error) {
	return f(hand)
}

// EvaluatorClassifier categorizes the hand with poker.CategorizeFive. Straights
// and flushes rank above a pair, so they are not "no pair" either.
type EvaluatorClassifier struct{}

// IsNoPair reports whether the hand ranks as high card.
func (EvaluatorClassifier) IsNoPair(hand FiveCardHand) (bool, error) {
	category, err := poker.CategorizeFive(hand)
	if err != nil {
		return false, err
	}
	return category == poker.HighCard, nil
}
