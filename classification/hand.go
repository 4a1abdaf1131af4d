// Package classification decides partial-draw properties of two hole cards on
// a flop: three-to-a-straight, three-to-a-flush, and the bluff candidate
// predicate built from them.
//
// Every entry point assembles its five cards through Assemble first, so a
// wrong card count or a card shared between hole cards and board is reported
// before any property is examined.
package classification

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/flopbluff/poker"
)

var (
	// ErrWrongCardCount means hole cards plus board did not total five cards.
	ErrWrongCardCount = errors.New("wrong card count")

	// ErrConflictingCards means the same card appeared twice across hole cards and board.
	ErrConflictingCards = errors.New("conflicting cards")

	// ErrInvalidCard means a card value did not encode one of the 52 cards.
	ErrInvalidCard = errors.New("invalid card")
)

// HoleCards are the two private cards of the hand under evaluation.
type HoleCards [2]poker.Card

// NewHoleCards parses hole cards such as "2d3d".
func NewHoleCards(s string) (HoleCards, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return HoleCards{}, err
	}
	if len(cards) != 2 {
		return HoleCards{}, fmt.Errorf("hole cards %q: need 2 cards, got %d", s, len(cards))
	}
	return HoleCards{cards[0], cards[1]}, nil
}

func (h HoleCards) String() string {
	return poker.FormatCards(h[:])
}

// FiveCardHand is a validated set of five distinct cards. The first two are
// the hole cards.
type FiveCardHand [5]poker.Card

// Hole returns the hole cards.
func (f FiveCardHand) Hole() HoleCards {
	return HoleCards{f[0], f[1]}
}

// Hand returns the five cards as a bitset.
func (f FiveCardHand) Hand() poker.Hand {
	return poker.NewHand(f[:]...)
}

// SortedValues returns the face values (2-14) in ascending order. Repeated
// ranks are kept.
func (f FiveCardHand) SortedValues() [5]int {
	var values [5]int
	for i, c := range f {
		values[i] = c.Value()
	}
	slices.Sort(values[:])
	return values
}

func (f FiveCardHand) String() string {
	return poker.FormatCards(f[:])
}

// Assemble joins hole cards and board into a five-card hand, rejecting any
// input that is not exactly five distinct, well-formed cards.
func Assemble(hole HoleCards, board []poker.Card) (FiveCardHand, error) {
	if n := len(hole) + len(board); n != 5 {
		return FiveCardHand{}, fmt.Errorf("%w: need 5 cards, got %d (hole %s, board %s)",
			ErrWrongCardCount, n, hole, poker.FormatCards(board))
	}

	var five FiveCardHand
	copy(five[:2], hole[:])
	copy(five[2:], board)

	for _, c := range five {
		if !c.Valid() {
			return FiveCardHand{}, fmt.Errorf("%w: %#x", ErrInvalidCard, uint64(c))
		}
	}
	for i := range five {
		for j := i + 1; j < len(five); j++ {
			if five[i] == five[j] {
				return FiveCardHand{}, fmt.Errorf("%w: %s appears twice in %s",
					ErrConflictingCards, five[i], five)
			}
		}
	}
	return five, nil
}
