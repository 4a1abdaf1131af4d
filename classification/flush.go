package classification

import (
	"math/bits"

	"github.com/lox/flopbluff/poker"
)

// HasThreeToFlush reports whether exactly three of the five cards share a
// suit, with req hole cards in that suit. Four or five suited cards are a
// made or four-card flush and do not count.
func HasThreeToFlush(hole HoleCards, board []poker.Card, req Requirement) (bool, error) {
	five, err := Assemble(hole, board)
	if err != nil {
		return false, err
	}
	return hasThreeToFlush(five, req), nil
}

func hasThreeToFlush(five FiveCardHand, req Requirement) bool {
	hand := five.Hand()
	first, second := five[0].Suit(), five[1].Suit()
	for suit := range uint8(4) {
		if bits.OnesCount16(hand.GetSuitMask(suit)) != 3 {
			continue
		}
		if req.satisfied(first == suit, second == suit) {
			return true
		}
	}
	return false
}
