package poker

import (
	"fmt"
	"math/bits"
)

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var handTypeNames = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

func (t HandType) String() string {
	if int(t) < len(handTypeNames) {
		return handTypeNames[t]
	}
	return "Unknown"
}

// Categorize returns the category of the best five-card hand within five to
// seven cards. It returns false when the hand holds any other number of cards.
func Categorize(hand Hand) (HandType, bool) {
	if n := hand.CountCards(); n < 5 || n > 7 {
		return HighCard, false
	}

	var suitMasks [4]uint16
	for suit := range uint8(4) {
		suitMasks[suit] = hand.GetSuitMask(suit)
	}
	return categoryFromMasks(suitMasks), true
}

// CategorizeFive returns the category of exactly five distinct cards.
func CategorizeFive(cards [5]Card) (HandType, error) {
	hand := NewHand(cards[:]...)
	if hand.CountCards() != 5 {
		return HighCard, fmt.Errorf("categorize %s: need five distinct cards", FormatCards(cards[:]))
	}
	t, _ := Categorize(hand)
	return t, nil
}

func categoryFromMasks(suitMasks [4]uint16) HandType {
	flush := false
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) < 5 {
			continue
		}
		if straightHighMask(suitMask) > 0 {
			return StraightFlush
		}
		flush = true
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	rankMask := s0 | s1 | s2 | s3

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	switch {
	case quadsMask != 0:
		return FourOfAKind
	case tripsMask != 0 && (pairsMask != 0 || bits.OnesCount16(tripsMask) > 1):
		return FullHouse
	case flush:
		return Flush
	case straightHighMask(rankMask) > 0:
		return Straight
	case tripsMask != 0:
		return ThreeOfAKind
	case bits.OnesCount16(pairsMask) > 1:
		return TwoPair
	case pairsMask != 0:
		return Pair
	default:
		return HighCard
	}
}

// straightHighMask returns the high-card rank of the best straight present in the mask (0 if none).
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= 0x1FFF

	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return uint8(bits.Len16(seq)-1) + 4
	}
	if mask&wheelMask == wheelMask {
		return Five
	}
	return 0
}
