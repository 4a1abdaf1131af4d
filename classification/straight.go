package classification

import (
	"slices"

	"github.com/lox/flopbluff/poker"
)

// window is three face values taken from a sorted five-card hand.
type window [3]int

// wheelWindow is A-2-3 with the ace playing low. It is the only
// non-consecutive window that counts as three to a straight.
var wheelWindow = window{2, 3, 14}

// straightWindows returns the three contiguous windows of the sorted values,
// followed by the wheel window when the lowest two values and the highest
// value are exactly 2, 3 and ace.
func straightWindows(values [5]int) []window {
	windows := make([]window, 0, 4)
	for i := 0; i+3 <= len(values); i++ {
		windows = append(windows, window{values[i], values[i+1], values[i+2]})
	}
	if low := (window{values[0], values[1], values[4]}); low == wheelWindow {
		windows = append(windows, low)
	}
	return windows
}

func (w window) connected() bool {
	return (w[0]+1 == w[1] && w[1]+1 == w[2]) || w == wheelWindow
}

func (w window) contains(value int) bool {
	return slices.Contains(w[:], value)
}

// HasThreeToStraight reports whether three of the five cards are consecutive
// in rank, with req hole cards among them. An ace also plays low in A-2-3.
func HasThreeToStraight(hole HoleCards, board []poker.Card, req Requirement) (bool, error) {
	five, err := Assemble(hole, board)
	if err != nil {
		return false, err
	}
	return hasThreeToStraight(five, req), nil
}

func hasThreeToStraight(five FiveCardHand, req Requirement) bool {
	first, second := five[0].Value(), five[1].Value()
	for _, w := range straightWindows(five.SortedValues()) {
		if w.connected() && req.satisfied(w.contains(first), w.contains(second)) {
			return true
		}
	}
	return false
}
