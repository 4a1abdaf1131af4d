package main

import (
	ph "github.com/paulhankin/poker"

	"github.com/lox/flopbluff/poker"
)

// describe names the made hand using paulhankin/poker. Both packages order
// suits clubs, diamonds, hearts, spades; paulhankin numbers the ace as rank 1.
func describe(cards []poker.Card) string {
	converted := make([]ph.Card, len(cards))
	for i, c := range cards {
		pc, err := ph.MakeCard(ph.Suit(c.Suit()), phRank(c.Rank()))
		if err != nil {
			return "?"
		}
		converted[i] = pc
	}
	desc, err := ph.Describe(converted)
	if err != nil {
		return "?"
	}
	return desc
}

func phRank(rank uint8) ph.Rank {
	if rank == poker.Ace {
		return 1
	}
	return ph.Rank(rank + 2)
}
