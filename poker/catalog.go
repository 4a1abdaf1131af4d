package poker

import (
	"fmt"
	"iter"
)

// StartingHand is one representative pair of hole cards for a strategic class
// of starting hands such as "AA", "AKs" or "72o".
type StartingHand struct {
	Label string
	Cards [2]Card
}

// Suited reports whether both cards share a suit.
func (h StartingHand) Suited() bool {
	return h.Cards[0].Suit() == h.Cards[1].Suit()
}

// Pair reports whether both cards share a rank.
func (h StartingHand) Pair() bool {
	return h.Cards[0].Rank() == h.Cards[1].Rank()
}

func (h StartingHand) String() string {
	return fmt.Sprintf("%s (%s %s)", h.Label, h.Cards[0], h.Cards[1])
}

// Catalog is an ordered, read-only list of starting hands.
type Catalog struct {
	hands  []StartingHand
	lookup map[string]int
}

// NewCatalog builds a catalog from hands in the given order. Labels must be unique.
func NewCatalog(hands []StartingHand) (*Catalog, error) {
	c := &Catalog{
		hands:  make([]StartingHand, len(hands)),
		lookup: make(map[string]int, len(hands)),
	}
	copy(c.hands, hands)
	for i, h := range c.hands {
		if _, dup := c.lookup[h.Label]; dup {
			return nil, fmt.Errorf("duplicate starting hand label %q", h.Label)
		}
		c.lookup[h.Label] = i
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.hands)
}

// All iterates the catalog in definition order.
func (c *Catalog) All() iter.Seq[StartingHand] {
	return func(yield func(StartingHand) bool) {
		for _, h := range c.hands {
			if !yield(h) {
				return
			}
		}
	}
}

// Lookup finds a starting hand by label, e.g. "AKs".
func (c *Catalog) Lookup(label string) (StartingHand, bool) {
	i, ok := c.lookup[label]
	if !ok {
		return StartingHand{}, false
	}
	return c.hands[i], true
}

var canonical = buildCanonical()

// CanonicalHoleCards returns the 169 distinct Hold'em starting hands, ordered
// from AA down to 32o: for each high rank the pair first, then suited and
// offsuit hands by descending kicker.
//
// Representatives use spades for the high card; suited hands add a spade,
// pairs and offsuit hands add a heart.
func CanonicalHoleCards() *Catalog {
	return canonical
}

func buildCanonical() *Catalog {
	hands := make([]StartingHand, 0, 169)
	for high := int(Ace); high >= int(Two); high-- {
		for low := high; low >= int(Two); low-- {
			hi, lo := uint8(high), uint8(low)
			if hi == lo {
				hands = append(hands, StartingHand{
					Label: string([]byte{rankChars[hi], rankChars[lo]}),
					Cards: [2]Card{NewCard(hi, Spades), NewCard(lo, Hearts)},
				})
				continue
			}
			hands = append(hands,
				StartingHand{
					Label: string([]byte{rankChars[hi], rankChars[lo], 's'}),
					Cards: [2]Card{NewCard(hi, Spades), NewCard(lo, Spades)},
				},
				StartingHand{
					Label: string([]byte{rankChars[hi], rankChars[lo], 'o'}),
					Cards: [2]Card{NewCard(hi, Spades), NewCard(lo, Hearts)},
				},
			)
		}
	}

	c, err := NewCatalog(hands)
	if err != nil {
		panic(err)
	}
	return c
}

// HandLabel returns the canonical label for two hole cards, high rank first.
func HandLabel(a, b Card) string {
	hi, lo := a.Rank(), b.Rank()
	if hi < lo {
		hi, lo = lo, hi
	}
	switch {
	case hi == lo:
		return string([]byte{rankChars[hi], rankChars[lo]})
	case a.Suit() == b.Suit():
		return string([]byte{rankChars[hi], rankChars[lo], 's'})
	default:
		return string([]byte{rankChars[hi], rankChars[lo], 'o'})
	}
}
