package poker

import (
	"math/bits"
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())
	assert.Equal(t, 14, aceSpades.Value())

	twoClubs := NewCard(Two, Clubs)
	assert.Equal(t, "2c", twoClubs.String())
	assert.Equal(t, 2, twoClubs.Value())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(12, 3)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(0, 2)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(11, 1)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(8, 0)},
		{name: "lower case rank", input: "qs", wantCard: NewCard(Queen, Spades)},
		{name: "upper case suit", input: "9H", wantCard: NewCard(Nine, Hearts)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("Qd 3h, Kh")
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Queen, Diamonds), NewCard(Three, Hearts), NewCard(King, Hearts)}, cards)

	dups, err := ParseCards("AsAs")
	require.NoError(t, err)
	assert.Len(t, dups, 2, "duplicates are preserved for the validator to reject")

	_, err = ParseCards("AsK")
	require.Error(t, err)

	_, err = ParseCards("AsKz")
	require.Error(t, err)
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for suit := range uint8(4) {
		for rank := range uint8(13) {
			card := NewCard(rank, suit)
			str := card.String()
			require.False(t, seen[str], "duplicate card %s", str)
			seen[str] = true

			parsed, err := ParseCard(str)
			require.NoError(t, err)
			assert.Equal(t, card, parsed, "round trip %s", str)
		}
	}

	assert.Len(t, seen, 52)
}

func TestCardValid(t *testing.T) {
	t.Parallel()
	assert.True(t, NewCard(Two, Clubs).Valid())
	assert.True(t, NewCard(Ace, Spades).Valid())
	assert.False(t, Card(0).Valid())
	assert.False(t, (NewCard(Two, Clubs) | NewCard(Three, Clubs)).Valid())
	assert.False(t, (Card(1) << 52).Valid())
	assert.Equal(t, "??", Card(0).String())
}

func TestHandOperations(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	kingHearts := NewCard(King, Hearts)
	queenDiamonds := NewCard(Queen, Diamonds)

	hand := NewHand(aceSpades, kingHearts)
	assert.True(t, hand.HasCard(aceSpades))
	assert.True(t, hand.HasCard(kingHearts))
	assert.False(t, hand.HasCard(queenDiamonds))
	assert.Equal(t, 2, hand.CountCards())

	hand.AddCard(queenDiamonds)
	assert.True(t, hand.HasCard(queenDiamonds))
	assert.Equal(t, 3, hand.CountCards())
	assert.Equal(t, "Qd Kh As", hand.String())
}

func TestHandBitset(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	aceHearts := NewCard(Ace, Hearts)
	twoClubs := NewCard(Two, Clubs)

	assert.Equal(t, 1, bits.OnesCount64(uint64(aceSpades)))
	assert.Zero(t, aceSpades&aceHearts)
	assert.Zero(t, aceSpades&twoClubs)
	assert.Zero(t, aceHearts&twoClubs)

	combined := Hand(aceSpades) | Hand(aceHearts) | Hand(twoClubs)
	assert.Equal(t, 3, combined.CountCards())

	// a repeated card collapses into one bit
	assert.Equal(t, 1, NewHand(aceSpades, aceSpades).CountCards())
}

func TestSuitAndRankMasks(t *testing.T) {
	t.Parallel()
	var cards []Card
	for rank := range uint8(13) {
		cards = append(cards, NewCard(rank, Spades))
	}
	hand := NewHand(cards...)

	assert.Equal(t, uint16(0x1FFF), hand.GetSuitMask(Spades))
	assert.Zero(t, hand.GetSuitMask(Hearts))

	mixed := NewHand(MustParseCards("2c2d5h")...)
	assert.Equal(t, uint16(1<<Two|1<<Five), mixed.GetRankMask())
}

func TestDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewPCG(42, 7)))

	flop := deck.DealFlop()
	require.Len(t, flop, 3)
	assert.Equal(t, 3, NewHand(flop...).CountCards(), "flop cards are distinct")

	rest := deck.Deal(49)
	require.Len(t, rest, 49)
	assert.Equal(t, 52, NewHand(append(flop, rest...)...).CountCards())

	assert.Nil(t, deck.Deal(1))
	assert.Zero(t, deck.CardsRemaining())

	deck.Shuffle()
	assert.Equal(t, 52, deck.CardsRemaining())
}

func TestDeckIsReproducible(t *testing.T) {
	t.Parallel()
	a := NewDeck(rand.New(rand.NewPCG(1, 2))).DealFlop()
	b := NewDeck(rand.New(rand.NewPCG(1, 2))).DealFlop()
	assert.Equal(t, a, b)
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
