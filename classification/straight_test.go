package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasThreeToStraight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		hole  string
		board string
		want  [3]bool // none, at least one, both
	}{
		{name: "run through both hole cards", hole: "4d5c", board: "Qd3hKh", want: [3]bool{true, true, true}},
		{name: "run on the board only", hole: "2h3c", board: "8h7h6h", want: [3]bool{true, false, false}},
		{name: "one hole card in the run", hole: "4dKc", board: "5h6s9d", want: [3]bool{true, true, false}},
		{name: "gapped hole cards filled by board", hole: "6d8c", board: "7hKsAd", want: [3]bool{true, true, true}},
		{name: "broadway", hole: "QcKd", board: "Ah7s2c", want: [3]bool{true, true, true}},
		{name: "wheel with two and ace in hand", hole: "2cAd", board: "3h9sKd", want: [3]bool{true, true, true}},
		{name: "wheel with three and ace in hand", hole: "Ad3c", board: "2h9sKd", want: [3]bool{true, true, true}},
		{name: "wheel with ace on board", hole: "2c3d", board: "Ah9sKd", want: [3]bool{true, true, true}},
		{name: "ace two without three", hole: "2cAd", board: "4h9sKd", want: [3]bool{false, false, false}},
		{name: "king ace two does not wrap", hole: "Kc2d", board: "Ah7s9c", want: [3]bool{false, false, false}},
		{name: "pocket pair counts both by rank", hole: "5c5d", board: "6h7sKd", want: [3]bool{true, true, true}},
		{name: "duplicate rank splits the sorted run", hole: "4c6d", board: "5h5sKd", want: [3]bool{false, false, false}},
		{name: "no connected cards", hole: "2c9d", board: "5hJsKd", want: [3]bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, req := range Requirements {
				got, err := HasThreeToStraight(hole(t, tt.hole), board(t, tt.board), req)
				require.NoError(t, err)
				assert.Equal(t, tt.want[req], got, "requirement %s", req)
			}
		})
	}
}

func TestHasThreeToStraightValidates(t *testing.T) {
	t.Parallel()
	_, err := HasThreeToStraight(hole(t, "4d5c"), board(t, "Qd3h"), RequireBoth)
	require.ErrorIs(t, err, ErrWrongCardCount)

	_, err = HasThreeToStraight(hole(t, "4d5c"), board(t, "Qd4dKh"), RequireBoth)
	require.ErrorIs(t, err, ErrConflictingCards)
}

func TestStraightWindows(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []window{{2, 3, 9}, {3, 9, 13}, {9, 13, 14}, {2, 3, 14}},
		straightWindows([5]int{2, 3, 9, 13, 14}))
	assert.Equal(t, []window{{3, 4, 5}, {4, 5, 12}, {5, 12, 13}},
		straightWindows([5]int{3, 4, 5, 12, 13}))

	assert.True(t, window{2, 3, 14}.connected())
	assert.True(t, window{7, 8, 9}.connected())
	assert.False(t, window{13, 14, 2}.connected())
	assert.False(t, window{5, 5, 6}.connected())
}

func TestThreeToStraightIgnoresHoleOrder(t *testing.T) {
	t.Parallel()
	boards := []string{"Qd3hKh", "8h7h6h", "7dAsKh", "2c3c4c", "9sTdJh", "5d5h6c"}
	for _, b := range boards {
		for entry := range defaultAnalyzer.Catalog().All() {
			forward := HoleCards(entry.Cards)
			reverse := HoleCards{entry.Cards[1], entry.Cards[0]}
			for _, req := range Requirements {
				a, errA := HasThreeToStraight(forward, board(t, b), req)
				z, errZ := HasThreeToStraight(reverse, board(t, b), req)
				assert.Equal(t, errA == nil, errZ == nil)
				assert.Equal(t, a, z, "%s on %s at %s", entry.Label, b, req)
			}
		}
	}
}
