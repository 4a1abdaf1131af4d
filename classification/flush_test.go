package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasThreeToFlush(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		hole  string
		board string
		want  [3]bool // none, at least one, both
	}{
		{name: "suited hole cards plus one", hole: "2d3d", board: "7dQhKh", want: [3]bool{true, true, true}},
		{name: "one hole card in suit", hole: "2h3d", board: "7hAhKd", want: [3]bool{true, true, false}},
		{name: "monotone board", hole: "2c3c", board: "7h8h9h", want: [3]bool{true, false, false}},
		{name: "four flush does not count", hole: "2d3d", board: "7d9dKh", want: [3]bool{false, false, false}},
		{name: "made flush does not count", hole: "2d3d", board: "7d9dKd", want: [3]bool{false, false, false}},
		{name: "rainbow", hole: "2d3c", board: "7h9sKd", want: [3]bool{false, false, false}},
		{name: "two suits of two", hole: "2d3c", board: "7d9cKh", want: [3]bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, req := range Requirements {
				got, err := HasThreeToFlush(hole(t, tt.hole), board(t, tt.board), req)
				require.NoError(t, err)
				assert.Equal(t, tt.want[req], got, "requirement %s", req)
			}
		})
	}
}

func TestHasThreeToFlushValidates(t *testing.T) {
	t.Parallel()
	_, err := HasThreeToFlush(hole(t, "2d3d"), board(t, "7dQhKhAs"), RequireNone)
	require.ErrorIs(t, err, ErrWrongCardCount)

	_, err = HasThreeToFlush(hole(t, "2d3d"), board(t, "3dQhKh"), RequireNone)
	require.ErrorIs(t, err, ErrConflictingCards)
}
