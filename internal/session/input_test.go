package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func TestParseCoordinates(t *testing.T) {
	testCases := []struct {
		input string
		x, y  int
		ok    bool
	}{
		{"3 4", 3, 4, true},
		{"  0   9 ", 0, 9, true},
		{"2,7", 2, 7, true},
		{"-1 5", -1, 5, true},
		{"", 0, 0, false},
		{"3", 0, 0, false},
		{"1 2 3", 0, 0, false},
		{"a 2", 0, 0, false},
		{"2 b", 0, 0, false},
		{"1.5 2", 0, 0, false},
	}
	for _, test := range testCases {
		x, y, err := ParseCoordinates(test.input)
		if !test.ok {
			assert.ErrorIs(t, err, ErrParseFailure, "input %q", test.input)
			continue
		}
		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.x, x)
		assert.Equal(t, test.y, y)
	}
}

func TestCellText(t *testing.T) {
	b, err := mines.NewBoardFromMines(2, 1, []int{1})
	require.NoError(t, err)

	assert.Equal(t, HiddenCell, CellText(b, 0, 0, false))
	assert.Equal(t, "*", CellText(b, 1, 0, true))

	_, err = b.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", CellText(b, 0, 0, false))
	assert.Equal(t, HiddenCell, CellText(b, 1, 0, false))
}
