package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// HiddenCell is shown in place of cells the player has not opened.
const HiddenCell = "."

// CellText is the textual form of (x, y) as every renderer shows it.
func CellText(b *mines.Board, x, y int, revealAll bool) string {
	if revealAll || b.Revealed(x, y) {
		return b.Value(x, y).String()
	}
	return HiddenCell
}

func ParseInt(s string, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an int, got %q", ErrParseFailure, name, s)
	}
	return v, nil
}

// ParseCoordinates reads "x y" (a comma may stand in for the space).
func ParseCoordinates(s string) (x int, y int, err error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two numbers, got %q", ErrParseFailure, s)
	}
	if x, err = ParseInt(parts[0], "x"); err != nil {
		return
	}
	if y, err = ParseInt(parts[1], "y"); err != nil {
		return
	}
	return
}
