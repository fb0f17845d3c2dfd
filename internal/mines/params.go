package mines

import (
	"fmt"
	"math"
	"strings"
)

// MaxCells bounds width*height so a board's storage stays allocatable.
const MaxCells = 1 << 24

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

// String encodes params as "width:height:mines", the format read back by
// [ParseParams].
func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseParams(s string) (*GameParams, error) {
	p := &GameParams{}
	ss := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params (s = "%s", n = %d, err = %w)`, s, n, err,
		)
	}
	return p, nil
}

func (p GameParams) Validate() error {
	w, h, mc := p.Unpack()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidConfiguration, w, h)
	}
	if w > math.MaxInt/h || w*h > MaxCells {
		return fmt.Errorf("%w: %dx%d grid exceeds %d cells",
			ErrInvalidConfiguration, w, h, MaxCells)
	}
	if mc < 0 || mc > w*h {
		return fmt.Errorf("%w: mine count %d does not fit a %dx%d grid",
			ErrInvalidConfiguration, mc, w, h)
	}
	return nil
}

func (p GameParams) ValidatePosition(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
