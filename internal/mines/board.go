package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/gammazero/deque"
)

type Result int

const (
	Safe Result = iota
	HitMine
)

func (r Result) String() string {
	if r == HitMine {
		return "hit mine"
	}
	return "safe"
}

type Board struct {
	params        GameParams
	mines         []bool /* real mine points */
	values        Values /* adjacent mine counts, Mine on mine points */
	revealed      []bool /* opened by the player */
	revealedCount int
}

// NewBoard places p.MineCount mines uniformly at random and computes the
// adjacency value of every cell. The same seeded r yields the same board.
func NewBoard(p GameParams, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	width, height, mineCount := p.Unpack()

	grid := make([]bool, width*height)

	/*
	 * Write down the list of possible mine locations, then pick n off the
	 * list at random, swapping each pick out of the live range.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return newBoard(p, grid), nil
}

// NewBoardFromMines builds a board with mines at the given linear indices
// (y*width + x).
func NewBoardFromMines(width, height int, mineIdx []int) (*Board, error) {
	p := GameParams{Width: width, Height: height, MineCount: len(mineIdx)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	grid := make([]bool, width*height)
	for _, i := range mineIdx {
		if i < 0 || i >= len(grid) {
			return nil, fmt.Errorf("%w: mine index %d outside a %dx%d grid",
				ErrInvalidConfiguration, i, width, height)
		}
		if grid[i] {
			return nil, fmt.Errorf("%w: duplicate mine index %d",
				ErrInvalidConfiguration, i)
		}
		grid[i] = true
	}
	return newBoard(p, grid), nil
}

func newBoard(p GameParams, grid []bool) *Board {
	b := &Board{
		params:   p,
		mines:    grid,
		values:   make(Values, len(grid)),
		revealed: make([]bool, len(grid)),
	}
	for y := range p.Height {
		for x := range p.Width {
			i := b.index(x, y)
			if grid[i] {
				b.values[i] = Mine
			} else {
				b.values[i] = b.countMinesNearby(x, y)
			}
		}
	}
	return b
}

func (b *Board) index(x, y int) int {
	return y*b.params.Width + x
}

// neighbours yields the in-bounds cells around (x, y), excluding (x, y).
func (b *Board) neighbours(x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if b.params.ValidatePosition(xx, yy) && !yield(xx, yy) {
					return
				}
			}
		}
	}
}

func (b *Board) countMinesNearby(x, y int) Value {
	var v Value
	for xx, yy := range b.neighbours(x, y) {
		if b.mines[b.index(xx, yy)] {
			v++
		}
	}
	return v
}

// Reveal opens (x, y). A mine yields [HitMine] and stays unrevealed. A safe
// cell with no adjacent mines opens its neighbours too, transitively.
func (b *Board) Reveal(x, y int) (Result, error) {
	if !b.params.ValidatePosition(x, y) {
		return Safe, fmt.Errorf("%w: (%d, %d) not in %dx%d",
			ErrOutOfRange, x, y, b.params.Width, b.params.Height)
	}
	if b.mines[b.index(x, y)] {
		return HitMine, nil
	}

	var todo deque.Deque[int]
	todo.PushBack(b.index(x, y))

	for todo.Len() > 0 {
		i := todo.PopFront()

		// Every queued cell goes through the same entry checks as the
		// first one; zero-valued cells never queue a mine.
		if b.mines[i] || b.revealed[i] {
			continue
		}
		b.revealed[i] = true
		b.revealedCount++

		if b.values[i] != 0 {
			continue
		}
		for xx, yy := range b.neighbours(i%b.params.Width, i/b.params.Width) {
			if j := b.index(xx, yy); !b.revealed[j] {
				todo.PushBack(j)
			}
		}
	}

	return Safe, nil
}

// Victory reports whether every non-mine cell has been revealed.
func (b *Board) Victory() bool {
	w, h, mc := b.params.Unpack()
	return b.revealedCount == w*h-mc
}

func (b *Board) Params() GameParams {
	return b.params
}

func (b *Board) Width() int {
	return b.params.Width
}

func (b *Board) Height() int {
	return b.params.Height
}

func (b *Board) MineCount() int {
	return b.params.MineCount
}

func (b *Board) ValidatePosition(x, y int) bool {
	return b.params.ValidatePosition(x, y)
}

func (b *Board) Value(x, y int) Value {
	return b.values[b.index(x, y)]
}

func (b *Board) Revealed(x, y int) bool {
	return b.revealed[b.index(x, y)]
}

func (b *Board) IsMine(x, y int) bool {
	return b.mines[b.index(x, y)]
}

func (b *Board) RevealedCount() int {
	return b.revealedCount
}

// Mines returns the linear indices of all mine points in ascending order.
func (b *Board) Mines() []int {
	idx := make([]int, 0, b.params.MineCount)
	for i, m := range b.mines {
		if m {
			idx = append(idx, i)
		}
	}
	return idx
}

func (b *Board) Values() Values {
	return slices.Clone(b.values)
}

func (b *Board) String() string {
	return b.values.ToString(b.params.Width)
}
