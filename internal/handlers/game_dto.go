package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/session"
)

type NewGameDTO struct {
	Width     int     `schema:"width"`
	Height    int     `schema:"height"`
	MineCount int     `schema:"mine_count"`
	Seed      *uint64 `schema:"seed"`
}

// ParseNewGameDTO decodes query parameters over defaults; absent keys keep
// their default value.
func ParseNewGameDTO(src map[string][]string, defaults mines.GameParams) (NewGameDTO, error) {
	dto := NewGameDTO{
		Width:     defaults.Width,
		Height:    defaults.Height,
		MineCount: defaults.MineCount,
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto NewGameDTO) Params() mines.GameParams {
	return mines.GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}
}

const (
	FrameBoard  = "board"
	FrameNotice = "notice"
)

type BoardFrame struct {
	Type      string   `json:"type"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	MineCount int      `json:"mine_count"`
	Cells     []string `json:"cells"`
	RevealAll bool     `json:"reveal_all"`
}

func NewBoardFrame(b *mines.Board, revealAll bool) *BoardFrame {
	cells := make([]string, 0, b.Width()*b.Height())
	for y := range b.Height() {
		for x := range b.Width() {
			cells = append(cells, session.CellText(b, x, y, revealAll))
		}
	}
	return &BoardFrame{
		Type:      FrameBoard,
		Width:     b.Width(),
		Height:    b.Height(),
		MineCount: b.MineCount(),
		Cells:     cells,
		RevealAll: revealAll,
	}
}

type NoticeFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
