package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	LossMessage         = "Game over! You stepped on a mine."
	WinMessage          = "Congratulations! You won."
	InvalidInputMessage = "Invalid input. Enter valid numbers within range."
)

// ErrParseFailure is wrapped by input sources when the player typed
// something that is not a coordinate.
var ErrParseFailure = errors.New("unable to parse coordinates")

type State int

const (
	Playing State = iota
	Lost
	Won
)

func (s State) String() string {
	switch s {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

func (s State) Over() bool {
	return s != Playing
}

type Renderer interface {
	// Render draws the board. With revealAll set every cell value is shown
	// regardless of whether the player opened it.
	Render(b *mines.Board, revealAll bool) error
	Notify(msg string) error
}

type InputSource interface {
	ReadCoordinates(ctx context.Context) (x, y int, err error)
}

type Session struct {
	logger   logrus.FieldLogger
	board    *mines.Board
	renderer Renderer
	input    InputSource
	state    State
	turns    int
}

func New(
	logger logrus.FieldLogger,
	board *mines.Board,
	renderer Renderer,
	input InputSource,
) *Session {
	return &Session{
		logger:   logger,
		board:    board,
		renderer: renderer,
		input:    input,
	}
}

func (s *Session) State() State {
	return s.state
}

// Turns is the number of reveals performed on valid coordinates.
func (s *Session) Turns() int {
	return s.turns
}

// Run plays turns until the game is lost or won. Invalid input is reported
// through the renderer and re-prompted. Any other input or rendering error
// stops the loop and is returned with the session still [Playing].
func (s *Session) Run(ctx context.Context) (State, error) {
	for !s.state.Over() {
		if err := s.renderer.Render(s.board, false); err != nil {
			return s.state, fmt.Errorf("unable to render board: %w", err)
		}
		if err := s.Step(ctx); err != nil {
			return s.state, err
		}
	}
	return s.state, nil
}

// Step reads one coordinate pair and applies it.
func (s *Session) Step(ctx context.Context) error {
	if s.state.Over() {
		return nil
	}

	x, y, err := s.input.ReadCoordinates(ctx)
	if errors.Is(err, ErrParseFailure) {
		s.logger.WithError(err).Debug("rejected input")
		return s.renderer.Notify(InvalidInputMessage)
	}
	if err != nil {
		return fmt.Errorf("unable to read coordinates: %w", err)
	}

	res, err := s.board.Reveal(x, y)
	if errors.Is(err, mines.ErrOutOfRange) {
		s.logger.WithError(err).Debug("rejected input")
		return s.renderer.Notify(InvalidInputMessage)
	}
	if err != nil {
		return err
	}
	s.turns++

	logger := s.logger.WithFields(logrus.Fields{
		"x":        x,
		"y":        y,
		"result":   res,
		"revealed": s.board.RevealedCount(),
		"turn":     s.turns,
	})

	switch {
	case res == mines.HitMine:
		logger.Info("game lost")
		return s.finish(Lost, LossMessage)
	case s.board.Victory():
		logger.Info("game won")
		return s.finish(Won, WinMessage)
	default:
		logger.Debug("cell revealed")
		return nil
	}
}

func (s *Session) finish(state State, msg string) error {
	s.state = state
	if err := s.renderer.Render(s.board, true); err != nil {
		return fmt.Errorf("unable to render board: %w", err)
	}
	return s.renderer.Notify(msg)
}
