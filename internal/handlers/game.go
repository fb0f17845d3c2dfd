package handlers

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/session"
)

// MaxCells caps width*height for boards requested over the network.
const MaxCells = 200 * 200

type GameHandler struct {
	logger   *logrus.Logger
	ws       *config.WebSocket
	defaults mines.GameParams

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGameHandler(
	logger *logrus.Logger,
	ws *config.WebSocket,
	defaults mines.GameParams,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		ws:       ws,
		defaults: defaults,
		rnd:      rnd,
	}
}

func (g *GameHandler) newBoard(dto NewGameDTO) (*mines.Board, error) {
	params := dto.Params()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Width*params.Height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d grid exceeds %d cells",
			mines.ErrInvalidConfiguration, params.Width, params.Height, MaxCells)
	}
	if dto.Seed != nil {
		return mines.NewBoard(params, rand.New(rand.NewPCG(*dto.Seed, *dto.Seed)))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return mines.NewBoard(params, g.rnd)
}

// Play upgrades the request to a websocket and runs one game on it until
// the game ends or the client goes away.
func (g *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query(), g.defaults)
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	board, err := g.newBoard(dto)
	if errors.Is(err, mines.ErrInvalidConfiguration) {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to generate a new board")
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.WithError(err).Warn("upgrade failed")
		return
	}

	logger := g.logger.WithFields(logrus.Fields{
		"session_id": uuid.NewString(),
		"params":     board.Params().String(),
		"remoteAddr": r.RemoteAddr,
	})
	logger.Info("game started")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn := &wsConn{c: c, idleTimeout: g.ws.IdleTimeout}
	go func() {
		<-ctx.Done()
		c.Close()
	}()

	s := session.New(logger, board, conn, conn)
	state, err := s.Run(ctx)

	logger = logger.WithFields(logrus.Fields{
		"state": state.String(),
		"turns": s.Turns(),
	})
	if err != nil && !isClientGone(err) {
		logger.WithError(err).Warn("game aborted")
	} else {
		logger.Info("game finished")
	}

	if state.Over() {
		if err := conn.Close(state); err != nil {
			logger.WithError(err).Debug("unable to close websocket cleanly")
		}
	}
}

func isClientGone(err error) bool {
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
	) || errors.Is(err, context.Canceled)
}
