package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/session"
)

// wsConn plays one session over a websocket: frames out, "x y" text in.
// A message may carry several moves, one per line.
type wsConn struct {
	c           *websocket.Conn
	idleTimeout time.Duration
	pending     []string
}

func (w *wsConn) Render(b *mines.Board, revealAll bool) error {
	return w.c.WriteJSON(NewBoardFrame(b, revealAll))
}

func (w *wsConn) Notify(msg string) error {
	return w.c.WriteJSON(NoticeFrame{Type: FrameNotice, Message: msg})
}

func (w *wsConn) ReadCoordinates(ctx context.Context) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if len(w.pending) == 0 {
		if w.idleTimeout > 0 {
			w.c.SetReadDeadline(time.Now().Add(w.idleTimeout))
		}
		mt, message, err := w.c.ReadMessage()
		if err != nil {
			return 0, 0, err
		}
		if mt != websocket.TextMessage {
			return 0, 0, fmt.Errorf("%w: expected a text message", session.ErrParseFailure)
		}
		w.pending = moves(string(message))
		if len(w.pending) == 0 {
			return 0, 0, fmt.Errorf("%w: empty message", session.ErrParseFailure)
		}
	}
	move := w.pending[0]
	w.pending = w.pending[1:]
	return session.ParseCoordinates(move)
}

func (w *wsConn) Close(state session.State) error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, state.String())
	err := w.c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	if cerr := w.c.Close(); err == nil {
		err = cerr
	}
	return err
}
