package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
	// IdleTimeout bounds how long a game waits for the next move.
	IdleTimeout time.Duration
}

func NewWebSocket(server *Server) (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || server.AllowOrigin(origin)
		},
	}

	ws := &WebSocket{
		Upgrader:    upgrader,
		IdleTimeout: 10 * time.Minute,
	}

	return ws, nil
}
