package app

import (
	"github.com/vancomm/minesweeper-cli/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.ws, a.defaults, a.rnd)

	a.router.HandleFunc("GET /play", game.Play)
	a.router.HandleFunc("GET /healthz", handlers.Health)
}
