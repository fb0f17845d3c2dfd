package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/vancomm/minesweeper-cli/internal/config"
)

func Cors(server *config.Server) Middleware {
	options := cors.Options{
		AllowOriginFunc: server.AllowOrigin,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
