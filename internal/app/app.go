package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/middleware"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

type App struct {
	logger   *logrus.Logger
	router   *http.ServeMux
	server   *config.Server
	ws       *config.WebSocket
	defaults mines.GameParams
	rnd      *rand.Rand
}

// New builds an app whose unseeded games draw their mines from rnd.
func New(
	logger *logrus.Logger,
	server *config.Server,
	defaults mines.GameParams,
	rnd *rand.Rand,
) *App {
	return &App{
		logger:   logger,
		router:   http.NewServeMux(),
		server:   server,
		defaults: defaults,
		rnd:      rnd,
	}
}

func (a *App) Handler() (http.Handler, error) {
	ws, err := config.NewWebSocket(a.server)
	if err != nil {
		return nil, err
	}
	a.ws = ws

	a.loadRoutes()

	return middleware.Wrap(
		a.router,
		middleware.Recover(a.logger),
		middleware.Cors(a.server),
		middleware.Logging(a.logger),
	), nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    a.server.Addr,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.WithField("addr", a.server.Addr).Info("server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
