package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper-cli/internal/app"
	"github.com/vancomm/minesweeper-cli/internal/config"
)

func main() {
	srv := config.NewServer()

	game, err := config.NewGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read game config:", err)
		os.Exit(2)
	}
	if err := game.Parse(game.FlagSet("server"), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		os.Exit(2)
	}

	logger, err := config.NewLogger(config.Logging{
		Out:         os.Stderr,
		File:        game.LogFile,
		Development: config.Development(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up logging:", err)
		os.Exit(1)
	}

	if err := game.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid default game params")
	}
	logger.WithFields(game.Fields()).Debug("default game config")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	a := app.New(logger, srv, game.GameParams, game.Rand())
	if err := a.Start(ctx); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
	logger.Info("server stopped")
}
