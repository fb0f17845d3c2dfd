package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/session"
	"github.com/vancomm/minesweeper-cli/internal/terminal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, err := config.NewGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := cfg.Parse(cfg.TerminalFlagSet("minesweeper"), args); errors.Is(err, pflag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// the screen belongs to the game, so logs only go to the file, if any
	logger, err := config.NewLogger(config.Logging{
		Out:         io.Discard,
		File:        cfg.LogFile,
		Development: config.Development(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to open log file:", err)
		return 1
	}
	logger.WithFields(cfg.Fields()).Debug("config")

	board, err := mines.NewBoard(cfg.GameParams, cfg.Rand())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	tty := terminal.IsTerminal(stdout)
	renderer := terminal.NewRenderer(stdout,
		terminal.WithClear(tty),
		terminal.WithColor(cfg.Color && tty),
	)
	input := terminal.NewInput(stdin, stdout)
	defer input.Close()

	s := session.New(logger.WithField("params", cfg.GameParams.String()), board, renderer, input)
	state, err := s.Run(ctx)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("game aborted")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger.WithField("state", state.String()).WithField("turns", s.Turns()).Info("bye")
	return 0
}
