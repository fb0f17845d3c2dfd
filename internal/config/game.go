package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var DefaultParams = mines.GameParams{Width: 10, Height: 10, MineCount: 10}

type Game struct {
	mines.GameParams
	Params  string
	Seed    uint64
	Seeded  bool
	LogFile string
	Color   bool
}

func lookupInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	*dst = v
	return nil
}

// NewGame reads game settings from the environment on top of
// [DefaultParams].
func NewGame() (*Game, error) {
	g := &Game{GameParams: DefaultParams}

	if err := lookupInt("MINES_WIDTH", &g.Width); err != nil {
		return nil, err
	}
	if err := lookupInt("MINES_HEIGHT", &g.Height); err != nil {
		return nil, err
	}
	if err := lookupInt("MINES_COUNT", &g.MineCount); err != nil {
		return nil, err
	}

	g.Params = os.Getenv("MINES_PARAMS")
	g.LogFile = os.Getenv("MINES_LOG_FILE")

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to convert MINES_SEED to uint: %w", err)
		}
		g.Seed, g.Seeded = seed, true
	}

	if colorStr, ok := os.LookupEnv("MINES_COLOR"); ok {
		g.Color = colorStr != "0"
	} else {
		g.Color = true
	}

	return g, nil
}

// FlagSet binds the flags every binary understands. Pass the result to
// [Game.Parse] rather than parsing the set directly.
func (g *Game) FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.IntVar(&g.Width, "width", g.Width, "number of columns")
	fs.IntVar(&g.Height, "height", g.Height, "number of rows")
	fs.IntVarP(&g.MineCount, "mines", "m", g.MineCount, "number of mines")
	fs.StringVarP(&g.Params, "params", "p", g.Params, `board as "width:height:mines", overrides the other size flags`)
	fs.Uint64VarP(&g.Seed, "seed", "s", g.Seed, "seed for a reproducible board")
	fs.StringVar(&g.LogFile, "log-file", g.LogFile, "write logs to this file (rotated)")
	return fs
}

// TerminalFlagSet adds the flags only the terminal renderer reads.
func (g *Game) TerminalFlagSet(name string) *pflag.FlagSet {
	fs := g.FlagSet(name)
	fs.BoolVar(&g.Color, "color", g.Color, "colorize cell values")
	return fs
}

func (g *Game) Parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.Changed("seed") {
		g.Seeded = true
	}
	if g.Params != "" {
		p, err := mines.ParseParams(g.Params)
		if err != nil {
			return err
		}
		g.GameParams = *p
	}
	return nil
}

// Rand returns the seeded source when a seed was given and a randomly
// seeded one otherwise.
func (g Game) Rand() *rand.Rand {
	if g.Seeded {
		return rand.New(rand.NewPCG(g.Seed, g.Seed))
	}
	return NewRand()
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (g Game) Fields() map[string]any {
	return map[string]any{
		"params":   g.GameParams.String(),
		"seeded":   g.Seeded,
		"log_file": g.LogFile,
		"color":    g.Color,
	}
}
