//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"tiledwater/internal/app"
	"tiledwater/internal/core"
	"tiledwater/internal/logging"
	_ "tiledwater/internal/sims/water"
)

func main() {
	cfg := app.NewConfig()
	fs := pflag.NewFlagSet("tws", pflag.ExitOnError)
	cfg.Bind(fs)
	_ = fs.Parse(os.Args[1:])
	if err := cfg.Load(fs); err != nil {
		fmt.Fprintln(os.Stderr, "tws:", err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger(cfg.LogOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "tws:", err)
		os.Exit(2)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Error(nil, "Unknown sim", "sim", cfg.Sim, "available", core.Names())
		os.Exit(1)
	}
	sim := factory(cfg.SimOptions())
	grid, ok := sim.(app.Grid)
	if !ok {
		logger.Error(nil, "Sim does not expose an editable grid", "sim", cfg.Sim)
		os.Exit(1)
	}
	grid.Reset(cfg.Seed)

	game := app.New(grid, cfg, logger)
	width, height := game.Layout(0, 0)

	ebiten.SetWindowTitle("tws: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(width, height)

	logger.Info("Starting", "sim", sim.Name(), "width", cfg.Width, "height", cfg.Height,
		"tile", cfg.Tile, "simTPS", cfg.SimTPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error(err, "Game loop failed")
		os.Exit(1)
	}
}
