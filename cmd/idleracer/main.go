//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"idle-racer/internal/app"
	"idle-racer/internal/config"
	"idle-racer/internal/game"
	"idle-racer/internal/save"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger(os.Stderr)

	saves := save.NewManager(save.NewFileStore(cfg.SavePath), cfg.Economy, save.WithLogger(logger))
	state := game.New(game.Options{
		Params:           cfg.Economy,
		Seed:             cfg.Seed,
		Logger:           logger,
		Saves:            saves,
		AutosaveInterval: cfg.Autosave.IntervalSeconds,
	})
	// A missing or broken save leaves a fresh game; Load has logged why.
	_, _ = state.Load()

	ebiten.SetWindowTitle("Idle Racer + Blackjack")
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(state.Settings().FPSCap)

	runErr := ebiten.RunGame(app.New(state, cfg.Seed))
	_ = state.Save()
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
