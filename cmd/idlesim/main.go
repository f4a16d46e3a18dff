package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"idle-racer/internal/config"
	"idle-racer/internal/core"
	"idle-racer/internal/format"
	"idle-racer/internal/game"
	"idle-racer/internal/headless"
	"idle-racer/internal/save"
)

func main() {
	seconds := flag.Float64("seconds", 600, "simulated seconds to run")
	buy := flag.Bool("buy", false, "buy the cheapest upgrades once per simulated second")
	realtime := flag.Bool("realtime", false, "pace ticks to the wall clock")
	runs := flag.Int("runs", 1, "number of seeds to sweep in parallel")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines for sweeps")

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	persist := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "save" {
			persist = true
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := cfg.NewLogger(os.Stderr)
	opts := headless.Options{Seconds: *seconds, TPS: cfg.TPS, AutoBuy: *buy, Realtime: *realtime}
	base := game.Options{
		Params:           cfg.Economy,
		Seed:             cfg.Seed,
		Logger:           logger,
		AutosaveInterval: cfg.Autosave.IntervalSeconds,
	}

	if *runs > 1 {
		sweep(ctx, base, opts, *runs, *workers)
		return
	}

	if persist {
		base.Saves = save.NewManager(save.NewFileStore(cfg.SavePath), cfg.Economy, save.WithLogger(logger))
	}
	state := game.New(base)
	if persist {
		_, _ = state.Load()
	} else {
		state.ToggleAutosave()
	}

	start := time.Now()
	res := headless.Run(ctx, state, opts)
	if persist {
		_ = state.Save()
	}

	fmt.Printf("Simulated %.1fs in %d ticks (%s wall, %d purchases)\n",
		res.Simulated, res.Ticks, time.Since(start).Round(time.Millisecond), res.Purchases)
	report(state.Stats())
}

func sweep(ctx context.Context, base game.Options, opts headless.Options, runs, workers int) {
	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = base.Seed + int64(i)
	}
	fmt.Printf("Sweeping %d seeds (%d workers, %.0fs each)\n", runs, workers, opts.Seconds)

	start := time.Now()
	results := headless.Sweep(ctx, base, opts, seeds, workers)
	fmt.Printf("\nTop results (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		r := results[i]
		fmt.Printf("%2d) seed=%d lifetime=%s gold=%s laps=%s cars=%d purchases=%d\n",
			i+1, r.Seed, format.Number(r.Lifetime), format.Number(r.Gold), format.Commas(float64(r.Laps)), r.Cars, r.Purchases)
	}
}

func report(snap core.StatSnapshot) {
	for _, g := range snap.Groups {
		fmt.Printf("\n%s\n", g.Name)
		for _, s := range g.Stats {
			fmt.Printf("  %-14s %s\n", s.Label, s.Value)
		}
	}
}
