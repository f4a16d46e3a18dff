// Package headless advances a game without a window, either as fast as
// possible or paced to wall time, and sweeps many seeds in parallel.
package headless

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"idle-racer/internal/core"
	"idle-racer/internal/economy"
	"idle-racer/internal/game"
)

// Options controls a run.
type Options struct {
	// Seconds of simulated time to advance.
	Seconds float64
	TPS     int
	// AutoBuy buys the cheapest affordable upgrades once per simulated second.
	AutoBuy bool
	// Realtime paces ticks to the wall clock instead of running flat out.
	Realtime bool
	Clock    core.Clock
}

// Result summarises a finished run.
type Result struct {
	Seed      int64
	Ticks     int
	Simulated float64
	Purchases int
	Gold      float64
	Lifetime  float64
	Laps      int
	Cars      int
}

const buyLimitPerSecond = 50

// Run advances state until opts.Seconds of simulated time have passed or ctx
// is cancelled.
func Run(ctx context.Context, state *game.State, opts Options) Result {
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	total := int(math.Round(opts.Seconds * float64(tps)))
	step := core.NewFixedStep(tps)
	if opts.Clock != nil {
		step.WithClock(opts.Clock)
	}
	dt := step.DT()

	var res Result
	for res.Ticks < total && ctx.Err() == nil {
		if opts.Realtime && !step.ShouldStep() {
			sleep(ctx, step.Step()/4)
			continue
		}
		if opts.AutoBuy && res.Ticks%tps == 0 {
			res.Purchases += state.BuyCheapest(buyLimitPerSecond)
		}
		state.Tick(dt)
		res.Ticks++
	}
	res.Simulated = float64(res.Ticks) * dt
	fill(&res, state.Economy())
	return res
}

func fill(res *Result, st *economy.State) {
	res.Gold = st.Gold
	res.Lifetime = st.LifetimeGoldEarned
	res.Laps = st.LapsTotal
	res.Cars = st.Cars
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Sweep runs one fresh game per seed on a pool of workers and returns the
// results ordered by lifetime earnings, best first. Runs are never realtime.
func Sweep(ctx context.Context, base game.Options, opts Options, seeds []int64, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	opts.Realtime = false
	if base.Logger == nil {
		base.Logger = slog.New(discardHandler{})
	}
	base.Saves = nil

	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				o := base
				o.Seed = seed
				st := game.New(o)
				st.ToggleAutosave()
				res := Run(ctx, st, opts)
				res.Seed = seed
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, s := range seeds {
			select {
			case jobs <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Lifetime != all[j].Lifetime {
			return all[i].Lifetime > all[j].Lifetime
		}
		return all[i].Seed < all[j].Seed
	})
	return all
}
