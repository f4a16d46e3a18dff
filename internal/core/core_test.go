package core

import (
	"testing"
	"time"
)

func TestFakeClockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := NewFakeClock(start)
	if !clk.Now().Equal(start) {
		t.Fatalf("expected start time")
	}
	clk.Advance(1500 * time.Millisecond)
	want := start.Add(1500 * time.Millisecond)
	if !clk.Now().Equal(want) {
		t.Fatalf("expected %v got %v", want, clk.Now())
	}
}

func TestFakeClockSet(t *testing.T) {
	clk := NewFakeClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	earlier := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clk.Set(earlier)
	if !clk.Now().Equal(earlier) {
		t.Fatalf("expected %v got %v", earlier, clk.Now())
	}
	clk.Advance(time.Minute)
	if want := earlier.Add(time.Minute); !clk.Now().Equal(want) {
		t.Fatalf("expected %v got %v", want, clk.Now())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRNGUniformBounds(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(0.9, 1.15)
		if v < 0.9 || v >= 1.15 {
			t.Fatalf("value %v outside [0.9, 1.15)", v)
		}
	}
	if got := r.Uniform(2, 2); got != 2 {
		t.Fatalf("degenerate range should return lo, got %v", got)
	}
}

func TestFixedStepPacing(t *testing.T) {
	clk := NewFakeClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	fs := NewFixedStep(10).WithClock(clk)

	if !fs.ShouldStep() {
		t.Fatal("first call should step with the primed accumulator")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, expected no step")
	}
	clk.Advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, expected no step")
	}
	clk.Advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, expected a step")
	}
	if got := fs.DT(); got != 0.1 {
		t.Fatalf("expected dt 0.1 got %v", got)
	}
}

func TestStatSnapshotLookup(t *testing.T) {
	snap := StatSnapshot{Groups: []StatGroup{
		{Name: "A", Stats: []Stat{{Key: "gold", Label: "Gold", Value: "12"}}},
		{Name: "B", Stats: []Stat{{Key: "laps", Label: "Laps", Value: "3"}}},
	}}
	if v, ok := snap.Lookup("laps"); !ok || v != "3" {
		t.Fatalf("expected laps=3 got %q ok=%v", v, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("expected missing key to be absent")
	}
}
