package achievement

import (
	"testing"

	"idle-racer/internal/economy"
)

func TestEvaluateIdempotent(t *testing.T) {
	s := economy.NewState()
	s.Gold = 10

	got := Evaluate(s)
	if len(got) != 1 || got[0].Name != "First Steps" {
		t.Fatalf("expected First Steps to unlock got %+v", got)
	}
	if s.PrestigePoints != 1 {
		t.Fatalf("expected 1 PP got %d", s.PrestigePoints)
	}

	if again := Evaluate(s); len(again) != 0 {
		t.Fatalf("second pass unlocked %+v", again)
	}
	if s.PrestigePoints != 1 {
		t.Fatalf("second pass changed PP to %d", s.PrestigePoints)
	}
}

func TestUnlocksArePermanent(t *testing.T) {
	s := economy.NewState()
	s.Gold = 150_000
	Evaluate(s)
	pp := s.PrestigePoints
	if !s.Achievements["Tycoon"].Unlocked {
		t.Fatal("expected Tycoon unlocked")
	}

	s.Gold = 0
	Evaluate(s)
	if !s.Achievements["Tycoon"].Unlocked || !s.Achievements["First Steps"].Unlocked {
		t.Fatal("unlocks must survive the condition becoming false")
	}
	if s.PrestigePoints != pp {
		t.Fatalf("PP changed from %d to %d", pp, s.PrestigePoints)
	}
}

func TestMultipleUnlocksInOnePass(t *testing.T) {
	s := economy.NewState()
	s.Gold = 2_000_000
	s.LapsTotal = 600
	s.Cars = 12
	s.Blackjack = economy.BlackjackStats{Games: 20, Wins: 10}

	got := Evaluate(s)
	names := map[string]bool{}
	for _, r := range got {
		names[r.Name] = true
	}
	for _, want := range []string{"First Steps", "Lap 10", "Fleet of 5", "Trailblazer", "Tycoon", "Millionaire", "Card Shark", "Collector"} {
		if !names[want] {
			t.Fatalf("expected %s in %v", want, names)
		}
	}
	// 1+1+1+2+1+2+2+1
	if s.PrestigePoints != 11 {
		t.Fatalf("expected 11 PP got %d", s.PrestigePoints)
	}
	if Unlocked(s) != 8 {
		t.Fatalf("expected 8 unlocked got %d", Unlocked(s))
	}
}

func TestPreviouslyUnlockedNotRewarded(t *testing.T) {
	s := economy.NewState()
	s.Achievements["Lap 10"] = economy.Achievement{Unlocked: true}
	s.LapsTotal = 50
	if got := Evaluate(s); len(got) != 0 {
		t.Fatalf("expected nothing new got %+v", got)
	}
	if s.PrestigePoints != 0 {
		t.Fatalf("expected no PP got %d", s.PrestigePoints)
	}
}

func TestNilAchievementsMap(t *testing.T) {
	s := &economy.State{Cars: 5, SpeedLevel: 1, PayoutLevel: 1}
	if got := Evaluate(s); len(got) != 1 || got[0].Name != "Fleet of 5" {
		t.Fatalf("expected Fleet of 5 got %+v", got)
	}
}
