// Package blackjack runs single-player rounds against a dealer, staking the
// shared gold balance.
package blackjack

import (
	"errors"
	"fmt"

	"idle-racer/internal/economy"
)

const (
	// DefaultBet is the opening bet.
	DefaultBet = 50
	// MinBet is the lowest bet ChangeBet allows.
	MinBet = 10
	// MaxBet caps the bet regardless of balance.
	MaxBet = 100_000
	// BetHeadroom lets the bet exceed the balance by this much.
	BetHeadroom = 10_000

	dealerStandsOn = 17
	natural        = 21
)

var (
	// ErrInvalidRoundAction is returned for an action outside its valid state.
	ErrInvalidRoundAction = errors.New("invalid round action")
	// ErrInvalidBet is returned when dealing with a non-positive bet.
	ErrInvalidBet = errors.New("invalid bet")
)

// Outcome is how the last round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeBlackjack
	OutcomeWin
	OutcomePush
	OutcomeLoss
	OutcomeBust
	OutcomeDealerBlackjack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	case OutcomeLoss:
		return "loss"
	case OutcomeBust:
		return "bust"
	case OutcomeDealerBlackjack:
		return "dealer blackjack"
	}
	return "none"
}

const (
	msgIdle      = "Place your bet and DEAL."
	msgCantDeal  = "Not enough gold or invalid bet."
	msgYourTurn  = "Hit or Stand."
	msgBlackjack = "Blackjack! You win."
	msgPush      = "Push. Bet returned."
	msgDealerBJ  = "Dealer blackjack. You lose."
	msgBust      = "Bust! You lose."
	msgWin       = "You win."
	msgLose      = "You lose."
)

// Round is a read-only view of the table for display.
type Round struct {
	Player    Hand
	Dealer    Hand
	InRound   bool
	Bet       int
	BetLocked int
	Message   string
	Outcome   Outcome
}

// Engine is the round state machine. It reads and mutates the gold balance
// and blackjack stats of the economy state it was built with.
type Engine struct {
	st   *economy.State
	shoe *Shoe

	player    Hand
	dealer    Hand
	inRound   bool
	bet       int
	betLocked int
	message   string
	outcome   Outcome
}

// New returns an idle engine staking st's gold and dealing from shoe.
func New(st *economy.State, shoe *Shoe) *Engine {
	return &Engine{
		st:      st,
		shoe:    shoe,
		bet:     DefaultBet,
		message: msgIdle,
	}
}

// Rebind points the engine at a different economy state, as after a load.
// Any round in progress is abandoned without payout.
func (e *Engine) Rebind(st *economy.State) {
	e.st = st
	e.inRound = false
	e.player, e.dealer = nil, nil
	e.betLocked = 0
	e.outcome = OutcomeNone
	e.message = msgIdle
}

// InRound reports whether a round is in progress.
func (e *Engine) InRound() bool { return e.inRound }

// Bet returns the bet the next Deal will stake.
func (e *Engine) Bet() int { return e.bet }

// Snapshot returns a copy of the table state.
func (e *Engine) Snapshot() Round {
	return Round{
		Player:    append(Hand(nil), e.player...),
		Dealer:    append(Hand(nil), e.dealer...),
		InRound:   e.inRound,
		Bet:       e.bet,
		BetLocked: e.betLocked,
		Message:   e.message,
		Outcome:   e.outcome,
	}
}

// Deal stakes the current bet and deals two cards each. A natural on either
// side settles the round immediately.
func (e *Engine) Deal() error {
	if e.inRound {
		return fmt.Errorf("deal: %w", ErrInvalidRoundAction)
	}
	if e.bet <= 0 {
		e.message = msgCantDeal
		return fmt.Errorf("deal %d: %w", e.bet, ErrInvalidBet)
	}
	if e.st.Gold < float64(e.bet) {
		e.message = msgCantDeal
		return fmt.Errorf("deal %d: %w", e.bet, economy.ErrInsufficientFunds)
	}

	e.player = Hand{e.shoe.Draw(), e.shoe.Draw()}
	e.dealer = Hand{e.shoe.Draw(), e.shoe.Draw()}
	e.betLocked = e.bet
	e.st.Gold -= float64(e.betLocked)
	e.inRound = true
	e.outcome = OutcomeNone
	e.message = msgYourTurn

	if e.player.Value() == natural || e.dealer.Value() == natural {
		e.resolveNaturals()
	}
	return nil
}

func (e *Engine) resolveNaturals() {
	pv, dv := e.player.Value(), e.dealer.Value()
	switch {
	case pv == natural && dv != natural:
		e.settle(OutcomeBlackjack, 2*e.betLocked, msgBlackjack)
	case pv == natural && dv == natural:
		e.settle(OutcomePush, e.betLocked, msgPush)
	default:
		e.settle(OutcomeDealerBlackjack, 0, msgDealerBJ)
	}
}

// Hit draws one card for the player. Going over 21 loses the stake.
func (e *Engine) Hit() error {
	if !e.inRound {
		return fmt.Errorf("hit: %w", ErrInvalidRoundAction)
	}
	e.player = append(e.player, e.shoe.Draw())
	if e.player.Value() > natural {
		e.settle(OutcomeBust, 0, msgBust)
	}
	return nil
}

// Stand plays out the dealer, who draws below 17 and stands on any 17, then
// settles the round.
func (e *Engine) Stand() error {
	if !e.inRound {
		return fmt.Errorf("stand: %w", ErrInvalidRoundAction)
	}
	for e.dealer.Value() < dealerStandsOn {
		e.dealer = append(e.dealer, e.shoe.Draw())
	}
	pv, dv := e.player.Value(), e.dealer.Value()
	switch {
	case dv > natural || pv > dv:
		e.settle(OutcomeWin, 2*e.betLocked, msgWin)
	case pv == dv:
		e.settle(OutcomePush, e.betLocked, msgPush)
	default:
		e.settle(OutcomeLoss, 0, msgLose)
	}
	return nil
}

// settle pays out, records the game and returns the engine to idle.
func (e *Engine) settle(outcome Outcome, payout int, msg string) {
	if payout > 0 {
		e.st.Earn(float64(payout))
	}
	e.st.Blackjack.Games++
	if outcome == OutcomeBlackjack || outcome == OutcomeWin {
		e.st.Blackjack.Wins++
	}
	e.outcome = outcome
	e.message = msg
	e.inRound = false
}

// ChangeBet adjusts the bet by delta, clamped to [MinBet, min(MaxBet, gold+BetHeadroom)].
func (e *Engine) ChangeBet(delta int) error {
	if e.inRound {
		return fmt.Errorf("change bet: %w", ErrInvalidRoundAction)
	}
	hi := MaxBet
	if e.st.Gold+BetHeadroom < MaxBet {
		hi = int(e.st.Gold) + BetHeadroom
	}
	e.bet = clamp(e.bet+delta, MinBet, hi)
	return nil
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
