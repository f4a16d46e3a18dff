package blackjack

import (
	"strconv"

	"idle-racer/internal/core"
)

// Decks is the number of 52-card decks in a shoe.
const Decks = 4

// Rank is a card rank; 1 is the ace and 11-13 are the face cards.
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Value is the rank's count with the ace taken as 11.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= 10:
		return 10
	default:
		return int(r)
	}
}

// Suit is one of the four suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitSymbols = [...]string{"♠", "♥", "♦", "♣"}

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitSymbols) {
		return "?"
	}
	return suitSymbols[s]
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// Hand is an ordered run of cards.
type Hand []Card

// Value sums the hand with every ace at 11, then demotes aces to 1 one at a
// time while the total is over 21.
func (h Hand) Value() int {
	total, _ := h.count()
	return total
}

// Soft reports whether an ace is still counted as 11.
func (h Hand) Soft() bool {
	_, soft := h.count()
	return soft
}

func (h Hand) count() (int, bool) {
	total, aces := 0, 0
	for _, c := range h {
		total += c.Rank.Value()
		if c.Rank == Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// Shoe deals from Decks shuffled decks, reshuffling a full shoe whenever it
// runs dry.
type Shoe struct {
	cards []Card
	rng   *core.RNG
}

// NewShoe returns a freshly shuffled shoe.
func NewShoe(rng *core.RNG) *Shoe {
	s := &Shoe{rng: rng}
	s.Shuffle()
	return s
}

// NewStackedShoe returns a shoe that deals cards in the given order before
// falling back to shuffled shoes.
func NewStackedShoe(rng *core.RNG, cards ...Card) *Shoe {
	s := &Shoe{rng: rng, cards: make([]Card, len(cards))}
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

// Shuffle replaces the shoe's contents with Decks full decks in random order.
func (s *Shoe) Shuffle() {
	s.cards = s.cards[:0]
	for d := 0; d < Decks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for r := Ace; r <= King; r++ {
				s.cards = append(s.cards, Card{Rank: r, Suit: suit})
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the next card.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.Shuffle()
	}
	c := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

// Remaining returns how many cards are left before a reshuffle.
func (s *Shoe) Remaining() int { return len(s.cards) }
