// Package hand holds one party's cards for a round and evaluates them under
// blackjack rules.
package hand

import (
	"errors"
	"strings"

	"github.com/lox/blackjacksim/internal/deck"
)

// ErrMalformedHand is returned when an empty hand is evaluated. It indicates
// a bug in the round engine, not a recoverable condition.
var ErrMalformedHand = errors.New("cannot evaluate empty hand")

// Hand is an ordered sequence of cards belonging to the player or dealer
type Hand struct {
	cards []deck.Card
}

// New creates a hand from the given cards
func New(cards ...deck.Card) *Hand {
	return &Hand{cards: append([]deck.Card(nil), cards...)}
}

// Add appends a dealt card to the hand
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in deal order
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// String returns the hand as dash-joined cards (e.g., "A♠-9♥-5♣")
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, "-")
}

// Value is the evaluated state of a hand
type Value struct {
	Total     int
	Soft      bool // an ace is still counted as 11
	Bust      bool
	Blackjack bool // two-card natural 21
}

// Evaluate computes the best blackjack total for the hand. Aces start at 11
// and are demoted to 1 one at a time while the total exceeds 21.
func (h *Hand) Evaluate() (Value, error) {
	if len(h.cards) == 0 {
		return Value{}, ErrMalformedHand
	}

	total := 0
	softAces := 0
	for _, c := range h.cards {
		total += c.BlackjackValue()
		if c.IsAce() {
			softAces++
		}
	}

	for total > 21 && softAces > 0 {
		total -= 10
		softAces--
	}

	return Value{
		Total:     total,
		Soft:      softAces > 0,
		Bust:      total > 21,
		Blackjack: len(h.cards) == 2 && total == 21,
	}, nil
}

// MustEvaluate is Evaluate for hands known to be non-empty. It panics on a
// malformed hand.
func (h *Hand) MustEvaluate() Value {
	v, err := h.Evaluate()
	if err != nil {
		panic(err)
	}
	return v
}
