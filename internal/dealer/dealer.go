// Package dealer implements the fixed house drawing rule: hit below 17, hit
// soft 17, stand otherwise.
package dealer

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/hand"
)

// State is the dealer's position in the drawing state machine
type State int

const (
	Drawing State = iota
	Standing
	Bust
)

// String returns the string representation of a dealer state
func (s State) String() string {
	switch s {
	case Drawing:
		return "drawing"
	case Standing:
		return "standing"
	case Bust:
		return "bust"
	default:
		return "unknown"
	}
}

// ShouldDraw reports whether the house rule requires another card for the
// given hand value.
func ShouldDraw(v hand.Value) bool {
	if v.Bust {
		return false
	}
	return v.Total < 17 || (v.Total == 17 && v.Soft)
}

// Play draws cards from the shoe into the dealer's hand until the house rule
// stands or the hand busts, returning the final value and terminal state.
func Play(shoe *deck.Shoe, h *hand.Hand) (hand.Value, State, error) {
	v, err := h.Evaluate()
	if err != nil {
		return hand.Value{}, Drawing, fmt.Errorf("evaluating dealer hand: %w", err)
	}

	for ShouldDraw(v) {
		card, err := shoe.Draw()
		if err != nil {
			return hand.Value{}, Drawing, fmt.Errorf("dealer draw: %w", err)
		}
		h.Add(card)
		v, err = h.Evaluate()
		if err != nil {
			return hand.Value{}, Drawing, fmt.Errorf("evaluating dealer hand: %w", err)
		}
	}

	if v.Bust {
		return v, Bust, nil
	}
	return v, Standing, nil
}
