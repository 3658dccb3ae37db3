package strategy

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/dealer"
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/hand"
)

// MimicDealer plays the player's hand by the house drawing rule: hit below
// 17 and on soft 17, stand otherwise. Flat wager.
type MimicDealer struct {
	flatBettor
}

// NewMimicDealer creates a mimic-dealer strategy with the given flat bet
func NewMimicDealer(bet int) (*MimicDealer, error) {
	if bet <= 0 {
		return nil, fmt.Errorf("bet %d must be positive: %w", bet, ErrInvalidConfig)
	}
	return &MimicDealer{flatBettor{bet: bet}}, nil
}

// Name identifies the strategy in persisted records
func (m *MimicDealer) Name() string { return "mimic-dealer" }

// Action applies the dealer rule to the player's own hand
func (m *MimicDealer) Action(v hand.Value, _ []deck.Card, _ deck.Card) engine.Action {
	if dealer.ShouldDraw(v) {
		return engine.Hit
	}
	return engine.Stand
}
