package strategy

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/hand"
)

// Default bet bounds for the card counter
const (
	DefaultCounterMinBet = 10
	DefaultCounterMaxBet = 100
)

// CardCounter plays basic strategy with true-count deviations and spreads
// its wager with the shoe's true count, clamped to [minBet, maxBet]. It reads
// the count from the same shoe the round engine deals from.
type CardCounter struct {
	shoe   *deck.Shoe
	minBet int
	maxBet int
}

// NewCardCounter creates a counting strategy bound to the given shoe
func NewCardCounter(shoe *deck.Shoe, minBet, maxBet int) (*CardCounter, error) {
	if minBet <= 0 {
		return nil, fmt.Errorf("min bet %d must be positive: %w", minBet, ErrInvalidConfig)
	}
	if maxBet < minBet {
		return nil, fmt.Errorf("max bet %d below min bet %d: %w", maxBet, minBet, ErrInvalidConfig)
	}
	return &CardCounter{shoe: shoe, minBet: minBet, maxBet: maxBet}, nil
}

// Name identifies the strategy in persisted records
func (c *CardCounter) Name() string { return "card-counter" }

// Action plays basic strategy with the classic true-count index deviations
// (16v10, 15v10, 13v2, 12v3, 12v2).
func (c *CardCounter) Action(v hand.Value, cards []deck.Card, upcard deck.Card) engine.Action {
	tc := c.shoe.TrueCount()
	up := upcard.BlackjackValue()

	switch {
	case v.Total == 16 && up == 10 && tc >= 0:
		return engine.Stand
	case v.Total == 15 && up == 10 && tc >= 4:
		return engine.Stand
	case v.Total == 13 && up == 2 && tc <= -1:
		return engine.Hit
	case v.Total == 12 && up == 3 && tc <= 0:
		return engine.Hit
	case v.Total == 12 && up == 2 && tc >= 3:
		return engine.Stand
	}
	return lookupBasic(v, cards, upcard)
}

// Wager spreads the bet with the true count. The spread is a step function of
// the count, non-decreasing, and always within [minBet, maxBet].
func (c *CardCounter) Wager() int {
	return c.WagerForCount(c.shoe.TrueCount())
}

// WagerForCount returns the spread bet for a given true count
func (c *CardCounter) WagerForCount(trueCount float64) int {
	var bet int
	switch {
	case trueCount < 2:
		bet = c.minBet
	case trueCount < 3:
		bet = 25
	case trueCount < 4:
		bet = 50
	default:
		bet = c.maxBet
	}
	return clamp(bet, c.minBet, c.maxBet)
}

// Observe is a no-op: the counter's state lives in the shoe's running count
func (c *CardCounter) Observe(_ engine.Outcome) {}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
