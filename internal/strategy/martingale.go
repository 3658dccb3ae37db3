package strategy

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/hand"
)

// DefaultMaxDoublings caps the martingale progression at base x 2^18,
// matching the largest progression observed in long reference runs.
const DefaultMaxDoublings = 18

// MaxSupportedDoublings bounds the configurable cap so the shifted wager
// stays within int range.
const MaxSupportedDoublings = 30

// Martingale plays basic strategy and doubles its wager after every loss,
// resetting to the base bet on any non-loss. The progression is capped at
// maxDoublings; there is no separate table maximum.
type Martingale struct {
	baseBet      int
	maxDoublings int
	lossStreak   int
}

// NewMartingale creates a martingale bettor with the given base bet and
// doubling cap
func NewMartingale(baseBet, maxDoublings int) (*Martingale, error) {
	if baseBet <= 0 {
		return nil, fmt.Errorf("base bet %d must be positive: %w", baseBet, ErrInvalidConfig)
	}
	if maxDoublings < 0 {
		return nil, fmt.Errorf("max doublings %d must be non-negative: %w", maxDoublings, ErrInvalidConfig)
	}
	if maxDoublings > MaxSupportedDoublings {
		return nil, fmt.Errorf("max doublings %d exceeds limit %d: %w", maxDoublings, MaxSupportedDoublings, ErrInvalidConfig)
	}
	return &Martingale{baseBet: baseBet, maxDoublings: maxDoublings}, nil
}

// Name identifies the strategy in persisted records
func (m *Martingale) Name() string { return "martingale" }

// Action plays from the basic-strategy table
func (m *Martingale) Action(v hand.Value, cards []deck.Card, upcard deck.Card) engine.Action {
	return lookupBasic(v, cards, upcard)
}

// Wager returns base x 2^min(lossStreak, maxDoublings)
func (m *Martingale) Wager() int {
	doublings := m.lossStreak
	if doublings > m.maxDoublings {
		doublings = m.maxDoublings
	}
	return m.baseBet << doublings
}

// Observe extends the loss streak on a loss and resets it on any non-loss
func (m *Martingale) Observe(outcome engine.Outcome) {
	if outcome.Result == engine.Loss {
		m.lossStreak++
	} else {
		m.lossStreak = 0
	}
}

// LossStreak returns the current consecutive-loss count
func (m *Martingale) LossStreak() int {
	return m.lossStreak
}
