package strategy

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/hand"
)

// Threshold bounds for FixedThreshold construction. A threshold below 4 can
// never trigger (the minimum two-card hand) and above 21 always busts.
const (
	MinThreshold = 4
	MaxThreshold = 21
)

// FixedThreshold hits while the hand total is below a fixed threshold. The
// comparative study sweeps thresholds 12 through 20. Flat wager.
type FixedThreshold struct {
	flatBettor
	threshold int
}

// NewFixedThreshold creates a fixed-threshold strategy with the given flat bet
func NewFixedThreshold(threshold, bet int) (*FixedThreshold, error) {
	if threshold < MinThreshold || threshold > MaxThreshold {
		return nil, fmt.Errorf("threshold %d outside [%d,%d]: %w", threshold, MinThreshold, MaxThreshold, ErrInvalidConfig)
	}
	if bet <= 0 {
		return nil, fmt.Errorf("bet %d must be positive: %w", bet, ErrInvalidConfig)
	}
	return &FixedThreshold{flatBettor: flatBettor{bet: bet}, threshold: threshold}, nil
}

// Name identifies the strategy in persisted records
func (f *FixedThreshold) Name() string {
	return fmt.Sprintf("fixed-threshold-%d", f.threshold)
}

// Action hits while the total is below the threshold
func (f *FixedThreshold) Action(v hand.Value, _ []deck.Card, _ deck.Card) engine.Action {
	if v.Total < f.threshold {
		return engine.Hit
	}
	return engine.Stand
}
