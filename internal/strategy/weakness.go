package strategy

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/hand"
)

// DealerWeakness stands early against weak dealer upcards: any 12+ stands
// when the dealer shows 2-6, otherwise play hits below 17. Flat wager.
type DealerWeakness struct {
	flatBettor
}

// NewDealerWeakness creates a dealer-weakness strategy with the given flat bet
func NewDealerWeakness(bet int) (*DealerWeakness, error) {
	if bet <= 0 {
		return nil, fmt.Errorf("bet %d must be positive: %w", bet, ErrInvalidConfig)
	}
	return &DealerWeakness{flatBettor{bet: bet}}, nil
}

// Name identifies the strategy in persisted records
func (d *DealerWeakness) Name() string { return "dealer-weakness" }

// Action stands on 12+ against a weak upcard, otherwise hits below 17
func (d *DealerWeakness) Action(v hand.Value, _ []deck.Card, upcard deck.Card) engine.Action {
	up := upcard.BlackjackValue()
	if up >= 2 && up <= 6 && v.Total >= 12 {
		return engine.Stand
	}
	if v.Total < 17 {
		return engine.Hit
	}
	return engine.Stand
}
