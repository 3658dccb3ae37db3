package strategy

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/engine"
	"github.com/lox/blackjacksim/internal/hand"
)

// tableKey is the composite lookup key for the basic-strategy table: the
// player's hard total (or, for two-card soft hands, the value of the non-ace
// card) against the dealer upcard value (2-11, ace high).
type tableKey struct {
	total int
	soft  bool
	up    int
}

// basicTable is the immutable basic-strategy lookup, built once at process
// start. Split and double rows are out of scope; the table covers hit/stand
// only.
var basicTable map[tableKey]engine.Action

func init() {
	basicTable = make(map[tableKey]engine.Action)

	for up := 2; up <= 11; up++ {
		// Hard totals.
		for total := 4; total <= 21; total++ {
			action := engine.Hit
			switch {
			case total >= 17:
				action = engine.Stand
			case total >= 13 && total <= 16 && up >= 2 && up <= 6:
				action = engine.Stand
			case total == 12 && up >= 4 && up <= 6:
				action = engine.Stand
			}
			basicTable[tableKey{total: total, up: up}] = action
		}

		// Soft two-card hands, keyed by the value of the card beside the ace.
		for other := 2; other <= 10; other++ {
			action := engine.Hit
			switch {
			case other >= 8:
				action = engine.Stand
			case other == 7 && (up == 2 || up == 7 || up == 8):
				action = engine.Stand
			case other == 6 && up >= 2 && up <= 6:
				action = engine.Stand
			case other >= 2 && other <= 5 && up >= 4 && up <= 6:
				action = engine.Stand
			}
			basicTable[tableKey{total: other, soft: true, up: up}] = action
		}
	}
}

// lookupBasic returns the basic-strategy action for the hand. Two-card hands
// holding an ace use the soft rows; everything else plays its hard total
// (which already counts a surviving ace as 11).
func lookupBasic(v hand.Value, cards []deck.Card, upcard deck.Card) engine.Action {
	up := upcard.BlackjackValue()

	if len(cards) == 2 {
		var other deck.Card
		hasAce := false
		for i, c := range cards {
			if c.IsAce() && !hasAce {
				hasAce = true
				other = cards[1-i]
			}
		}
		if hasAce {
			if other.IsAce() {
				// Pair of aces always wants another card.
				return engine.Hit
			}
			return basicTable[tableKey{total: other.BlackjackValue(), soft: true, up: up}]
		}
	}

	if action, ok := basicTable[tableKey{total: v.Total, up: up}]; ok {
		return action
	}
	// Totals above 21 never reach the strategy; below 4 cannot occur.
	return engine.Stand
}

// Basic plays textbook basic strategy from the static table. Flat wager.
type Basic struct {
	flatBettor
}

// NewBasic creates a basic-strategy player with the given flat bet
func NewBasic(bet int) (*Basic, error) {
	if bet <= 0 {
		return nil, fmt.Errorf("bet %d must be positive: %w", bet, ErrInvalidConfig)
	}
	return &Basic{flatBettor{bet: bet}}, nil
}

// Name identifies the strategy in persisted records
func (b *Basic) Name() string { return "basic" }

// Action looks up the move from the basic-strategy table
func (b *Basic) Action(v hand.Value, cards []deck.Card, upcard deck.Card) engine.Action {
	return lookupBasic(v, cards, upcard)
}
