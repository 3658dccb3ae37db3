package deck

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/blackjacksim/internal/randutil"
)

// ErrShoeExhausted is returned by Draw when the shoe has no cards left and
// automatic reshuffling is disabled. With reshuffling enabled it never occurs.
var ErrShoeExhausted = errors.New("shoe exhausted before reshuffle")

const cardsPerDeck = 52

// Shoe is a multi-deck card source reused across many rounds. It owns its RNG
// and tracks the Hi-Lo running count of every card it has dealt since the
// last shuffle.
type Shoe struct {
	cards        []Card
	cursor       int
	decks        int
	penetration  float64
	runningCount int
	autoShuffle  bool
	rng          *rand.Rand
}

// NewShoe creates a shoe of the given number of 52-card decks, shuffled with
// a deterministic RNG derived from seed. Penetration is the fraction of the
// shoe that may remain before NeedsShuffle reports true.
func NewShoe(decks int, penetration float64, seed int64) *Shoe {
	s := &Shoe{
		cards:       make([]Card, 0, decks*cardsPerDeck),
		decks:       decks,
		penetration: penetration,
		autoShuffle: true,
		rng:         randutil.New(seed),
	}
	s.build()
	s.Shuffle()
	return s
}

func (s *Shoe) build() {
	s.cards = s.cards[:0]
	for d := 0; d < s.decks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.cursor = 0
}

// Shuffle rebuilds the full multi-deck composition, applies a Fisher-Yates
// pass, and resets the cursor and running count.
func (s *Shoe) Shuffle() {
	s.build()
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.runningCount = 0
}

// Draw deals the next card and updates the running count. If the shoe is
// empty it reshuffles first; ErrShoeExhausted is only possible when automatic
// reshuffling has been disabled via Stack.
func (s *Shoe) Draw() (Card, error) {
	if s.cursor >= len(s.cards) {
		if !s.autoShuffle {
			return Card{}, ErrShoeExhausted
		}
		s.Shuffle()
	}
	card := s.cards[s.cursor]
	s.cursor++
	s.runningCount += card.CountValue()
	return card, nil
}

// RunningCount returns the Hi-Lo running count of all cards dealt since the
// last shuffle.
func (s *Shoe) RunningCount() int {
	return s.runningCount
}

// TrueCount returns the running count divided by the estimated number of
// decks remaining, floored at one deck.
func (s *Shoe) TrueCount() float64 {
	remaining := float64(s.CardsRemaining()) / cardsPerDeck
	if remaining < 1 {
		remaining = 1
	}
	return float64(s.runningCount) / remaining
}

// CardsRemaining returns the number of undealt cards
func (s *Shoe) CardsRemaining() int {
	return len(s.cards) - s.cursor
}

// Size returns the total number of cards in the full shoe
func (s *Shoe) Size() int {
	return s.decks * cardsPerDeck
}

// NeedsShuffle reports whether the shoe has been dealt past its penetration
// threshold. Callers check this between rounds so a reshuffle never lands
// mid-hand.
func (s *Shoe) NeedsShuffle() bool {
	return float64(s.CardsRemaining()) < s.penetration*float64(s.Size())
}

// Stack replaces the undealt portion of the shoe with the given cards in
// order and disables automatic reshuffling. Tests use this to rig specific
// deals.
func (s *Shoe) Stack(cards ...Card) {
	s.cards = append([]Card(nil), cards...)
	s.cursor = 0
	s.runningCount = 0
	s.autoShuffle = false
}

// RankCounts returns how many of each rank remain across the undealt and
// dealt portions combined. Used to verify composition after a shuffle.
func (s *Shoe) RankCounts() map[Rank]int {
	counts := make(map[Rank]int, 13)
	for _, c := range s.cards {
		counts[c.Rank]++
	}
	return counts
}
