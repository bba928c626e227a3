package agent

import (
	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
)

// CardCounter tracks cards that are neither in the viewer's hand nor played this round
type CardCounter struct {
	unseen [card.DeckSize]bool
}

// NewCardCounter creates a counter with the full deck unseen
func NewCardCounter() *CardCounter {
	cc := &CardCounter{}
	cc.Reset()
	return cc
}

// CountState builds a counter from the viewer's hand and the round ledger
func CountState(s *game.State) *CardCounter {
	cc := NewCardCounter()
	cc.DeductCards(s.Hand())
	for _, m := range s.Moves {
		if m.Kind == action.PlayCardMove {
			cc.DeductCards([]card.Card{m.Card()})
		}
	}
	return cc
}

// Reset marks all 52 cards unseen
func (cc *CardCounter) Reset() {
	for i := range cc.unseen {
		cc.unseen[i] = true
	}
}

// DeductCards marks cards as seen
func (cc *CardCounter) DeductCards(cards []card.Card) {
	for _, c := range cards {
		cc.unseen[c.ID()] = false
	}
}

// Remaining returns the unseen card count per suit
func (cc *CardCounter) Remaining() map[card.Suit]int {
	remaining := make(map[card.Suit]int, card.NumSuits)
	for id, unseen := range cc.unseen {
		if unseen {
			remaining[card.MustFromID(id).Suit]++
		}
	}
	return remaining
}
