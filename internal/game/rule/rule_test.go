package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

// trickOf 从 leader 开始按顺时针生成一墩
func trickOf(leader player.Seat, cards string) []action.Move {
	seat := leader
	var moves []action.Move
	for _, c := range mustCards(cards) {
		moves = append(moves, action.NewPlayerMove(seat, action.Play(c)))
		seat = seat.Next()
	}
	return moves
}

func mustCards(s string) []card.Card {
	cards, err := card.ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func TestTrickWinner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		leader   player.Seat
		cards    string
		expected player.Seat
	}{
		{name: "Highest of led suit wins", leader: player.North, cards: "9C KC 2H AC", expected: player.West},
		{name: "Off-suit ace never wins", leader: player.East, cards: "3D AS AH 4D", expected: player.North},
		{name: "Leader keeps trick", leader: player.South, cards: "KH 2H 3H 4H", expected: player.South},
		{name: "Queen of spades follows suit", leader: player.West, cards: "JS QS 2C 3C", expected: player.North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			winner, err := TrickWinner(trickOf(tt.leader, tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, winner)
		})
	}
}

func TestTrickWinner_Empty(t *testing.T) {
	t.Parallel()

	_, err := TrickWinner(nil)
	assert.ErrorIs(t, err, apperrors.ErrInconsistent)
}

func TestPoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Points(mustCards("2C 3D KS AS")))
	assert.Equal(t, -2, Points(mustCards("2H 3H KS AS")))
	assert.Equal(t, -14, Points(mustCards("QS 2H 4C 5C")))
	assert.Equal(t, -26, Points(append(card.FilterSuit(card.Deck(), card.Hearts), card.QueenOfSpades)))
}

func TestHeartsBroken(t *testing.T) {
	t.Parallel()

	var piles [player.NumSeats][]card.Card
	assert.False(t, HeartsBroken(piles))

	piles[1] = mustCards("2C 3C 4C 5C")
	assert.False(t, HeartsBroken(piles))

	piles[2] = mustCards("2D 3D QS 5D")
	assert.True(t, HeartsBroken(piles))

	piles[2] = mustCards("2D 3D 2H 5D")
	assert.True(t, HeartsBroken(piles))
}
