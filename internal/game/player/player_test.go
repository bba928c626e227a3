package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/card"
)

func TestNew_InvalidSeat(t *testing.T) {
	t.Parallel()

	for _, seat := range []Seat{-1, 4, 10} {
		_, err := New(seat)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeat)
	}
}

func TestSeat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N", North.String())
	assert.Equal(t, "W", West.String())
	assert.Equal(t, East, North.Next())
	assert.Equal(t, North, West.Next())
}

func TestPlayer_Hand(t *testing.T) {
	t.Parallel()

	p, err := New(South)
	require.NoError(t, err)

	p.AddCard(card.QueenOfSpades)
	p.AddCard(card.TwoOfClubs)
	p.SortHand()
	assert.Equal(t, []card.Card{card.TwoOfClubs, card.QueenOfSpades}, p.Hand)
	assert.True(t, p.Has(card.QueenOfSpades))

	require.NoError(t, p.RemoveCard(card.QueenOfSpades))
	assert.False(t, p.Has(card.QueenOfSpades))

	err = p.RemoveCard(card.QueenOfSpades)
	assert.ErrorIs(t, err, apperrors.ErrIllegalAction)
}

func TestPlayer_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: East, Hand: []card.Card{card.TwoOfClubs}}
	c := p.Clone()
	c.AddCard(card.QueenOfSpades)
	c.Hand[0] = card.QueenOfSpades

	assert.Equal(t, []card.Card{card.TwoOfClubs}, p.Hand)
}
