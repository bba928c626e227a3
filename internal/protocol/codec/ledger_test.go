package codec

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

func playedRound(t *testing.T) []action.Move {
	t.Helper()
	rng := rand.New(rand.NewPCG(6, 6))
	g := game.New(game.Options{Seed: 6})
	_, _, err := g.Start()
	require.NoError(t, err)
	for g.RoundNumber() == 1 && !g.IsTerminal() {
		legal, err := g.LegalActions()
		require.NoError(t, err)
		_, _, err = g.Apply(legal[rng.IntN(len(legal))])
		require.NoError(t, err)
	}
	results := g.Results()
	require.NotEmpty(t, results)
	return results[0].Moves
}

func TestLedger_RoundTrip(t *testing.T) {
	t.Parallel()

	moves := playedRound(t)
	require.Len(t, moves, 1+4*3+card.DeckSize)

	data, err := EncodeMoves(moves)
	require.NoError(t, err)

	decoded, err := DecodeMoves(data)
	require.NoError(t, err)
	assert.Equal(t, moves, decoded)
}

func TestEncodeMoves_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		move action.Move
		want error
	}{
		{
			name: "invalid seat",
			move: action.NewPlayerMove(player.Seat(7), action.Play(card.TwoOfClubs)),
			want: apperrors.ErrInvalidSeat,
		},
		{
			name: "unknown action",
			move: action.Move{Kind: action.PlayCardMove, Seat: player.North},
			want: apperrors.ErrUnknownAction,
		},
		{
			name: "unknown move kind",
			move: action.Move{Seat: player.North},
			want: apperrors.ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := EncodeMoves([]action.Move{tt.move})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeMoves_SkipsUnknownFields(t *testing.T) {
	t.Parallel()

	move := action.NewPlayerMove(player.East, action.Trade(card.QueenOfSpades))
	data, err := EncodeMoves([]action.Move{move})
	require.NoError(t, err)

	extra := protowire.AppendTag(nil, 9, protowire.VarintType)
	extra = protowire.AppendVarint(extra, 42)
	decoded, err := DecodeMoves(append(extra, data...))
	require.NoError(t, err)
	assert.Equal(t, []action.Move{move}, decoded)
}

func TestDecodeMoves_Errors(t *testing.T) {
	t.Parallel()

	truncated, err := EncodeMoves([]action.Move{action.NewPlayerMove(player.South, action.Play(card.TwoOfClubs))})
	require.NoError(t, err)

	// 出牌记录里放传牌编号
	var mismatched []byte
	mismatched = protowire.AppendTag(mismatched, fieldMoveKind, protowire.VarintType)
	mismatched = protowire.AppendVarint(mismatched, uint64(action.PlayCardMove))
	mismatched = protowire.AppendTag(mismatched, fieldMoveSeat, protowire.VarintType)
	mismatched = protowire.AppendVarint(mismatched, uint64(player.West))
	mismatched = protowire.AppendTag(mismatched, fieldMoveAction, protowire.VarintType)
	mismatched = protowire.AppendVarint(mismatched, uint64(action.Trade(card.TwoOfClubs).ID()))
	ledger := protowire.AppendTag(nil, fieldLedgerMove, protowire.BytesType)
	ledger = protowire.AppendBytes(ledger, mismatched)

	_, err = DecodeMoves(truncated[:len(truncated)-1])
	assert.Error(t, err)

	_, err = DecodeMoves(ledger)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAction)

	_, err = DecodeCards([]byte{0, 51, 52})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAction)
}

func TestCards_RoundTrip(t *testing.T) {
	t.Parallel()

	deck := card.Deck()
	decoded, err := DecodeCards(EncodeCards(deck))
	require.NoError(t, err)
	assert.Equal(t, deck, decoded)
}
