package arena

import (
	"context"
	"fmt"
	"slices"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/game/round"
	"github.com/palemoky/maria/internal/game/rule"
	"github.com/palemoky/maria/internal/storage"
)

// MatchLoader loads stored matches
type MatchLoader interface {
	LoadMatch(ctx context.Context, id string) (*storage.MatchRecord, error)
}

// Replay loads a stored match and re-runs every round from its ledger,
// checking legality and that the recomputed scores match the record.
func Replay(ctx context.Context, loader MatchLoader, id string) (*storage.MatchRecord, error) {
	match, err := loader.LoadMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, fmt.Errorf("match %s not found", id)
	}
	if err := VerifyMatch(match); err != nil {
		return nil, fmt.Errorf("match %s: %w", id, err)
	}
	return match, nil
}

// VerifyMatch replays every recorded round of a match. Besides scores it
// checks round numbering, the dealer rotation, moon shots and that the
// match ends exactly when some seat reaches the terminal score.
func VerifyMatch(match *storage.MatchRecord) error {
	var scores [player.NumSeats]int
	for i := range match.Rounds {
		rec := &match.Rounds[i]
		if rec.Number != i+1 {
			return fmt.Errorf("round %d recorded as %d: %w", i+1, rec.Number, apperrors.ErrInconsistent)
		}
		if terminal(scores) {
			return fmt.Errorf("round %d recorded after the game ended: %w", rec.Number, apperrors.ErrInconsistent)
		}
		moves, err := rec.Moves()
		if err != nil {
			return fmt.Errorf("round %d: %w", rec.Number, err)
		}
		if len(moves) > 0 && int(moves[0].Seat) != rec.DealerSeat {
			return fmt.Errorf("round %d dealer %s, recorded %d: %w", rec.Number, moves[0].Seat, rec.DealerSeat, apperrors.ErrInconsistent)
		}
		if i > 0 && player.Seat(match.Rounds[i-1].DealerSeat).Next() != player.Seat(rec.DealerSeat) {
			return fmt.Errorf("round %d dealer %d does not follow %d: %w", rec.Number, rec.DealerSeat, match.Rounds[i-1].DealerSeat, apperrors.ErrInconsistent)
		}
		r, err := replayRound(rec.Number, moves)
		if err != nil {
			return fmt.Errorf("round %d: %w", rec.Number, err)
		}

		result := game.ScoreRound(scores, r.WonPiles())
		if result.Scores != rec.Scores || result.Points != rec.Points {
			return fmt.Errorf("round %d scores %v, recorded %v: %w", rec.Number, result.Scores, rec.Scores, apperrors.ErrInconsistent)
		}
		shotMoon := make([]int, len(result.ShotMoon))
		for j, seat := range result.ShotMoon {
			shotMoon[j] = int(seat)
		}
		if !slices.Equal(shotMoon, rec.ShotMoon) {
			return fmt.Errorf("round %d moon %v, recorded %v: %w", rec.Number, shotMoon, rec.ShotMoon, apperrors.ErrInconsistent)
		}
		scores = result.Scores
	}
	if !terminal(scores) {
		return fmt.Errorf("match ends at %v before any seat reaches %d: %w", scores, game.TerminalScore, apperrors.ErrInconsistent)
	}
	if scores != match.Scores {
		return fmt.Errorf("final scores %v, recorded %v: %w", scores, match.Scores, apperrors.ErrInconsistent)
	}
	return nil
}

func terminal(scores [player.NumSeats]int) bool {
	return slices.ContainsFunc(scores[:], func(s int) bool { return s <= game.TerminalScore })
}

func replayRound(number int, moves []action.Move) (*round.Round, error) {
	if len(moves) == 0 || moves[0].Kind != action.DealHandMove {
		return nil, fmt.Errorf("ledger does not start with a deal: %w", apperrors.ErrInconsistent)
	}
	r, err := round.NewFromDeck(number, moves[0].Seat, moves[0].ShuffledDeck)
	if err != nil {
		return nil, err
	}
	if err := r.DealHands(); err != nil {
		return nil, err
	}

	for i, m := range moves[1:] {
		if m.Seat != r.CurrentSeat() {
			return nil, fmt.Errorf("move %d by %s, expected %s: %w", i+1, m.Seat, r.CurrentSeat(), apperrors.ErrIllegalAction)
		}
		legal, err := rule.LegalActions(r)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(legal, m.Action) {
			return nil, fmt.Errorf("move %d %s: %w", i+1, m, apperrors.ErrIllegalAction)
		}
		switch m.Kind {
		case action.TradeCardMove:
			err = r.TradeCard(m.Action)
		case action.PlayCardMove:
			err = r.PlayCard(m.Action)
		default:
			err = fmt.Errorf("move %d: %w", i+1, apperrors.ErrUnknownAction)
		}
		if err != nil {
			return nil, err
		}
	}
	if !r.IsOver() {
		return nil, fmt.Errorf("ledger ends before the round is over: %w", apperrors.ErrInconsistent)
	}
	return r, nil
}
