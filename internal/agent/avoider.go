package agent

import (
	"slices"

	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/rule"
)

// NameAvoider 躲分策略
const NameAvoider = "avoider"

// Avoider 躲分策略：
// 传牌时送走黑桃 Q 和大牌；跟牌时出不会赢的最大牌；垫牌时先垫黑桃 Q 再垫大红心；
// 领出时出最小的牌，点数相同时选外面剩余最多的花色。
type Avoider struct{}

func (Avoider) Name() string { return NameAvoider }

func (Avoider) Step(state *game.State) (action.Action, error) {
	if err := checkLegal(state); err != nil {
		return action.Action{}, err
	}
	legal := state.LegalActions
	if legal[0].Kind == action.TradeCard {
		return slices.MaxFunc(legal, func(a, b action.Action) int {
			return danger(a.Card) - danger(b.Card)
		}), nil
	}

	trick := state.Trick
	if len(trick) == rule.TrickSize {
		trick = nil
	}
	if len(trick) == 0 {
		return lead(state, legal), nil
	}
	return follow(trick, legal), nil
}

// danger 传牌优先级，越大越先送走
func danger(c card.Card) int {
	switch {
	case c == card.QueenOfSpades:
		return 100
	case c.Suit == card.Spades && c.Rank > card.RankQ:
		return 80 + int(c.Rank)
	case c.Suit == card.Hearts:
		return 50 + int(c.Rank)
	default:
		return int(c.Rank)
	}
}

func lead(state *game.State, legal []action.Action) action.Action {
	remaining := CountState(state).Remaining()
	return slices.MinFunc(legal, func(a, b action.Action) int {
		if a.Card.Rank != b.Card.Rank {
			return int(a.Card.Rank) - int(b.Card.Rank)
		}
		return remaining[b.Card.Suit] - remaining[a.Card.Suit]
	})
}

func follow(trick []action.Move, legal []action.Action) action.Action {
	led := trick[0].Card().Suit
	if legal[0].Card.Suit != led {
		return discard(legal)
	}

	winning := trick[0].Card().Rank
	for _, m := range trick[1:] {
		if c := m.Card(); c.Suit == led && c.Rank > winning {
			winning = c.Rank
		}
	}

	var under []action.Action
	for _, a := range legal {
		if a.Card.Rank < winning {
			under = append(under, a)
		}
	}
	byRank := func(a, b action.Action) int { return int(a.Card.Rank) - int(b.Card.Rank) }
	switch {
	case len(under) > 0:
		return slices.MaxFunc(under, byRank)
	case len(trick) == rule.TrickSize-1 && rule.Points(rule.TrickCards(trick)) == 0:
		// 最后一家且没有分，赢下也无妨，顺便出掉大牌
		return slices.MaxFunc(legal, byRank)
	default:
		return slices.MinFunc(legal, byRank)
	}
}

// discard 垫牌：先黑桃 Q，再最大的红心，最后最大的牌
func discard(legal []action.Action) action.Action {
	return slices.MaxFunc(legal, func(a, b action.Action) int {
		return discardPriority(a.Card) - discardPriority(b.Card)
	})
}

func discardPriority(c card.Card) int {
	switch {
	case c == card.QueenOfSpades:
		return 100
	case c.Suit == card.Hearts:
		return 50 + int(c.Rank)
	default:
		return int(c.Rank)
	}
}
