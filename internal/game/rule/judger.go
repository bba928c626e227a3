package rule

import (
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

// RoundState 计算合法动作所需的只读视图，由 round.Round 实现
type RoundState interface {
	IsOver() bool
	IsTrading() bool
	CurrentSeat() player.Seat
	Hand(seat player.Seat) []card.Card
	PlayCount() int
	TrickMoves() ([]action.Move, error)
	WonPiles() [player.NumSeats][]card.Card
}

// LegalActions 返回当前行动玩家的合法动作，顺序与手牌顺序一致
//
// 局已结束时返回空；传牌阶段手中任意一张都可以传；
// 出牌阶段按跟牌、红心未破不能首攻分牌、首墩必须出梅花 2 的顺序收窄。
func LegalActions(rs RoundState) ([]action.Action, error) {
	if rs.IsOver() {
		return nil, nil
	}

	hand := rs.Hand(rs.CurrentSeat())
	if rs.IsTrading() {
		actions := make([]action.Action, 0, len(hand))
		for _, c := range hand {
			actions = append(actions, action.Trade(c))
		}
		return actions, nil
	}

	cards, err := legalCards(rs, hand)
	if err != nil {
		return nil, err
	}
	actions := make([]action.Action, 0, len(cards))
	for _, c := range cards {
		actions = append(actions, action.Play(c))
	}
	return actions, nil
}

func legalCards(rs RoundState, hand []card.Card) ([]card.Card, error) {
	// 首墩首攻只能出梅花 2
	if rs.PlayCount() == 0 {
		return []card.Card{card.TwoOfClubs}, nil
	}

	trick, err := rs.TrickMoves()
	if err != nil {
		return nil, err
	}

	if len(trick) > 0 && len(trick) < TrickSize {
		led := trick[0].Card().Suit
		if follow := card.FilterSuit(hand, led); len(follow) > 0 {
			return follow, nil
		}
		return hand, nil
	}

	// 首攻
	if !HeartsBroken(rs.WonPiles()) {
		if safe := card.WithoutPoints(hand); len(safe) > 0 {
			return safe, nil
		}
	}
	return hand, nil
}
