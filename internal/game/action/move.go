package action

import (
	"fmt"
	"slices"

	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
)

// MoveKind 记录类型
type MoveKind int

const (
	DealHandMove  MoveKind = iota + 1 // 发牌
	PlayCardMove                      // 出牌
	TradeCardMove                     // 传牌
)

// Move 本局记录表中的一条记录，写入后不再修改
//
// DealHandMove 只使用 Seat（发牌员）和 ShuffledDeck；
// 另外两种使用 Seat（行动玩家）和 Action。
// Hidden 为真时牌面已被屏蔽，只保留类型和座位。
type Move struct {
	Kind         MoveKind
	Seat         player.Seat
	Action       Action
	ShuffledDeck []card.Card
	Hidden       bool
}

// NewDealHand 发牌记录，每局一条
func NewDealHand(dealer player.Seat, shuffled []card.Card) Move {
	return Move{Kind: DealHandMove, Seat: dealer, ShuffledDeck: slices.Clone(shuffled)}
}

// NewPlayerMove 按动作类型生成出牌或传牌记录
func NewPlayerMove(seat player.Seat, a Action) Move {
	kind := PlayCardMove
	if a.Kind == TradeCard {
		kind = TradeCardMove
	}
	return Move{Kind: kind, Seat: seat, Action: a}
}

// Redacted 屏蔽牌面后的记录，用于其他座位的视角
func (m Move) Redacted() Move {
	return Move{Kind: m.Kind, Seat: m.Seat, Action: Action{Kind: m.Action.Kind}, Hidden: true}
}

// Card 出牌/传牌记录对应的牌；Hidden 记录没有意义
func (m Move) Card() card.Card {
	return m.Action.Card
}

func (m Move) String() string {
	if m.Hidden {
		switch m.Kind {
		case DealHandMove:
			return fmt.Sprintf("%s deal", m.Seat)
		case TradeCardMove:
			return fmt.Sprintf("%s trades ??", m.Seat)
		}
	}
	switch m.Kind {
	case DealHandMove:
		return fmt.Sprintf("%s deal shuffled_deck=[%s]", m.Seat, card.Join(m.ShuffledDeck))
	case PlayCardMove:
		return fmt.Sprintf("%s plays %s", m.Seat, m.Action)
	case TradeCardMove:
		return fmt.Sprintf("%s trades %s", m.Seat, m.Action)
	default:
		return fmt.Sprintf("%s ?", m.Seat)
	}
}

// CloneMoves 拷贝记录表；ShuffledDeck 写入后只读，可以共享
func CloneMoves(moves []Move) []Move {
	return slices.Clone(moves)
}
