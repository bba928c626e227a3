package game

import (
	"fmt"
	"slices"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/game/round"
	"github.com/palemoky/maria/internal/game/rule"
)

// PerfectInformation 表示能看到所有手牌的调试视角
const PerfectInformation player.Seat = -2

// State 某个视角下的游戏状态
type State struct {
	Viewer       player.Seat
	CurrentSeat  player.Seat
	DealerSeat   player.Seat
	Phase        round.Phase
	RoundNumber  int
	MoveCount    int
	Hands        [player.NumSeats][]card.Card // 只包含视角可见的手牌
	Trick        []action.Move                // 正在进行或刚完成的一墩
	TradePiles   [player.NumSeats][]card.Card
	Received     [player.NumSeats][]card.Card
	WonPiles     [player.NumSeats][]card.Card
	Scores       [player.NumSeats]int
	Moves        []action.Move
	LegalActions []action.Action // 仅当视角就是当前玩家（或完全信息）时填充
	Terminal     bool
}

// TrickBySeat 按座位列出这一墩中每家出的牌
func (s *State) TrickBySeat() [player.NumSeats]*card.Card {
	var bySeat [player.NumSeats]*card.Card
	for _, m := range s.Trick {
		c := m.Card()
		bySeat[m.Seat] = &c
	}
	return bySeat
}

// Hand 视角玩家的手牌
func (s *State) Hand() []card.Card {
	if !s.Viewer.Valid() {
		return nil
	}
	return s.Hands[s.Viewer]
}

// State 返回某个座位视角的状态，只包含该座位自己的手牌
// 传入 PerfectInformation 可得到完整视角
func (g *Game) State(viewer player.Seat) (*State, error) {
	if g.round == nil {
		return nil, fmt.Errorf("游戏尚未开始: %w", apperrors.ErrIllegalAction)
	}
	if viewer != PerfectInformation && !viewer.Valid() {
		return nil, fmt.Errorf("viewer %d: %w", int(viewer), apperrors.ErrInvalidSeat)
	}
	r := g.round
	trick, err := r.TrickMoves()
	if err != nil {
		return nil, err
	}
	s := &State{
		Viewer:      viewer,
		CurrentSeat: r.CurrentSeat(),
		DealerSeat:  r.DealerSeat(),
		Phase:       r.Phase(),
		RoundNumber: g.roundNumber,
		MoveCount:   r.MoveCount(),
		Trick:       trick,
		WonPiles:    r.WonPiles(),
		Scores:      g.scores,
		Moves:       visibleMoves(r.Moves(), viewer),
		Terminal:    g.IsTerminal(),
	}

	hands := r.Hands()
	tradePiles := r.TradePiles()
	received := r.Received()
	for seat := range player.NumSeats {
		if viewer == PerfectInformation || viewer == player.Seat(seat) {
			s.Hands[seat] = hands[seat]
			s.TradePiles[seat] = tradePiles[seat]
			s.Received[seat] = received[seat]
		}
	}

	if viewer == PerfectInformation || viewer == s.CurrentSeat {
		legal, err := g.LegalActions()
		if err != nil {
			return nil, err
		}
		s.LegalActions = legal
	}
	return s, nil
}

// PerfectInformation 完整视角，用于调试和复盘
func (g *Game) PerfectInformation() (*State, error) {
	return g.State(PerfectInformation)
}

// visibleMoves 按视角屏蔽记录表：隐藏洗牌结果，以及既不是自己传出、也不是传给自己的牌
func visibleMoves(moves []action.Move, viewer player.Seat) []action.Move {
	if viewer == PerfectInformation {
		return moves
	}
	for i, m := range moves {
		switch m.Kind {
		case action.DealHandMove:
			moves[i] = m.Redacted()
		case action.TradeCardMove:
			if m.Seat != viewer && m.Seat.Next() != viewer {
				moves[i] = m.Redacted()
			}
		}
	}
	return moves
}

func (g *Game) currentState() (*State, player.Seat, error) {
	current := g.CurrentSeat()
	s, err := g.State(current)
	if err != nil {
		return nil, 0, err
	}
	return s, current, nil
}

// LegalIDs 合法动作编号
func (s *State) LegalIDs() []int {
	return action.IDs(s.LegalActions)
}

// HasLegal 是否可以执行动作 a
func (s *State) HasLegal(a action.Action) bool {
	return slices.Contains(s.LegalActions, a)
}

// TrickCards 这一墩的牌
func (s *State) TrickCards() []card.Card {
	return rule.TrickCards(s.Trick)
}
