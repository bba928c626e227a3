package round

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/dealer"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/game/rule"
)

const (
	// HandSize 每人发牌数
	HandSize = card.DeckSize / player.NumSeats
	// TradeSize 每人传出的牌数
	TradeSize = 3
)

// Round 一局的全部可变状态
//
// 每张牌在任意时刻只属于以下之一：某家手牌、正在进行的一墩、传牌堆、赢牌堆、未发的牌堆。
// 记录表 moves 只追加，是重建一墩的唯一依据。
type Round struct {
	number     int
	dealerSeat player.Seat
	dealer     *dealer.Dealer
	players    [player.NumSeats]*player.Player
	current    player.Seat
	playCount  int
	wonPiles   [player.NumSeats][]card.Card
	tradePiles [player.NumSeats][]card.Card
	received   [player.NumSeats][]card.Card
	traded     bool
	moves      []action.Move
}

// New 创建一局并洗牌，记录发牌，当前玩家暂为发牌员
func New(number int, dealerSeat player.Seat, rng *rand.Rand) (*Round, error) {
	return newRound(number, dealerSeat, dealer.New(rng))
}

// NewFromDeck 用记录下的洗牌结果重建一局
func NewFromDeck(number int, dealerSeat player.Seat, shuffled []card.Card) (*Round, error) {
	if len(shuffled) != card.DeckSize {
		return nil, fmt.Errorf("洗牌结果应为 %d 张，实际 %d 张: %w", card.DeckSize, len(shuffled), apperrors.ErrInconsistent)
	}
	return newRound(number, dealerSeat, dealer.NewFromDeck(shuffled))
}

func newRound(number int, dealerSeat player.Seat, d *dealer.Dealer) (*Round, error) {
	if !dealerSeat.Valid() {
		return nil, fmt.Errorf("dealer seat %d: %w", int(dealerSeat), apperrors.ErrInvalidSeat)
	}
	r := &Round{
		number:     number,
		dealerSeat: dealerSeat,
		dealer:     d,
		current:    dealerSeat,
	}
	for i := range player.NumSeats {
		p, err := player.New(player.Seat(i))
		if err != nil {
			return nil, err
		}
		r.players[i] = p
	}
	r.moves = append(r.moves, action.NewDealHand(dealerSeat, d.ShuffledDeck()))
	return r, nil
}

// DealHands 依座位顺序每人发 13 张并排序，然后由持梅花 2 的玩家开始
func (r *Round) DealHands() error {
	for _, p := range r.players {
		if err := r.dealer.Deal(p, HandSize); err != nil {
			return err
		}
		p.SortHand()
	}
	r.current = r.twoOfClubsHolder()
	return nil
}

func (r *Round) twoOfClubsHolder() player.Seat {
	for _, p := range r.players {
		if p.Has(card.TwoOfClubs) {
			return p.Seat
		}
	}
	return r.current
}

// Number 局数，从 1 开始
func (r *Round) Number() int { return r.number }

// DealerSeat 发牌员座位
func (r *Round) DealerSeat() player.Seat { return r.dealerSeat }

// CurrentSeat 当前行动玩家
func (r *Round) CurrentSeat() player.Seat { return r.current }

// PlayCount 本局已出牌数
func (r *Round) PlayCount() int { return r.playCount }

// Player 返回指定座位的玩家
func (r *Round) Player(seat player.Seat) *player.Player { return r.players[seat] }

// Hand 返回指定座位手牌的拷贝
func (r *Round) Hand(seat player.Seat) []card.Card {
	return slices.Clone(r.players[seat].Hand)
}

// Hands 返回所有手牌的拷贝
func (r *Round) Hands() [player.NumSeats][]card.Card {
	var hands [player.NumSeats][]card.Card
	for i, p := range r.players {
		hands[i] = slices.Clone(p.Hand)
	}
	return hands
}

// WonPiles 返回各家赢牌堆的拷贝，按收牌顺序
func (r *Round) WonPiles() [player.NumSeats][]card.Card {
	return clonePiles(r.wonPiles)
}

// TradePiles 返回各家收到但尚未并入手牌的传牌；传牌结束后为空
func (r *Round) TradePiles() [player.NumSeats][]card.Card {
	return clonePiles(r.tradePiles)
}

// Received 传牌结束后各家收到的 3 张牌
func (r *Round) Received() [player.NumSeats][]card.Card {
	return clonePiles(r.received)
}

// Moves 返回记录表的拷贝
func (r *Round) Moves() []action.Move {
	return action.CloneMoves(r.moves)
}

// MoveCount 记录表长度
func (r *Round) MoveCount() int { return len(r.moves) }

// Stock 未发的牌
func (r *Round) Stock() []card.Card { return r.dealer.Stock() }

// ShuffledDeck 本局洗牌结果
func (r *Round) ShuffledDeck() []card.Card { return r.dealer.ShuffledDeck() }

// IsOver 所有手牌都打完时本局结束
func (r *Round) IsOver() bool {
	for _, p := range r.players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// IsTrading 四家传牌堆收满 3 张之前处于传牌阶段
func (r *Round) IsTrading() bool {
	return !r.traded
}

func (r *Round) tradePilesFull() bool {
	for _, pile := range r.tradePiles {
		if len(pile) < TradeSize {
			return false
		}
	}
	return true
}

// Phase 当前阶段
func (r *Round) Phase() Phase {
	switch {
	case r.IsOver():
		return PhaseOver
	case r.IsTrading():
		return PhaseTrading
	default:
		return PhasePlaying
	}
}

// TrickMoves 从记录表末尾重建正在进行（或刚完成）的一墩
//
// 张数为 playCount%4；整除且已出过牌时为 4。
func (r *Round) TrickMoves() ([]action.Move, error) {
	if r.playCount == 0 {
		return nil, nil
	}
	count := r.playCount % rule.TrickSize
	if count == 0 {
		count = rule.TrickSize
	}
	if count > len(r.moves) {
		return nil, fmt.Errorf("一墩需要 %d 条出牌记录，记录表只有 %d 条: %w", count, len(r.moves), apperrors.ErrInconsistent)
	}
	tail := r.moves[len(r.moves)-count:]
	trick := make([]action.Move, 0, count)
	for _, m := range tail {
		if m.Kind == action.PlayCardMove {
			trick = append(trick, m)
		}
	}
	if len(trick) != count {
		return nil, fmt.Errorf("一墩应有 %d 张，重建得到 [%s]: %w", count, card.Join(rule.TrickCards(trick)), apperrors.ErrInconsistent)
	}
	return trick, nil
}

// CurrentTrick 正在进行的一墩；刚完成一墩或尚未出牌时为空
func (r *Round) CurrentTrick() ([]action.Move, error) {
	if r.playCount%rule.TrickSize == 0 {
		return nil, nil
	}
	return r.TrickMoves()
}

// TradeCard 当前玩家把一张牌传给顺时针下家
//
// 下家收满 3 张后轮到下家传；四家都收满后并入手牌、重新排序，由持梅花 2 的玩家开始出牌。
func (r *Round) TradeCard(a action.Action) error {
	if a.Kind != action.TradeCard || !r.IsTrading() || r.IsOver() {
		return fmt.Errorf("%s 阶段不能传牌 %s: %w", r.Phase(), a, apperrors.ErrIllegalAction)
	}
	current := r.players[r.current]
	if err := current.RemoveCard(a.Card); err != nil {
		return err
	}
	r.moves = append(r.moves, action.NewPlayerMove(current.Seat, a))

	tradee := r.current.Next()
	r.tradePiles[tradee] = append(r.tradePiles[tradee], a.Card)
	if len(r.tradePiles[tradee]) == TradeSize {
		r.current = tradee
	}

	if r.tradePilesFull() {
		r.finishTrading()
	}
	return nil
}

// finishTrading 四家同时把传牌并入手牌
func (r *Round) finishTrading() {
	for i, pile := range r.tradePiles {
		for _, c := range pile {
			r.players[i].AddCard(c)
		}
		r.received[i] = pile
		r.tradePiles[i] = nil
	}
	for _, p := range r.players {
		p.SortHand()
	}
	r.traded = true
	r.current = r.twoOfClubsHolder()
}

// PlayCard 当前玩家出一张牌；凑满一墩时结算赢家，由赢家收牌并领出下一墩
func (r *Round) PlayCard(a action.Action) error {
	if a.Kind != action.PlayCard || r.IsTrading() || r.IsOver() {
		return fmt.Errorf("%s 阶段不能出牌 %s: %w", r.Phase(), a, apperrors.ErrIllegalAction)
	}
	current := r.players[r.current]
	if err := current.RemoveCard(a.Card); err != nil {
		return err
	}
	r.moves = append(r.moves, action.NewPlayerMove(current.Seat, a))
	r.playCount++

	trick, err := r.TrickMoves()
	if err != nil {
		return err
	}
	if len(trick) < rule.TrickSize {
		r.current = r.current.Next()
		return nil
	}

	winner, err := rule.TrickWinner(trick)
	if err != nil {
		return err
	}
	r.wonPiles[winner] = append(r.wonPiles[winner], rule.TrickCards(trick)...)
	r.current = winner
	return nil
}

// TricksWon 每家赢得的墩数
func (r *Round) TricksWon() [player.NumSeats]int {
	var tricks [player.NumSeats]int
	for i, pile := range r.wonPiles {
		tricks[i] = len(pile) / rule.TrickSize
	}
	return tricks
}

// Clone 深拷贝，快照与原对象不共享任何可变状态
func (r *Round) Clone() *Round {
	c := &Round{
		number:     r.number,
		dealerSeat: r.dealerSeat,
		dealer:     r.dealer.Clone(),
		current:    r.current,
		playCount:  r.playCount,
		wonPiles:   clonePiles(r.wonPiles),
		tradePiles: clonePiles(r.tradePiles),
		received:   clonePiles(r.received),
		traded:     r.traded,
		moves:      action.CloneMoves(r.moves),
	}
	for i, p := range r.players {
		c.players[i] = p.Clone()
	}
	return c
}

func clonePiles(piles [player.NumSeats][]card.Card) [player.NumSeats][]card.Card {
	var out [player.NumSeats][]card.Card
	for i, pile := range piles {
		out[i] = slices.Clone(pile)
	}
	return out
}
