package player

import (
	"fmt"
	"slices"

	"github.com/palemoky/maria/internal/apperrors"
	"github.com/palemoky/maria/internal/game/card"
)

// Seat 座位号，按顺时针 N、E、S、W
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

// NoSeat 没有行动玩家（尚未开局）
const NoSeat Seat = -1

// NumSeats 玩家人数
const NumSeats = 4

var seatNames = [NumSeats]string{"N", "E", "S", "W"}

func (s Seat) String() string {
	if s.Valid() {
		return seatNames[s]
	}
	return fmt.Sprintf("Seat(%d)", int(s))
}

// Valid 座位号是否在 0-3
func (s Seat) Valid() bool {
	return s >= North && s <= West
}

// Next 顺时针下一个座位
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Player 一个座位上的玩家及其手牌
type Player struct {
	Seat Seat
	Hand []card.Card
}

// New 创建玩家，座位号非法时返回错误
func New(seat Seat) (*Player, error) {
	if !seat.Valid() {
		return nil, fmt.Errorf("seat %d: %w", int(seat), apperrors.ErrInvalidSeat)
	}
	return &Player{Seat: seat}, nil
}

// AddCard 加入一张牌
func (p *Player) AddCard(c card.Card) {
	p.Hand = append(p.Hand, c)
}

// RemoveCard 打出或传出一张牌，不在手中时返回错误
func (p *Player) RemoveCard(c card.Card) error {
	hand, ok := card.RemoveCard(p.Hand, c)
	if !ok {
		return fmt.Errorf("%s 手中没有 %s: %w", p.Seat, c, apperrors.ErrIllegalAction)
	}
	p.Hand = hand
	return nil
}

// Has 是否持有某张牌
func (p *Player) Has(c card.Card) bool {
	return slices.Contains(p.Hand, c)
}

// SortHand 按 card id 排序
func (p *Player) SortHand() {
	card.SortByID(p.Hand)
}

// Clone 深拷贝
func (p *Player) Clone() *Player {
	return &Player{Seat: p.Seat, Hand: slices.Clone(p.Hand)}
}

func (p *Player) String() string {
	return p.Seat.String()
}
