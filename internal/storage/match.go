package storage

import (
	"fmt"

	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/protocol/codec"
)

// RoundRecord 一局的结算与记录表（用于 Redis 序列化）
type RoundRecord struct {
	Number     int                  `json:"number"`
	DealerSeat int                  `json:"dealer_seat"`
	Points     [player.NumSeats]int `json:"points"`
	ShotMoon   []int                `json:"shot_moon,omitempty"`
	Scores     [player.NumSeats]int `json:"scores"`
	Ledger     []byte               `json:"ledger"` // codec.EncodeMoves 编码
}

// MatchRecord 一场完整对局
type MatchRecord struct {
	ID         string                  `json:"id"`
	Seed       uint64                  `json:"seed"`
	Agents     [player.NumSeats]string `json:"agents"`
	Scores     [player.NumSeats]int    `json:"scores"`
	Rounds     []RoundRecord           `json:"rounds"`
	StartedAt  int64                   `json:"started_at"`
	FinishedAt int64                   `json:"finished_at"`
}

// NewRoundRecord 将一局结算转换为可存储的记录
func NewRoundRecord(result game.RoundResult) (RoundRecord, error) {
	ledger, err := codec.EncodeMoves(result.Moves)
	if err != nil {
		return RoundRecord{}, fmt.Errorf("编码第 %d 局记录失败: %w", result.Number, err)
	}
	rec := RoundRecord{
		Number:     result.Number,
		DealerSeat: int(result.DealerSeat),
		Points:     result.Points,
		Scores:     result.Scores,
		Ledger:     ledger,
	}
	for _, seat := range result.ShotMoon {
		rec.ShotMoon = append(rec.ShotMoon, int(seat))
	}
	return rec, nil
}

// Moves 解码记录表
func (r *RoundRecord) Moves() ([]action.Move, error) {
	return codec.DecodeMoves(r.Ledger)
}

// Winners 累计分最高的座位，可能并列
func (m *MatchRecord) Winners() []player.Seat {
	best := m.Scores[0]
	for _, s := range m.Scores {
		best = max(best, s)
	}
	var winners []player.Seat
	for seat, s := range m.Scores {
		if s == best {
			winners = append(winners, player.Seat(seat))
		}
	}
	return winners
}
