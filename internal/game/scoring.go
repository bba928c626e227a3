package game

import (
	"github.com/palemoky/maria/internal/game/card"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/game/rule"
)

const (
	// MoonPoints 全部红心加黑桃 Q 的分值
	MoonPoints = -26
	// MoonSafeScore 结算后最高累计分不低于此值时，射月者改为 +26
	MoonSafeScore = -25
	// allTricksCards 赢下全部 13 墩时赢牌堆的张数
	allTricksCards = card.DeckSize
)

// RoundScore 一局结算的结果
type RoundScore struct {
	Points   [player.NumSeats]int // 本局失分
	ShotMoon []player.Seat        // 射月的座位
	Scores   [player.NumSeats]int // 调整后的累计分
}

// ScoreRound 结算一局
//
// 先把每家赢牌堆的分值计入累计分；再对本局失分恰为 -26 的座位按座位顺序做射月调整：
//   - 赢下全部 13 墩：自己 +26，其余三家各 -52
//   - 否则若最高累计分 >= -25：自己 +52
//   - 否则：自己 +26，其余三家各 -26
//
// 每个射月座位的判断都基于第一步之后的分数，不受同一轮中前面调整的影响。
func ScoreRound(scores [player.NumSeats]int, wonPiles [player.NumSeats][]card.Card) RoundScore {
	var result RoundScore
	var after [player.NumSeats]int
	for seat, pile := range wonPiles {
		result.Points[seat] = rule.Points(pile)
		after[seat] = scores[seat] + result.Points[seat]
	}

	best := after[0]
	for _, s := range after[1:] {
		best = max(best, s)
	}

	result.Scores = after
	for seat, pile := range wonPiles {
		if result.Points[seat] != MoonPoints {
			continue
		}
		shooter := player.Seat(seat)
		result.ShotMoon = append(result.ShotMoon, shooter)
		switch {
		case len(pile) == allTricksCards:
			result.Scores[seat] += -MoonPoints
			penalizeOthers(&result.Scores, shooter, 2*MoonPoints)
		case best >= MoonSafeScore:
			result.Scores[seat] += -2 * MoonPoints
		default:
			result.Scores[seat] += -MoonPoints
			penalizeOthers(&result.Scores, shooter, MoonPoints)
		}
	}
	return result
}

func penalizeOthers(scores *[player.NumSeats]int, shooter player.Seat, delta int) {
	for seat := range scores {
		if player.Seat(seat) != shooter {
			scores[seat] += delta
		}
	}
}
