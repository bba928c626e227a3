package view

import (
	"fmt"
	"strings"

	"github.com/palemoky/maria/internal/arena"
	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/storage"
	"github.com/palemoky/maria/internal/ui/common"
)

const maxNameLen = 12

// RenderRoundResult 一局结算
func RenderRoundResult(r game.RoundResult) string {
	var sb strings.Builder
	sb.WriteString(common.HeaderStyle.Render(fmt.Sprintf("第 %d 局结算", r.Number)))
	sb.WriteString("\n")
	for seat := range player.NumSeats {
		line := fmt.Sprintf("%s  本局 %4d  累计 %4d", player.Seat(seat), r.Points[seat], r.Scores[seat])
		for _, shooter := range r.ShotMoon {
			if int(shooter) == seat {
				line += " " + common.MoonIcon
			}
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// RenderResult 评测结果：每个座位的策略与平均收益
func RenderResult(r *arena.Result) string {
	var sb strings.Builder
	sb.WriteString(common.TitleStyle(fmt.Sprintf("共 %d 场 / %d 局", r.Games, r.Rounds)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-4s %-12s %10s %6s %6s\n", "座位", "策略", "平均收益", "胜场", "全收"))

	best := r.AveragePayoffs[0]
	for _, avg := range r.AveragePayoffs {
		best = max(best, avg)
	}
	for seat := range player.NumSeats {
		line := fmt.Sprintf("%-4s %-12s %10.2f %6d %6d",
			player.Seat(seat),
			common.TruncateName(r.Agents[seat], maxNameLen),
			r.AveragePayoffs[seat],
			r.Wins[seat],
			r.MoonShots[seat],
		)
		if r.Games > 0 && r.AveragePayoffs[seat] == best {
			line += " " + common.WinnerIcon
		}
		sb.WriteString(line + "\n")
	}
	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderLeaderboard 排行榜
func RenderLeaderboard(entries []storage.LeaderboardEntry) string {
	if len(entries) == 0 {
		return common.GrayStyle.Render("暂无排行数据")
	}
	var sb strings.Builder
	sb.WriteString(common.HeaderStyle.Render("排行榜"))
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%2d. %-12s 平均 %8.2f  胜率 %5.1f%%  场次 %d\n",
			e.Rank, common.TruncateName(e.Name, maxNameLen), e.AveragePayoff, e.WinRate*100, e.TotalGames))
	}
	return strings.TrimRight(sb.String(), "\n")
}
