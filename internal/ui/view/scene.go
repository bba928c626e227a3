package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/maria/internal/game"
	"github.com/palemoky/maria/internal/game/action"
	"github.com/palemoky/maria/internal/game/player"
	"github.com/palemoky/maria/internal/game/rule"
	"github.com/palemoky/maria/internal/ui/common"
)

// RenderScene 打印当前局面：每家手牌、传牌、这一墩、得分
func RenderScene(s *game.State) string {
	var sb strings.Builder

	sb.WriteString(common.TitleStyle(fmt.Sprintf("第 %d 局 · %s", s.RoundNumber, s.Phase)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("发牌: %s  行动: %s  记录数: %d\n\n", s.DealerSeat, s.CurrentSeat, s.MoveCount))

	boxes := make([]string, 0, player.NumSeats)
	for seat := range player.NumSeats {
		boxes = append(boxes, renderSeat(s, player.Seat(seat)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	sb.WriteString("\n\n")

	sb.WriteString(common.HeaderStyle.Render("本墩"))
	sb.WriteString("\n")
	sb.WriteString(renderTrick(s))
	sb.WriteString("\n")

	if s.Terminal {
		sb.WriteString("\n")
		sb.WriteString(common.TitleStyle("游戏结束"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderSeat(s *game.State, seat player.Seat) string {
	var sb strings.Builder

	title := seat.String()
	if seat == s.DealerSeat {
		title += " " + common.DealerIcon
	}
	if seat == s.CurrentSeat && !s.Terminal {
		title += " " + common.CurrentIcon
	}
	sb.WriteString(common.HeaderStyle.Render(title))
	sb.WriteString("\n")

	if hand := s.Hands[seat]; hand != nil {
		sb.WriteString(RenderHand(hand))
	} else {
		sb.WriteString(common.GrayStyle.Render("(hidden)"))
	}
	sb.WriteString("\n")

	if pile := s.TradePiles[seat]; len(pile) > 0 {
		sb.WriteString("收到: " + RenderCards(pile) + "\n")
	}
	if received := s.Received[seat]; len(received) > 0 {
		sb.WriteString("换入: " + RenderCards(received) + "\n")
	}

	won := s.WonPiles[seat]
	sb.WriteString(fmt.Sprintf("墩数: %d  本局: %d\n", len(won)/rule.TrickSize, rule.Points(won)))
	sb.WriteString(fmt.Sprintf("累计: %d", s.Scores[seat]))

	return common.BoxStyle.Render(sb.String())
}

func renderTrick(s *game.State) string {
	if len(s.Trick) == 0 {
		return common.GrayStyle.Render("-")
	}
	parts := make([]string, len(s.Trick))
	for i, m := range s.Trick {
		parts[i] = fmt.Sprintf("%s:%s", m.Seat, RenderCard(m.Card()))
	}
	return strings.Join(parts, "  ")
}

// RenderLedger 每条记录一行，如 "N plays QS"
func RenderLedger(moves []action.Move) string {
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = fmt.Sprintf("%3d  %s", i, m)
	}
	return strings.Join(lines, "\n")
}
