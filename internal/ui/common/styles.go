// Package common provides shared styles and utilities for text rendering.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/maria/internal/game/card"
)

// Icon constants
const (
	DealerIcon  = "🎴"
	CurrentIcon = "👉"
	MoonIcon    = "🌕"
	WinnerIcon  = "🏆"
)

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// CardStyle 红色花色用红色，黑色花色用黑色
func CardStyle(c card.Card) lipgloss.Style {
	if c.Suit.IsRed() {
		return RedStyle
	}
	return BlackStyle
}
