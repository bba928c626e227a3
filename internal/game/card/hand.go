package card

import (
	"fmt"
	"slices"
	"strings"
)

// SortByID 按 card id 升序排列手牌
func SortByID(hand []Card) {
	slices.SortFunc(hand, func(a, b Card) int {
		return a.ID() - b.ID()
	})
}

// RemoveCard 从手牌中移除一张牌，返回新的手牌
func RemoveCard(hand []Card, c Card) ([]Card, bool) {
	idx := slices.Index(hand, c)
	if idx < 0 {
		return hand, false
	}
	return slices.Delete(hand, idx, idx+1), true
}

// HasSuit 手牌中是否有指定花色
func HasSuit(hand []Card, s Suit) bool {
	return slices.ContainsFunc(hand, func(c Card) bool { return c.Suit == s })
}

// FilterSuit 返回手牌中指定花色的牌
func FilterSuit(hand []Card, s Suit) []Card {
	var result []Card
	for _, c := range hand {
		if c.Suit == s {
			result = append(result, c)
		}
	}
	return result
}

// WithoutPoints 返回手牌中的非分牌
func WithoutPoints(hand []Card) []Card {
	var result []Card
	for _, c := range hand {
		if !c.IsPoint() {
			result = append(result, c)
		}
	}
	return result
}

// ParseCards 解析空格或逗号分隔的一组牌，如 "2C QS TH"
func ParseCards(input string) ([]Card, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ','
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, fmt.Errorf("解析 %q 失败: %w", input, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Join 以空格连接牌的短格式
func Join(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
