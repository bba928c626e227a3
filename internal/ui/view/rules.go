package view

import "github.com/palemoky/maria/internal/ui/common"

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb string

	sb += "【游戏目标】\n"
	sb += "四人各 13 张牌，尽量少收分牌；任意一家累计分不高于 -51 时游戏结束，累计分最高者获胜\n\n"

	sb += "【传牌】\n"
	sb += "开局每人依次向顺时针下家传 3 张牌，四家都收满后并入手牌\n\n"

	sb += "【出牌】\n"
	sb += "1. 持梅花 2 的玩家必须首先打出梅花 2\n"
	sb += "2. 有领出花色的牌必须跟出；没有时可以垫任意牌\n"
	sb += "3. 领出花色中点数最大的牌赢得这一墩，赢家领出下一墩\n"
	sb += "4. 红心和黑桃 Q 未被收过之前，不能用它们领出（手里只有分牌时除外）\n\n"

	sb += "【计分】\n"
	sb += "• 每张红心 -1，黑桃 Q -13\n"
	sb += "• 收齐全部分牌（-26）即全收：\n"
	sb += "  赢下全部 13 墩：自己 +26，其他三家各 -52\n"
	sb += "  否则若最高分不低于 -25：自己 +52\n"
	sb += "  否则：自己 +26，其他三家各 -26\n"

	return common.BoxStyle.Render(sb)
}
