package common

// TruncateName 名称超过 maxLen 个字符时截断并加省略号
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if maxLen <= 0 {
		return ""
	}
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}
