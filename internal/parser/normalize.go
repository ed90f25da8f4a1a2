package parser

import "strings"

// NormalizeHeader 规范化表头：去 BOM、去首尾空白、转小写、仅保留 ASCII 字母数字
// 纯函数，任意输入都有定义（空串规范化为空串），且幂等
func NormalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	header = strings.TrimSpace(header)
	header = strings.ToLower(header)

	var b strings.Builder
	b.Grow(len(header))
	for _, r := range header {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
