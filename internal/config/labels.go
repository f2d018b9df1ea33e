package config

import "strings"

// ParseLabelList はカンマ区切りのラベル指定を分割し、前後の空白を除いて空要素を捨てる
func ParseLabelList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return FilterEmpty(parts)
}

// FilterEmpty は空文字列を取り除いたスライスを返す。何度適用しても結果は変わらない
func FilterEmpty(labels []string) []string {
	filtered := make([]string, 0, len(labels))
	for _, label := range labels {
		if label != "" {
			filtered = append(filtered, label)
		}
	}
	return filtered
}
