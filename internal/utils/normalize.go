package utils

import "strings"

// NormalizeURL URLをhttpsに正規化する
// スキームがない場合はhttpsを付与し、httpはhttpsに変換する
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(trimmed, "https://"):
		return trimmed
	case strings.HasPrefix(trimmed, "http://"):
		return "https://" + strings.TrimPrefix(trimmed, "http://")
	case strings.HasPrefix(trimmed, "//"):
		return "https:" + trimmed
	default:
		return "https://" + trimmed
	}
}
