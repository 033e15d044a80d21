package server

import "strings"

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// truncateRunes caps s at max runes without splitting a multi-byte character.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
