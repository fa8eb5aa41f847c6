package util

import (
	"strings"
	"unicode"
)

// SanitizeLine trims a single-line form value, strips control characters and
// caps it at maxLen runes. Newlines are removed outright so values can never
// smuggle extra headers into outbound email.
func SanitizeLine(value string, maxLen int) string {
	return sanitize(value, maxLen, false)
}

// SanitizeText trims a multi-line form value, keeping newlines but stripping
// every other control character, capped at maxLen runes.
func SanitizeText(value string, maxLen int) string {
	return sanitize(value, maxLen, true)
}

func sanitize(value string, maxLen int, keepNewlines bool) string {
	var b strings.Builder
	for _, r := range value {
		if r == '\n' && keepNewlines {
			b.WriteRune(r)
			continue
		}
		if r == '\r' || unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	out := strings.TrimSpace(b.String())
	if maxLen > 0 {
		runes := []rune(out)
		if len(runes) > maxLen {
			out = strings.TrimSpace(string(runes[:maxLen]))
		}
	}
	return out
}
