package crypto

import "strings"

// SanitizeKeyword removes every character outside [a-zA-Z0-9].
func SanitizeKeyword(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, raw)
}

// ProcessKeyword sanitizes raw and keeps at most length/3 characters of it.
func ProcessKeyword(raw string, length int) string {
	keyword := SanitizeKeyword(raw)
	limit := max(length/3, 0)
	if len(keyword) > limit {
		keyword = keyword[:limit]
	}
	return keyword
}
