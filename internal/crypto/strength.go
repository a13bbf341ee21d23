package crypto

import (
	"strings"
	"unicode/utf8"
)

// MaxScore is the upper bound of a strength score.
const MaxScore = 50

// StrengthLabel is the categorical tier of a strength score.
type StrengthLabel string

const (
	LabelVeryWeak StrengthLabel = "very_weak"
	LabelWeak     StrengthLabel = "weak"
	LabelFair     StrengthLabel = "fair"
	LabelGood     StrengthLabel = "good"
	LabelStrong   StrengthLabel = "strong"
)

// Analysis holds the facts the strength score was computed from.
type Analysis struct {
	Length           int  `json:"length"`
	HasLower         bool `json:"has_lower"`
	HasUpper         bool `json:"has_upper"`
	HasNumber        bool `json:"has_number"`
	HasSymbol        bool `json:"has_symbol"`
	HasRepeatRun     bool `json:"has_repeat_run"`
	HasSequentialRun bool `json:"has_sequential_run"`
	HasKeyword       bool `json:"has_keyword"`
	KeywordLength    int  `json:"keyword_length"`
}

// StrengthReport is the result of scoring a password.
type StrengthReport struct {
	Score    int           `json:"score"`
	Label    StrengthLabel `json:"label"`
	Analysis Analysis      `json:"analysis"`
}

// Score rates password on a 0-50 scale. Composition bonuses reflect the characters actually
// present in password, not the classes enabled in opts; only opts.Keyword is consulted.
// The keyword is matched as given, ignoring case. A blank keyword earns nothing.
func Score(password string, opts GeneratorOptions) StrengthReport {
	keyword := opts.Keyword
	if strings.TrimSpace(keyword) == "" {
		keyword = ""
	}
	a := analyze(password, keyword)

	score := 0
	for _, threshold := range [...]int{8, 12, 16, 20} {
		if a.Length >= threshold {
			score += 5
		}
	}

	if a.HasLower {
		score += 2
	}
	if a.HasUpper {
		score += 2
	}
	if a.HasNumber {
		score += 2
	}
	if a.HasSymbol {
		score += 3
	}
	if a.HasKeyword {
		score += min(3, a.KeywordLength)
	}

	if a.HasRepeatRun {
		score -= 3
	}
	if a.HasSequentialRun {
		score -= 2
	}
	if a.Length < 8 {
		score -= 10
	}

	score = min(max(score, 0), MaxScore)

	return StrengthReport{
		Score:    score,
		Label:    LabelFor(score),
		Analysis: a,
	}
}

// LabelFor maps a score to its tier. Each tier includes its lower bound.
func LabelFor(score int) StrengthLabel {
	switch {
	case score < 10:
		return LabelVeryWeak
	case score < 20:
		return LabelWeak
	case score < 30:
		return LabelFair
	case score < 40:
		return LabelGood
	default:
		return LabelStrong
	}
}

func analyze(password, keyword string) Analysis {
	a := Analysis{
		Length:        utf8.RuneCountInString(password),
		KeywordLength: utf8.RuneCountInString(keyword),
	}

	var prev, prev2 rune
	for i, r := range []rune(password) {
		switch {
		case r >= 'a' && r <= 'z':
			a.HasLower = true
		case r >= 'A' && r <= 'Z':
			a.HasUpper = true
		case r >= '0' && r <= '9':
			a.HasNumber = true
		default:
			a.HasSymbol = true
		}

		if i >= 2 {
			if r == prev && prev == prev2 {
				a.HasRepeatRun = true
			}
			if isSequential(prev2, prev, r) {
				a.HasSequentialRun = true
			}
		}
		prev2, prev = prev, r
	}

	if keyword != "" {
		a.HasKeyword = strings.Contains(strings.ToLower(password), strings.ToLower(keyword))
	}

	return a
}

// isSequential reports whether a, b, c form one of the windows abc..xyz or 012..789,
// ignoring letter case.
func isSequential(a, b, c rune) bool {
	a, b, c = foldASCII(a), foldASCII(b), foldASCII(c)
	if b != a+1 || c != b+1 {
		return false
	}
	return (a >= 'a' && c <= 'z') || (a >= '0' && c <= '9')
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
