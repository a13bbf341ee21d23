package crypto

import (
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// CharacterClass names one of the fixed character sets a password may draw from.
type CharacterClass string

const (
	ClassLowercase CharacterClass = "lowercase"
	ClassUppercase CharacterClass = "uppercase"
	ClassDigit     CharacterClass = "digit"
	ClassSymbol    CharacterClass = "symbol"
)

// classOrder is the iteration order used when seeding a password.
var classOrder = [...]CharacterClass{ClassLowercase, ClassUppercase, ClassDigit, ClassSymbol}

// AllClasses returns every character class in iteration order.
func AllClasses() []CharacterClass {
	return append([]CharacterClass(nil), classOrder[:]...)
}

// Charset returns the characters belonging to the class, or "" for an unknown class.
func (c CharacterClass) Charset() string {
	switch c {
	case ClassLowercase:
		return lowercaseChars
	case ClassUppercase:
		return uppercaseChars
	case ClassDigit:
		return digitChars
	case ClassSymbol:
		return symbolChars
	}
	return ""
}

// ParseClass maps a user-supplied class name to a CharacterClass.
// Short forms such as "lower", "upper", "num" and "sym" are accepted.
func ParseClass(s string) (CharacterClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowercase", "lower", "l":
		return ClassLowercase, nil
	case "uppercase", "upper", "u":
		return ClassUppercase, nil
	case "digit", "digits", "number", "numbers", "num", "d":
		return ClassDigit, nil
	case "symbol", "symbols", "sym", "s":
		return ClassSymbol, nil
	}
	return "", fmt.Errorf("unknown character class %q", s)
}
