package crypto

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is returned when a password cannot be built from the given options.
var ErrInvalidConfiguration = errors.New("invalid generator configuration")

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
	Keyword   string
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Classes returns the enabled character classes in iteration order.
func (o GeneratorOptions) Classes() []CharacterClass {
	var classes []CharacterClass
	if o.Lowercase {
		classes = append(classes, ClassLowercase)
	}
	if o.Uppercase {
		classes = append(classes, ClassUppercase)
	}
	if o.Numbers {
		classes = append(classes, ClassDigit)
	}
	if o.Symbols {
		classes = append(classes, ClassSymbol)
	}
	return classes
}

// WithClasses returns a copy of o with exactly the given classes enabled.
func (o GeneratorOptions) WithClasses(classes ...CharacterClass) GeneratorOptions {
	o.Lowercase, o.Uppercase, o.Numbers, o.Symbols = false, false, false, false
	for _, c := range classes {
		switch c {
		case ClassLowercase:
			o.Lowercase = true
		case ClassUppercase:
			o.Uppercase = true
		case ClassDigit:
			o.Numbers = true
		case ClassSymbol:
			o.Symbols = true
		}
	}
	return o
}

// Generator builds passwords from a RandomSource. A Generator holds no mutable state of its
// own; it is safe for concurrent use whenever its source is.
type Generator struct {
	src RandomSource
}

// NewGenerator creates a Generator drawing from src. A nil src means SecureSource.
func NewGenerator(src RandomSource) *Generator {
	if src == nil {
		src = SecureSource()
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(SecureSource())

// Generate creates a random password with the default crypto/rand backed generator.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate creates a random password based on the given options.
//
// One character from every enabled class is placed first, followed by the processed keyword,
// then the pool fills up to opts.Length and the whole sequence is shuffled. When the seeded
// characters plus the keyword already exceed opts.Length the result is longer than requested;
// nothing is truncated.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < 1 {
		return "", fmt.Errorf("%w: length must be at least 1", ErrInvalidConfiguration)
	}

	classes := opts.Classes()
	if len(classes) == 0 {
		return "", fmt.Errorf("%w: at least one character class must be enabled", ErrInvalidConfiguration)
	}

	var pool strings.Builder
	for _, c := range classes {
		pool.WriteString(c.Charset())
	}
	charset := pool.String()

	keyword := ProcessKeyword(opts.Keyword, opts.Length)

	result := make([]byte, 0, max(opts.Length, len(classes)+len(keyword)))

	// Guarantee at least one character from each selected class.
	for _, c := range classes {
		ch, err := g.randChar(c.Charset())
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	result = append(result, keyword...)

	for len(result) < opts.Length {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.src.Intn(len(charset))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("reading randomness: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
