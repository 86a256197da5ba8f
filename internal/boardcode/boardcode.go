// Package boardcode generates and validates the six-symbol codes that
// identify boards, and allocates codes that are unused in the database.
package boardcode

import (
	"errors"
	"math/rand/v2"
)

const (
	// Length is the number of symbols in a board code.
	Length = 6
	// Alphabet holds the symbols a board code is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrInvalidCode is returned for codes of the wrong length or alphabet.
var ErrInvalidCode = errors.New("invalid board code")

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator draws board codes from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator reading from src. A nil src uses the
// process-wide generator of math/rand/v2, which is safe for concurrent use.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Generate returns Length independent uniform draws from Alphabet.
// Nothing guarantees the result is unused; see Allocator.
func (g *Generator) Generate() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[g.src.IntN(len(Alphabet))]
	}
	return string(b)
}

var defaultGenerator = NewGenerator(nil)

// Generate draws a code from the default generator.
func Generate() string {
	return defaultGenerator.Generate()
}

// IsValid reports whether code is exactly Length symbols of Alphabet.
// Lowercase letters are not accepted.
func IsValid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Validate returns ErrInvalidCode when code is not valid.
func Validate(code string) error {
	if !IsValid(code) {
		return ErrInvalidCode
	}
	return nil
}
