// Package generator builds randomized passwords and rates their strength.
package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/genpass/internal/model"
)

// Character pools per category. Uppercase characters are drawn from the
// lowercase pool and upper-cased, so both cases share one distribution.
const (
	letterPool = "abcdefghijklmnopqrstuvwxyz"
	numberPool = "0123456789"
	symbolPool = "!#$%&()*+"
)

// SymbolPool exposes the fixed symbol alphabet for strength checks and tests.
const SymbolPool = symbolPool

// Generator produces randomized passwords.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed, for deterministic output.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate draws the configured number of characters per category, then
// shuffles the combined sequence. Counts below zero draw nothing; an all-zero
// config yields the empty string.
func (g *Generator) Generate(cfg model.Config) string {
	generated := make([]byte, 0, cfg.Length())

	for i := 0; i < cfg.Letters; i++ {
		generated = append(generated, letterPool[g.rnd.Intn(len(letterPool))])
	}
	for i := 0; i < cfg.Uppercase; i++ {
		letter := letterPool[g.rnd.Intn(len(letterPool))]
		generated = append(generated, letter-'a'+'A')
	}
	for i := 0; i < cfg.Symbols; i++ {
		generated = append(generated, symbolPool[g.rnd.Intn(len(symbolPool))])
	}
	for i := 0; i < cfg.Numbers; i++ {
		generated = append(generated, numberPool[g.rnd.Intn(len(numberPool))])
	}

	g.rnd.Shuffle(len(generated), func(i, j int) {
		generated[i], generated[j] = generated[j], generated[i]
	})
	return string(generated)
}

// Strength is a ranked password rating.
type Strength int

// Strength ratings, weakest first.
const (
	StrengthDoNotUse Strength = iota
	StrengthWeak
	StrengthModerate
	StrengthStrong
)

// String returns the user-visible label for the rating.
func (s Strength) String() string {
	switch s {
	case StrengthStrong:
		return "Strong"
	case StrengthModerate:
		return "Moderate"
	case StrengthWeak:
		return "Weak"
	default:
		return "Do not use!!!!"
	}
}

// Score rates a password against five independent criteria: length of at
// least 10, and presence of an uppercase letter, a lowercase letter, a digit,
// and a character from the symbol pool.
func Score(password string) Strength {
	criteria := []bool{
		len(password) >= 10,
		strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }),
		strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }),
		strings.ContainsAny(password, symbolPool),
	}

	met := 0
	for _, c := range criteria {
		if c {
			met++
		}
	}

	switch {
	case met == 5:
		return StrengthStrong
	case met >= 4:
		return StrengthModerate
	case met >= 3:
		return StrengthWeak
	default:
		return StrengthDoNotUse
	}
}
