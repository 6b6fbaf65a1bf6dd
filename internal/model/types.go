// Package model defines shared data structures.
package model

// Count bounds for every character category.
const (
	MinValue = 0
	MaxValue = 64
)

// Default category counts.
const (
	DefaultLetters   = 6
	DefaultUppercase = 2
	DefaultSymbols   = 2
	DefaultNumbers   = 4
)

// Config defines how many characters of each category go into a password.
type Config struct {
	Letters   int
	Uppercase int
	Symbols   int
	Numbers   int
}

// Default returns a config with the default category counts.
func Default() Config {
	return Config{
		Letters:   DefaultLetters,
		Uppercase: DefaultUppercase,
		Symbols:   DefaultSymbols,
		Numbers:   DefaultNumbers,
	}
}

// Length returns the total password length the config produces.
func (c Config) Length() int {
	return c.Letters + c.Uppercase + c.Symbols + c.Numbers
}

// ClampValue forces a single count into [MinValue, MaxValue].
func ClampValue(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
