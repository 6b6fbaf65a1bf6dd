package generator

import (
	"strings"
	"testing"

	"github.com/verte-zerg/genpass/internal/model"
)

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isSymbol(r rune) bool {
	return strings.ContainsRune(SymbolPool, r)
}

func TestGenerateLengthAndCategories(t *testing.T) {
	g := NewSeeded(42)
	password := g.Generate(model.Config{Letters: 4, Uppercase: 3, Symbols: 2, Numbers: 5})

	if len(password) != 14 {
		t.Fatalf("length = %d, want 14", len(password))
	}
	if !strings.ContainsFunc(password, isLower) {
		t.Errorf("expected a lowercase letter in %q", password)
	}
	if !strings.ContainsFunc(password, isUpper) {
		t.Errorf("expected an uppercase letter in %q", password)
	}
	if !strings.ContainsFunc(password, isDigit) {
		t.Errorf("expected a digit in %q", password)
	}
	if !strings.ContainsAny(password, SymbolPool) {
		t.Errorf("expected a symbol in %q", password)
	}
}

func TestGenerateAllZeroIsEmpty(t *testing.T) {
	g := NewSeeded(7)
	if password := g.Generate(model.Config{}); password != "" {
		t.Fatalf("expected empty password, got %q", password)
	}
}

func TestGenerateSingleCategoryPurity(t *testing.T) {
	tests := []struct {
		name   string
		cfg    model.Config
		length int
		member func(rune) bool
	}{
		{"letters", model.Config{Letters: 6}, 6, isLower},
		{"uppercase", model.Config{Uppercase: 5}, 5, isUpper},
		{"numbers", model.Config{Numbers: 8}, 8, isDigit},
		{"symbols", model.Config{Symbols: 6}, 6, isSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSeeded(9)
			password := g.Generate(tt.cfg)
			if len(password) != tt.length {
				t.Fatalf("length = %d, want %d", len(password), tt.length)
			}
			for _, r := range password {
				if !tt.member(r) {
					t.Fatalf("unexpected character %q in %q", r, password)
				}
			}
		})
	}
}

func TestGenerateOnlyAllowedCharacters(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		password := NewSeeded(seed).Generate(model.Config{Letters: 13, Uppercase: 7, Symbols: 5, Numbers: 9})
		for _, r := range password {
			if !isLower(r) && !isUpper(r) && !isDigit(r) && !isSymbol(r) {
				t.Fatalf("character %q outside all pools (seed %d)", r, seed)
			}
		}
	}
}

func TestGenerateExactCategoryComposition(t *testing.T) {
	g := NewSeeded(13)
	cfg := model.Config{Letters: 10, Uppercase: 4, Symbols: 3, Numbers: 7}
	password := g.Generate(cfg)

	var lower, upper, digit, symbol int
	for _, r := range password {
		switch {
		case isLower(r):
			lower++
		case isUpper(r):
			upper++
		case isDigit(r):
			digit++
		case isSymbol(r):
			symbol++
		}
	}
	if lower != cfg.Letters || upper != cfg.Uppercase || digit != cfg.Numbers || symbol != cfg.Symbols {
		t.Fatalf("composition = %d/%d/%d/%d, want %d/%d/%d/%d",
			lower, upper, symbol, digit, cfg.Letters, cfg.Uppercase, cfg.Symbols, cfg.Numbers)
	}
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	cfg := model.Config{Letters: 6, Uppercase: 2, Symbols: 2, Numbers: 4}
	first := NewSeeded(99).Generate(cfg)
	second := NewSeeded(99).Generate(cfg)
	if first != second {
		t.Fatalf("same seed produced %q and %q", first, second)
	}
}

func TestGenerateStressCounts(t *testing.T) {
	g := NewSeeded(17)
	cfg := model.Config{Letters: 2000, Uppercase: 1500, Symbols: 1000, Numbers: 2500}
	password := g.Generate(cfg)
	if len(password) != cfg.Length() {
		t.Fatalf("length = %d, want %d", len(password), cfg.Length())
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		password string
		want     Strength
	}{
		{"Aa1!aaaaaa", StrengthStrong},
		{"Aa1bbbbbbb", StrengthModerate},
		{"Aa1bbbb", StrengthWeak},
		{"aaaa", StrengthDoNotUse},
		{"", StrengthDoNotUse},
		{"aaaaaaaaaa1", StrengthWeak},
		{"AAAAAAAAAA1!", StrengthModerate},
	}
	for _, tt := range tests {
		if got := Score(tt.password); got != tt.want {
			t.Errorf("Score(%q) = %s, want %s", tt.password, got, tt.want)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Score("Aa1!aaaaaa"); got != StrengthStrong {
			t.Fatalf("Score changed between calls: %s", got)
		}
	}
}

func TestStrengthString(t *testing.T) {
	tests := []struct {
		strength Strength
		want     string
	}{
		{StrengthStrong, "Strong"},
		{StrengthModerate, "Moderate"},
		{StrengthWeak, "Weak"},
		{StrengthDoNotUse, "Do not use!!!!"},
	}
	for _, tt := range tests {
		if got := tt.strength.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
