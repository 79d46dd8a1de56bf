// Package slug turns human-readable titles into URL-safe names.
//
// A slug contains only lowercase ASCII letters, digits and single '-'
// separators, never starts or ends with a separator, and is a pure function
// of its input.
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins slug segments.
const Separator = '-'

// Mode selects how characters outside ASCII are treated before the scan.
type Mode int

const (
	// ModeFold strips diacritics so "Café" becomes "cafe".
	ModeFold Mode = iota
	// ModeSeparator treats every non-ASCII rune as a separator.
	ModeSeparator
	// ModeTransliterate maps any script to its closest ASCII spelling.
	ModeTransliterate
)

func (m Mode) String() string {
	switch m {
	case ModeFold:
		return "fold"
	case ModeSeparator:
		return "separator"
	case ModeTransliterate:
		return "transliterate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a configuration value to a Mode. An empty value selects
// ModeFold.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "fold":
		return ModeFold, nil
	case "separator", "strict":
		return ModeSeparator, nil
	case "transliterate", "translit":
		return ModeTransliterate, nil
	default:
		return ModeFold, fmt.Errorf("unknown slug mode %q", value)
	}
}

type Generator struct {
	mode Mode
}

func NewGenerator(mode Mode) *Generator {
	return &Generator{mode: mode}
}

func (g *Generator) Mode() Mode {
	if g == nil {
		return ModeFold
	}
	return g.mode
}

var defaultGenerator = NewGenerator(ModeFold)

// Generate converts title using the default fold mode.
func Generate(title string) string {
	return defaultGenerator.Generate(title)
}

// Generate converts title to a slug. Empty input yields an empty slug.
func (g *Generator) Generate(title string) string {
	if title == "" {
		return ""
	}

	switch g.Mode() {
	case ModeFold:
		title = foldDiacritics(title)
	case ModeTransliterate:
		title = unidecode.Unidecode(title)
	}

	return scan(title)
}

func scan(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	last := rune(0)
	for _, ch := range title {
		if 'A' <= ch && ch <= 'Z' {
			ch += 'a' - 'A'
		}

		switch {
		case ('a' <= ch && ch <= 'z') || ('0' <= ch && ch <= '9'):
			b.WriteRune(ch)
			last = ch
		case ch == '\'' || ch == '"':
			continue
		default:
			if b.Len() == 0 || last == Separator {
				continue
			}
			b.WriteRune(Separator)
			last = Separator
		}
	}

	out := b.String()
	out = strings.TrimPrefix(out, string(Separator))
	out = strings.TrimSuffix(out, string(Separator))
	return out
}

func foldDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

// IsValid reports whether value is a non-empty slug in normal form.
func IsValid(value string) bool {
	if value == "" {
		return false
	}
	return scan(value) == value
}
