package slug

import (
	"strings"
	"testing"

	gosimpleslug "github.com/gosimple/slug"
)

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{"empty", "", ""},
		{"two words", "Hello World", "hello-world"},
		{"repeated and outer spaces", "  Multiple   Spaces  ", "multiple-spaces"},
		{"quotes dropped", `O'Brien's "Café" Guide`, "obriens-cafe-guide"},
		{"digits kept", "Release 2.0 notes", "release-2-0-notes"},
		{"only separators", " -_/ ", ""},
		{"only quotes", `'"'`, ""},
		{"trailing punctuation", "What's new?", "whats-new"},
		{"leading punctuation", "...and more", "and-more"},
		{"existing hyphens", "already-a-slug", "already-a-slug"},
		{"mixed case", "MiXeD CaSe", "mixed-case"},
		{"tabs and newlines", "line\tone\nline two", "line-one-line-two"},
		{"accents folded", "Crème Brûlée", "creme-brulee"},
	}

	for _, tc := range testCases {
		if got := Generate(tc.title); got != tc.expected {
			t.Errorf("%s: Generate(%q) = %q, expected %q", tc.name, tc.title, got, tc.expected)
		}
	}
}

func TestGeneratorModes(t *testing.T) {
	title := `O'Brien's "Café" Guide`

	testCases := []struct {
		mode     Mode
		title    string
		expected string
	}{
		{ModeFold, title, "obriens-cafe-guide"},
		{ModeSeparator, title, "obriens-caf-guide"},
		{ModeTransliterate, title, "obriens-cafe-guide"},
		{ModeSeparator, "naïve", "na-ve"},
		{ModeSeparator, "ÉCOLE", "cole"},
		{ModeTransliterate, "Привет мир", "privet-mir"},
		{ModeFold, "Привет мир", ""},
	}

	for _, tc := range testCases {
		got := NewGenerator(tc.mode).Generate(tc.title)
		if got != tc.expected {
			t.Errorf("%s: Generate(%q) = %q, expected %q", tc.mode, tc.title, got, tc.expected)
		}
	}
}

func TestGenerateNormalForm(t *testing.T) {
	inputs := []string{
		"",
		"Hello World",
		"  Multiple   Spaces  ",
		`O'Brien's "Café" Guide`,
		"--a--b--",
		"a - b - c",
		"!!!",
		"Ünïcödé ünd Ümläüte",
		"日本語のタイトル",
		"x",
		"-x-",
		"100% pure",
	}

	for _, mode := range []Mode{ModeFold, ModeSeparator, ModeTransliterate} {
		gen := NewGenerator(mode)
		for _, input := range inputs {
			out := gen.Generate(input)

			if again := gen.Generate(out); again != out {
				t.Errorf("%s: not idempotent for %q: %q then %q", mode, input, out, again)
			}
			if strings.Contains(out, "--") {
				t.Errorf("%s: %q produced repeated separators: %q", mode, input, out)
			}
			if strings.HasPrefix(out, "-") || strings.HasSuffix(out, "-") {
				t.Errorf("%s: %q produced outer separator: %q", mode, input, out)
			}
			for _, ch := range out {
				if !(('a' <= ch && ch <= 'z') || ('0' <= ch && ch <= '9') || ch == '-') {
					t.Errorf("%s: %q produced unexpected rune %q in %q", mode, input, ch, out)
				}
			}
			if out != "" && !gosimpleslug.IsSlug(out) {
				t.Errorf("%s: %q produced %q which is not a slug", mode, input, out)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	title := "Quarterly Report: Q3 / 2024"
	first := Generate(title)
	for i := 0; i < 10; i++ {
		if got := Generate(title); got != first {
			t.Fatalf("expected %q on every call, got %q", first, got)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"a", "hello-world", "2024-report", "a-1-b"}
	invalid := []string{"", "-a", "a-", "a--b", "Hello", "a_b", "a b", "café"}

	for _, value := range valid {
		if !IsValid(value) {
			t.Errorf("expected %q to be valid", value)
		}
	}
	for _, value := range invalid {
		if IsValid(value) {
			t.Errorf("expected %q to be invalid", value)
		}
	}
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		value    string
		expected Mode
		wantErr  bool
	}{
		{"", ModeFold, false},
		{"fold", ModeFold, false},
		{" Separator ", ModeSeparator, false},
		{"strict", ModeSeparator, false},
		{"transliterate", ModeTransliterate, false},
		{"unknown", ModeFold, true},
	}

	for _, tc := range testCases {
		mode, err := ParseMode(tc.value)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			continue
		}
		if mode != tc.expected {
			t.Errorf("ParseMode(%q) = %s, expected %s", tc.value, mode, tc.expected)
		}
	}
}
