package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeLineLeavesSafeInput(t *testing.T) {
	input := "Potion: restores 50 HP"
	if got := SanitizeLine(input, DefaultTabWidth); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeLineReplacesControlSequences(t *testing.T) {
	got := SanitizeLine("bad\x1b[31mtext", DefaultTabWidth)
	if got != "bad?[31mtext" {
		t.Fatalf("expected \"bad?[31mtext\", got %q", got)
	}
}

func TestSanitizeLineExpandsTabs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"leading tab", "\tx", 4, "    x"},
		{"tab after text", "ab\tc", 4, "ab  c"},
		{"tab on boundary", "abcd\te", 4, "abcd    e"},
		{"wide rune counts two", "薬\tx", 4, "薬  x"},
		{"zero width falls back to space", "a\tb", 0, "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLine(tt.input, tt.width); got != tt.want {
				t.Fatalf("SanitizeLine(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestSanitizeLineLabelsFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c"
	got := SanitizeTerminalText(input)
	if strings.ContainsRune(got, 0x202E) || strings.ContainsRune(got, 0x200B) {
		t.Fatalf("formatting runes left in output: %q", got)
	}
	if !strings.Contains(got, "⟪RLO⟫") || !strings.Contains(got, "⟪ZWSP⟫") {
		t.Fatalf("expected formatting runes to be labeled, got %q", got)
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"回復薬", 6},
		{"a薬b", 4},
	}
	for _, tt := range tests {
		if got := DisplayWidth(tt.text); got != tt.want {
			t.Fatalf("DisplayWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
