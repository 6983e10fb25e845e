package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop used for message text.
const DefaultTabWidth = 4

// Invisible formatting runes are shown as labels so a message cannot reorder
// or hide what the player reads.
var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeLine makes one display line of message text safe to draw: tabs are
// expanded to tabWidth stops, control characters become '?' and bidi
// formatting runes are replaced with visible labels.
func SanitizeLine(line string, tabWidth int) string {
	if !needsRewrite(line) {
		return line
	}

	var b strings.Builder
	column := 0
	for _, r := range line {
		switch {
		case r == '\t':
			if tabWidth <= 0 {
				b.WriteByte(' ')
				column++
				continue
			}
			spaces := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		case formattingRuneLabels[r] != "":
			label := formattingRuneLabels[r]
			b.WriteString(label)
			column += DisplayWidth(label)
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
			column++
		default:
			b.WriteRune(r)
			column += cellWidth(r)
		}
	}
	return b.String()
}

// SanitizeTerminalText is SanitizeLine with the default tab width.
func SanitizeTerminalText(text string) string {
	return SanitizeLine(text, DefaultTabWidth)
}

func needsRewrite(line string) bool {
	for _, r := range line {
		if r < 0x20 || r == 0x7f {
			return true
		}
		if _, ok := formattingRuneLabels[r]; ok {
			return true
		}
	}
	return false
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += cellWidth(r)
	}
	return width
}

func cellWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	return w
}
