package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		r.runeWidthCacheMu.RLock()
		width := r.runeWidthCache[ru]
		r.runeWidthCacheMu.RUnlock()
		if width != 0 || ru == 0 {
			return width - 1
		}
		actual := runewidth.RuneWidth(ru)
		if actual < 0 {
			actual = 0
		}
		r.runeWidthCacheMu.Lock()
		r.runeWidthCache[ru] = actual + 1
		r.runeWidthCacheMu.Unlock()
		return actual
	}

	if cached, ok := r.runeWidthWide.Load(ru); ok {
		return cached.(int)
	}
	width := runewidth.RuneWidth(ru)
	if width < 0 {
		width = 0
	}
	r.runeWidthWide.Store(ru, width)
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		if w := r.cachedRuneWidth(ru); w > 0 {
			width += w
		}
	}
	return width
}

// truncateTextToWidth shortens text to maxWidth cells, ending in an ellipsis
// when anything was cut.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 1 {
		return ellipsis
	}

	available := maxWidth - 1
	var b strings.Builder
	width := 0
	for _, ru := range text {
		rw := r.cachedRuneWidth(ru)
		if rw < 0 {
			rw = 0
		}
		if width+rw > available {
			break
		}
		b.WriteRune(ru)
		width += rw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// drawTextLine draws text from startX, stopping at maxWidth cells, and
// returns the column after the last cell written.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	for i := 0; i < len(runes); {
		mainc := runes[i]
		i++
		w := r.cachedRuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) == 0 && runes[i] >= 0x300 {
			combc = append(combc, runes[i])
			i++
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}
	return x
}

func (r *Renderer) fillRow(startX, y, width int, style tcell.Style) {
	for x := startX; x < startX+width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawCentered draws text centred within width cells starting at startX.
func (r *Renderer) drawCentered(startX, y, width int, text string, style tcell.Style) {
	text = r.truncateTextToWidth(text, width)
	offset := (width - r.measureTextWidth(text)) / 2
	if offset < 0 {
		offset = 0
	}
	r.drawTextLine(startX+offset, y, width-offset, text, style)
}
