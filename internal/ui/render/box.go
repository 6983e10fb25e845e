package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/msgitem/internal/ui/list"
)

// drawBox clears rect and draws a single-line border with an optional title
// on the top edge.
func (r *Renderer) drawBox(rect list.Rect, title string, fill, border tcell.Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	right := rect.X + rect.Width - 1
	bottom := rect.Y + rect.Height - 1

	for y := rect.Y; y <= bottom; y++ {
		r.fillRow(rect.X, y, rect.Width, fill)
	}
	for x := rect.X + 1; x < right; x++ {
		r.screen.SetContent(x, rect.Y, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		r.screen.SetContent(rect.X, y, tcell.RuneVLine, nil, border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	r.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, rect.Y, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(rect.X, bottom, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)

	if title != "" && rect.Width > 4 {
		label := r.truncateTextToWidth(" "+title+" ", rect.Width-4)
		r.drawTextLine(rect.X+2, rect.Y, rect.Width-4, label, border.Bold(true))
	}
}

// drawScrollMarks shows arrows on the border when more rows exist above or
// below the visible page.
func (r *Renderer) drawScrollMarks(w *list.Window, rect list.Rect, style tcell.Style) {
	if rect.Width < 3 || rect.Height < 2 {
		return
	}
	mid := rect.X + rect.Width/2
	if w.TopRow() > 0 {
		r.screen.SetContent(mid, rect.Y, '▲', nil, style)
	}
	if w.TopRow() < w.MaxTopRow() {
		r.screen.SetContent(mid, rect.Y+rect.Height-1, '▼', nil, style)
	}
}
