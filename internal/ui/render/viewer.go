package render

import (
	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/msgitem/internal/textutil"
	"github.com/kk-code-lab/msgitem/internal/ui/list"
	"github.com/kk-code-lab/msgitem/internal/ui/viewer"
)

const opennessMax = 255

// drawViewer renders the message window. While opening or closing only the
// frame is drawn, scaled vertically around its centre.
func (r *Renderer) drawViewer(v *viewer.Window) {
	bounds := v.Bounds()
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	border := base.Foreground(r.theme.BorderFg)

	if !v.IsOpen() {
		r.drawBox(scaleRect(bounds, v.Openness()), "", base, border)
		return
	}

	title := ""
	if entry := v.Entry(); entry != nil {
		title = textutil.SanitizeTerminalText(entry.Name)
	}
	r.drawBox(bounds, title, base, border)
	content := v.ContentRect()
	if content.Width <= 0 || content.Height <= 0 {
		return
	}

	lines := v.Lines()
	for row := 0; row < v.PageRows(); row++ {
		idx := v.TopRow() + row
		if idx >= len(lines) {
			break
		}
		line := textutil.SanitizeLine(lines[idx], textutil.DefaultTabWidth)
		r.drawTextLine(content.X, content.Y+row, content.Width, r.truncateTextToWidth(line, content.Width), base)
	}

	r.drawIndicator(v, content, base)
	r.drawScrollMarks(v.Window, bounds, border)
}

// drawIndicator clears the bottom content row and writes the page counter
// centred in the system color.
func (r *Renderer) drawIndicator(v *viewer.Window, content list.Rect, base tcell.Style) {
	y := content.Y + content.Height - 1
	r.fillRow(content.X, y, content.Width, base)
	text := v.IndicatorText()
	if text == "" {
		return
	}
	r.drawCentered(content.X, y, content.Width, text, base.Foreground(r.theme.SystemFg))
}

func scaleRect(rect list.Rect, openness int) list.Rect {
	if openness >= opennessMax {
		return rect
	}
	if openness < 0 {
		openness = 0
	}
	height := rect.Height * openness / opennessMax
	if height < 2 {
		height = 2
	}
	return list.Rect{
		X:      rect.X,
		Y:      rect.Y + (rect.Height-height)/2,
		Width:  rect.Width,
		Height: height,
	}
}
