package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/msgitem/internal/state"
	textutil "github.com/kk-code-lab/msgitem/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if state == nil {
		r.screen.Show()
		return
	}
	if state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawItemList(state)
	r.drawDescription(state, w, h)
	r.drawStatusLine(state, w, h)
	if state.ViewerVisible() {
		r.drawViewer(state.Viewer)
	}

	r.screen.Show()
}

// drawHeader renders the top bar with title and the current occasion
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fillRow(0, 0, w, style)

	x := r.drawTextLine(0, 0, w, "msgitem", style.Bold(true))
	mode, modeStyle := "Menu", style
	if state.Party != nil && state.Party.InBattle() {
		mode, modeStyle = "Battle", style.Foreground(r.theme.BattleFg).Bold(true)
	}
	x = r.drawTextLine(x, 0, w-x, "  ", style)
	r.drawTextLine(x, 0, w-x, mode, modeStyle)

	count := fmt.Sprintf("%d items", len(state.Entries))
	if cw := r.measureTextWidth(count); cw < w-x-len(mode)-2 {
		r.drawTextLine(w-cw, 0, cw, count, style)
	}
}

// drawItemList renders the item menu with names on the left and quantities
// right aligned.
func (r *Renderer) drawItemList(state *statepkg.AppState) {
	list := state.ItemList
	if list == nil || list.IsClosed() {
		return
	}
	bounds := list.Bounds()
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	border := base.Foreground(r.theme.BorderFg)
	r.drawBox(bounds, "Items", base, border)

	content := list.ContentRect()
	if content.Width <= 0 || content.Height <= 0 {
		return
	}

	if len(state.Entries) == 0 {
		r.drawTextLine(content.X, content.Y, content.Width, "(no items)", base.Foreground(r.theme.DisabledFg))
		return
	}

	for row := 0; row < content.Height; row++ {
		idx := list.TopRow() + row
		if idx >= len(state.Entries) {
			break
		}
		entry := state.Entries[idx]
		y := content.Y + row

		style := base
		qtyStyle := base.Foreground(r.theme.QuantityFg)
		if !state.IsEnabled(entry) {
			style = style.Foreground(r.theme.DisabledFg)
			qtyStyle = style
		}
		if idx == list.Index() && list.Active() {
			style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			if !state.IsEnabled(entry) {
				style = style.Dim(true)
			}
			qtyStyle = style
			r.fillRow(content.X, y, content.Width, style)
		}

		qty := ""
		if entry.Consumable {
			qty = fmt.Sprintf(":%2d", entry.Quantity)
		}
		qtyWidth := r.measureTextWidth(qty)
		nameWidth := content.Width
		if qtyWidth > 0 && qtyWidth+2 < content.Width {
			nameWidth = content.Width - qtyWidth - 1
			r.drawTextLine(content.X+content.Width-qtyWidth, y, qtyWidth, qty, qtyStyle)
		}

		name := r.truncateTextToWidth(textutil.SanitizeTerminalText(entry.Name), nameWidth)
		r.drawTextLine(content.X, y, nameWidth, name, style)
	}

	r.drawScrollMarks(list, bounds, border)
}

// drawDescription shows the help text of the selected entry above the footer.
func (r *Renderer) drawDescription(state *statepkg.AppState, w, h int) {
	if h < 2 {
		return
	}
	y := h - 2
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.fillRow(0, y, w, style)

	entry := state.CurrentEntry()
	if entry == nil {
		return
	}
	text := textutil.SanitizeTerminalText(entry.Description)
	r.drawTextLine(1, y, w-1, r.truncateTextToWidth(text, w-1), style)
}

// drawStatusLine renders errors and status messages, falling back to the
// contextual key hints.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h < 1 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillRow(0, y, w, style)

	switch {
	case state.LastError != nil:
		text := " " + textutil.SanitizeTerminalText(state.LastError.Error())
		r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style.Foreground(r.theme.ErrorFg))
	case state.StatusMessage != "":
		text := " " + textutil.SanitizeTerminalText(state.StatusMessage)
		r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style)
	default:
		text := buildFooterHelpText(state)
		r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style.Dim(true))
	}
}
