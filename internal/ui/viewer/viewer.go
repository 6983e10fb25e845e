// Package viewer is the paginated message window opened by message items.
package viewer

import (
	"github.com/go-logr/logr"
	"github.com/kk-code-lab/msgitem/internal/catalog"
	"github.com/kk-code-lab/msgitem/internal/config"
	"github.com/kk-code-lab/msgitem/internal/message"
	"github.com/kk-code-lab/msgitem/internal/ui/list"
)

// TouchDwellFrames is how long the window must stay open before edge taps
// scroll it.
const TouchDwellFrames = 10

// Input is a logical key the viewer reacts to.
type Input int

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputOK
	InputCancel
)

// Window renders one entry's pages and walks them with a Navigator. It is
// created once and rebound with UpdateItem for every entry opened.
type Window struct {
	*list.Window

	nav       *message.Navigator
	entry     *catalog.Entry
	lines     []string
	indicator *config.Indicator
	sound     list.Sound
	log       logr.Logger
}

// New builds a closed viewer placed by geometry.
func New(geometry *config.Geometry, indicator *config.Indicator, sound list.Sound, log logr.Logger) *Window {
	if sound == nil {
		sound = list.Silent{}
	}
	w := &Window{
		nav:       message.NewNavigator(nil),
		indicator: indicator,
		sound:     sound,
		log:       log,
	}
	w.Window = list.New(w, func(screenWidth, screenHeight int) list.Rect {
		return list.Rect(geometry.Resolve(screenWidth, screenHeight))
	})
	w.SetReservedRows(1)
	w.ResetScroll()
	return w
}

// MaxItems is the number of rows of the current page.
func (w *Window) MaxItems() int {
	return len(w.lines)
}

// UpdateItem binds entry's pages and shows its initial page.
func (w *Window) UpdateItem(entry *catalog.Entry) {
	w.entry = entry
	var table *message.PageTable
	if entry != nil {
		table = entry.Messages
	}
	w.nav.Bind(table)
	w.updateCurrentText()
}

func (w *Window) updateCurrentText() {
	w.ResetScroll()
	w.lines = w.nav.Lines()
}

// Entry returns the bound entry.
func (w *Window) Entry() *catalog.Entry {
	return w.entry
}

// Lines returns the rows of the current page.
func (w *Window) Lines() []string {
	return w.lines
}

// Page returns the zero-based current page.
func (w *Window) Page() int {
	return w.nav.Page()
}

// PageCount returns the number of pages of the bound entry.
func (w *Window) PageCount() int {
	return w.nav.PageCount()
}

// IndicatorText is the page position line drawn under the text.
func (w *Window) IndicatorText() string {
	return w.indicator.Format(w.nav.Page(), w.nav.PageCount())
}

// NextPage moves to the following page.
func (w *Window) NextPage() {
	w.sound.Play(list.CueCursor)
	if w.nav.Table() == nil {
		return
	}
	w.nav.Advance()
	w.updateCurrentText()
	w.log.V(1).Info("message page", "entry", w.entryName(), "page", w.nav.Page())
}

// PrevPage moves to the preceding page.
func (w *Window) PrevPage() {
	w.sound.Play(list.CueCursor)
	if w.nav.Table() == nil {
		return
	}
	w.nav.Retreat()
	w.updateCurrentText()
	w.log.V(1).Info("message page", "entry", w.entryName(), "page", w.nav.Page())
}

func (w *Window) entryName() string {
	if w.entry == nil {
		return ""
	}
	return w.entry.Name
}

// HandleInput processes one key while the window is open and focused and
// reports whether it was consumed.
func (w *Window) HandleInput(in Input) bool {
	if !w.IsOpenAndActive() {
		return false
	}
	switch in {
	case InputDown:
		w.ScrollDown()
	case InputUp:
		w.ScrollUp()
	case InputRight:
		w.NextPage()
	case InputLeft:
		w.PrevPage()
	case InputCancel:
		w.sound.Play(list.CueCancel)
		w.CallHandler("cancel")
	case InputOK:
		// read-only
	default:
		return false
	}
	return true
}

// Touch handles a primary pointer press at screen cell x,y. Presses on the
// top or bottom border scroll one row once the window has stayed open for
// TouchDwellFrames.
func (w *Window) Touch(x, y int) bool {
	if !w.IsOpenAndActive() {
		return false
	}
	bounds := w.Bounds()
	if !bounds.Contains(x, y) {
		return false
	}
	if w.HitTest(x, y) >= 0 || w.StayCount() < TouchDwellFrames {
		return false
	}
	local := y - bounds.Y
	switch {
	case local < list.Padding:
		w.ScrollUp()
	case local >= bounds.Height-list.Padding:
		w.ScrollDown()
	default:
		return false
	}
	return true
}

// Cancel closes the window as the cancel key would.
func (w *Window) Cancel() bool {
	return w.HandleInput(InputCancel)
}

// IsOKEnabled is always false; nothing in the viewer can be confirmed.
func (w *Window) IsOKEnabled() bool {
	return false
}
