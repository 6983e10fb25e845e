// Package list is the scrollable, selectable window base shared by the item
// menu and the message viewer.
package list

const (
	// Padding is the border width around the content area, in cells.
	Padding = 1

	opennessMax  = 255
	opennessStep = 32
)

// Rect is a window placement in screen cells.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell x,y lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Items is implemented by whatever a window lists.
type Items interface {
	MaxItems() int
}

// LayoutFunc places a window on a screen of the given size.
type LayoutFunc func(screenWidth, screenHeight int) Rect

// Window holds the state every list-like surface needs: placement,
// open/close animation, focus, selection, scroll position and the number of
// frames it has stayed put.
type Window struct {
	items    Items
	layout   LayoutFunc
	screenW  int
	screenH  int
	reserved int

	openness int
	opening  bool
	closing  bool
	active   bool

	index     int
	topRow    int
	stayCount int

	handlers map[string]func()
}

// New returns a closed, inactive window with no selection.
func New(items Items, layout LayoutFunc) *Window {
	return &Window{
		items:    items,
		layout:   layout,
		index:    -1,
		handlers: make(map[string]func()),
	}
}

// Resize records the screen size the layout is evaluated against.
func (w *Window) Resize(screenWidth, screenHeight int) {
	w.screenW = screenWidth
	w.screenH = screenHeight
	w.SetTopRow(w.topRow)
}

// Bounds evaluates the layout for the current screen size.
func (w *Window) Bounds() Rect {
	if w.layout == nil {
		return Rect{}
	}
	return w.layout(w.screenW, w.screenH)
}

// ContentRect is the area inside the border.
func (w *Window) ContentRect() Rect {
	b := w.Bounds()
	r := Rect{X: b.X + Padding, Y: b.Y + Padding, Width: b.Width - 2*Padding, Height: b.Height - 2*Padding}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// SetReservedRows keeps n content rows at the bottom out of the list area.
func (w *Window) SetReservedRows(n int) {
	if n < 0 {
		n = 0
	}
	w.reserved = n
}

// PageRows is the number of item rows visible at once.
func (w *Window) PageRows() int {
	rows := w.ContentRect().Height - w.reserved
	if rows < 1 {
		return 1
	}
	return rows
}

func (w *Window) maxItems() int {
	if w.items == nil {
		return 0
	}
	return w.items.MaxItems()
}

// ===== OPEN / CLOSE =====

// Open starts the opening animation.
func (w *Window) Open() {
	if !w.IsOpen() {
		w.opening = true
	}
	w.closing = false
	w.stayCount = 0
}

// Close starts the closing animation.
func (w *Window) Close() {
	if !w.IsClosed() {
		w.closing = true
	}
	w.opening = false
}

// Show opens the window immediately.
func (w *Window) Show() {
	w.openness = opennessMax
	w.opening = false
	w.closing = false
}

// Update advances animations by one frame.
func (w *Window) Update() {
	switch {
	case w.opening:
		w.openness += opennessStep
		if w.openness >= opennessMax {
			w.openness = opennessMax
			w.opening = false
		}
	case w.closing:
		w.openness -= opennessStep
		if w.openness <= 0 {
			w.openness = 0
			w.closing = false
		}
	}
	if w.IsOpen() {
		w.stayCount++
	}
}

// Openness is the animation progress from 0 (closed) to 255 (open).
func (w *Window) Openness() int {
	return w.openness
}

func (w *Window) IsOpen() bool   { return w.openness >= opennessMax }
func (w *Window) IsClosed() bool { return w.openness <= 0 }

// Animating reports whether an open or close is in progress.
func (w *Window) Animating() bool {
	return w.opening || w.closing
}

// ===== FOCUS & SELECTION =====

func (w *Window) Activate()      { w.active = true }
func (w *Window) Deactivate()    { w.active = false }
func (w *Window) Active() bool   { return w.active }
func (w *Window) Index() int     { return w.index }
func (w *Window) StayCount() int { return w.stayCount }

// IsOpenAndActive reports whether the window should process input.
func (w *Window) IsOpenAndActive() bool {
	return w.IsOpen() && w.active
}

// Select moves the selection to index and scrolls it into view.
func (w *Window) Select(index int) {
	w.index = index
	w.ensureVisible()
}

// Deselect clears the selection.
func (w *Window) Deselect() {
	w.index = -1
}

// CursorDown moves the selection one row down, wrapping to the top when wrap
// is set.
func (w *Window) CursorDown(wrap bool) bool {
	count := w.maxItems()
	if count == 0 {
		return false
	}
	switch {
	case w.index < count-1:
		w.Select(w.index + 1)
	case wrap:
		w.Select(0)
	default:
		return false
	}
	return true
}

// CursorUp moves the selection one row up, wrapping to the bottom when wrap
// is set.
func (w *Window) CursorUp(wrap bool) bool {
	count := w.maxItems()
	if count == 0 {
		return false
	}
	switch {
	case w.index > 0:
		w.Select(w.index - 1)
	case wrap:
		w.Select(count - 1)
	default:
		return false
	}
	return true
}

// CursorPageDown moves the selection a page down.
func (w *Window) CursorPageDown() bool {
	count := w.maxItems()
	if count == 0 {
		return false
	}
	next := w.index + w.PageRows()
	if next > count-1 {
		next = count - 1
	}
	if next == w.index {
		return false
	}
	w.Select(next)
	return true
}

// CursorPageUp moves the selection a page up.
func (w *Window) CursorPageUp() bool {
	if w.maxItems() == 0 || w.index <= 0 {
		return false
	}
	prev := w.index - w.PageRows()
	if prev < 0 {
		prev = 0
	}
	w.Select(prev)
	return true
}

// ===== SCROLLING =====

// TopRow is the first visible item row.
func (w *Window) TopRow() int {
	return w.topRow
}

// BottomRow is the last visible item row.
func (w *Window) BottomRow() int {
	return w.topRow + w.PageRows() - 1
}

// MaxTopRow is the largest top row that still fills the page.
func (w *Window) MaxTopRow() int {
	top := w.maxItems() - w.PageRows()
	if top < 0 {
		return 0
	}
	return top
}

// SetTopRow scrolls to row, clamped to the valid range.
func (w *Window) SetTopRow(row int) {
	if row > w.MaxTopRow() {
		row = w.MaxTopRow()
	}
	if row < 0 {
		row = 0
	}
	w.topRow = row
}

// ResetScroll returns to the first row.
func (w *Window) ResetScroll() {
	w.topRow = 0
}

// ScrollDown moves the view one row down and reports whether it moved.
func (w *Window) ScrollDown() bool {
	before := w.topRow
	w.SetTopRow(w.topRow + 1)
	return w.topRow != before
}

// ScrollUp moves the view one row up and reports whether it moved.
func (w *Window) ScrollUp() bool {
	before := w.topRow
	w.SetTopRow(w.topRow - 1)
	return w.topRow != before
}

func (w *Window) ensureVisible() {
	if w.index < 0 {
		return
	}
	if w.index < w.topRow {
		w.SetTopRow(w.index)
	} else if w.index > w.BottomRow() {
		w.SetTopRow(w.index - w.PageRows() + 1)
	}
}

// ===== HIT TESTING =====

// HitTest maps a screen cell to an item index, or -1 when the cell is not on
// an item row.
func (w *Window) HitTest(x, y int) int {
	content := w.ContentRect()
	if x < content.X || x >= content.X+content.Width {
		return -1
	}
	row := y - content.Y
	if row < 0 || row >= w.PageRows() {
		return -1
	}
	index := w.topRow + row
	if index >= w.maxItems() {
		return -1
	}
	return index
}

// ===== HANDLERS =====

// SetHandler binds fn to a named event such as "ok" or "cancel".
func (w *Window) SetHandler(name string, fn func()) {
	w.handlers[name] = fn
}

// CallHandler runs the named handler and reports whether one was bound.
func (w *Window) CallHandler(name string) bool {
	fn, ok := w.handlers[name]
	if !ok || fn == nil {
		return false
	}
	fn()
	return true
}
