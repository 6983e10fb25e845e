package list

import "testing"

type fixedItems int

func (n fixedItems) MaxItems() int { return int(n) }

func fixedLayout(rect Rect) LayoutFunc {
	return func(int, int) Rect { return rect }
}

func newTestWindow(items int) *Window {
	// 10 content rows
	return New(fixedItems(items), fixedLayout(Rect{X: 5, Y: 2, Width: 20, Height: 12}))
}

func TestOpenAnimation(t *testing.T) {
	w := newTestWindow(3)
	if !w.IsClosed() {
		t.Fatalf("new window should start closed")
	}

	w.Open()
	frames := 0
	for !w.IsOpen() {
		w.Update()
		frames++
		if frames > 20 {
			t.Fatalf("window never finished opening")
		}
	}
	if frames != 8 {
		t.Fatalf("expected 8 frames to open, got %d", frames)
	}
	if w.Animating() {
		t.Fatalf("animation should be finished")
	}

	w.Close()
	for i := 0; i < 8; i++ {
		w.Update()
	}
	if !w.IsClosed() {
		t.Fatalf("expected closed window, openness=%d", w.Openness())
	}
}

func TestStayCountCountsOpenFrames(t *testing.T) {
	w := newTestWindow(3)
	w.Show()
	w.Update()
	w.Update()
	if w.StayCount() != 2 {
		t.Fatalf("StayCount() = %d, want 2", w.StayCount())
	}
	w.Open()
	if w.StayCount() != 0 {
		t.Fatalf("Open should reset the stay count")
	}
}

func TestScrollClamps(t *testing.T) {
	w := newTestWindow(14)
	if w.PageRows() != 10 {
		t.Fatalf("PageRows() = %d, want 10", w.PageRows())
	}
	if w.ScrollUp() {
		t.Fatalf("scrolling above the first row should not move")
	}
	for i := 0; i < 4; i++ {
		if !w.ScrollDown() {
			t.Fatalf("scroll %d should move", i)
		}
	}
	if w.ScrollDown() {
		t.Fatalf("scrolling past MaxTopRow should not move")
	}
	if w.TopRow() != 4 {
		t.Fatalf("TopRow() = %d, want 4", w.TopRow())
	}
	w.ResetScroll()
	if w.TopRow() != 0 {
		t.Fatalf("ResetScroll left TopRow at %d", w.TopRow())
	}
}

func TestReservedRowsShrinkPage(t *testing.T) {
	w := newTestWindow(10)
	w.SetReservedRows(1)
	if w.PageRows() != 9 {
		t.Fatalf("PageRows() = %d, want 9", w.PageRows())
	}
	if w.MaxTopRow() != 1 {
		t.Fatalf("MaxTopRow() = %d, want 1", w.MaxTopRow())
	}
}

func TestCursorMovementKeepsSelectionVisible(t *testing.T) {
	w := newTestWindow(25)
	w.Select(0)
	for i := 0; i < 12; i++ {
		w.CursorDown(false)
	}
	if w.Index() != 12 || w.TopRow() != 3 {
		t.Fatalf("index=%d top=%d, want 12/3", w.Index(), w.TopRow())
	}
	w.CursorPageDown()
	if w.Index() != 22 {
		t.Fatalf("page down index=%d, want 22", w.Index())
	}
	w.CursorPageDown()
	if w.Index() != 24 {
		t.Fatalf("page down at end index=%d, want 24", w.Index())
	}
	if w.CursorDown(false) {
		t.Fatalf("cursor should not move past the end without wrap")
	}
	w.CursorDown(true)
	if w.Index() != 0 || w.TopRow() != 0 {
		t.Fatalf("wrap index=%d top=%d, want 0/0", w.Index(), w.TopRow())
	}
	w.CursorUp(true)
	if w.Index() != 24 {
		t.Fatalf("wrap up index=%d, want 24", w.Index())
	}
	w.CursorPageUp()
	if w.Index() != 14 {
		t.Fatalf("page up index=%d, want 14", w.Index())
	}
}

func TestHitTest(t *testing.T) {
	w := newTestWindow(3)
	tests := []struct {
		x, y int
		want int
	}{
		{6, 3, 0},
		{6, 5, 2},
		{6, 6, -1},  // past the last item
		{6, 2, -1},  // top border
		{4, 3, -1},  // left of the window
		{24, 3, -1}, // right border
	}
	for _, tt := range tests {
		if got := w.HitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("HitTest(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHandlers(t *testing.T) {
	w := newTestWindow(1)
	if w.CallHandler("cancel") {
		t.Fatalf("no handler bound yet")
	}
	called := false
	w.SetHandler("cancel", func() { called = true })
	if !w.CallHandler("cancel") || !called {
		t.Fatalf("cancel handler was not called")
	}
}

func TestBoundsFollowResize(t *testing.T) {
	w := New(fixedItems(0), func(sw, sh int) Rect {
		return Rect{X: sw / 10, Y: sh / 10, Width: sw * 8 / 10, Height: sh * 8 / 10}
	})
	w.Resize(80, 24)
	if got := w.Bounds(); got != (Rect{X: 8, Y: 2, Width: 64, Height: 19}) {
		t.Fatalf("Bounds() = %+v", got)
	}
	w.Resize(100, 50)
	if got := w.Bounds(); got != (Rect{X: 10, Y: 5, Width: 80, Height: 40}) {
		t.Fatalf("Bounds() after resize = %+v", got)
	}
}
