package state

import (
	"github.com/go-logr/logr"
	"github.com/kk-code-lab/msgitem/internal/catalog"
	"github.com/kk-code-lab/msgitem/internal/ui/list"
	"github.com/kk-code-lab/msgitem/internal/ui/viewer"
)

// Rows taken by the header above the item list and by the description and
// footer lines below it.
const (
	headerRows = 1
	footerRows = 2
)

// AppState is the single source of truth
type AppState struct {
	// Catalog
	Entries []*catalog.Entry
	Party   *catalog.Party
	Policy  catalog.Policy

	// Windows
	ItemList *list.Window
	Viewer   *viewer.Window

	HelpVisible bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Status line
	StatusMessage string

	// Error state
	LastError error

	sound list.Sound
	log   logr.Logger
}

// ItemListLayout places the item menu between the header and the footer.
func ItemListLayout(screenWidth, screenHeight int) list.Rect {
	height := screenHeight - headerRows - footerRows
	if height < 0 {
		height = 0
	}
	return list.Rect{X: 0, Y: headerRows, Width: screenWidth, Height: height}
}

type entryRows struct {
	state *AppState
}

func (r entryRows) MaxItems() int {
	return len(r.state.Entries)
}

// NewAppState wires the item menu and the message viewer together. The item
// menu starts open and focused on its first row.
func NewAppState(entries []*catalog.Entry, v *viewer.Window, sound list.Sound, log logr.Logger) *AppState {
	if sound == nil {
		sound = list.Silent{}
	}
	party := &catalog.Party{}
	s := &AppState{
		Entries: entries,
		Party:   party,
		Policy:  catalog.Policy{Engagement: party},
		Viewer:  v,
		sound:   sound,
		log:     log,
	}

	s.ItemList = list.New(entryRows{state: s}, ItemListLayout)
	s.ItemList.SetHandler("ok", s.determineItem)
	s.ItemList.Show()
	s.ItemList.Activate()
	if len(entries) > 0 {
		s.ItemList.Select(0)
	}

	if v != nil {
		v.SetHandler("cancel", s.closeItemMessage)
	}
	return s
}

// Resize propagates a new screen size to every window.
func (s *AppState) Resize(width, height int) {
	s.ScreenWidth = width
	s.ScreenHeight = height
	s.ItemList.Resize(width, height)
	if s.Viewer != nil {
		s.Viewer.Resize(width, height)
	}
}

// CurrentEntry returns the selected catalog entry, nil when none.
func (s *AppState) CurrentEntry() *catalog.Entry {
	if s.ItemList == nil {
		return nil
	}
	idx := s.ItemList.Index()
	if idx < 0 || idx >= len(s.Entries) {
		return nil
	}
	return s.Entries[idx]
}

// IsEnabled reports whether entry can be chosen from the menu right now.
func (s *AppState) IsEnabled(entry *catalog.Entry) bool {
	return s.Policy.CanUse(entry)
}

// ViewerActive reports whether the message viewer owns the input focus.
func (s *AppState) ViewerActive() bool {
	return s.Viewer != nil && s.Viewer.Active()
}

// ViewerVisible reports whether any part of the viewer is on screen.
func (s *AppState) ViewerVisible() bool {
	return s.Viewer != nil && !s.Viewer.IsClosed()
}

// NeedsFrames reports whether windows are animating or waiting out the touch
// dwell, so the loop must keep ticking.
func (s *AppState) NeedsFrames() bool {
	if s.ItemList != nil && s.ItemList.Animating() {
		return true
	}
	if s.Viewer == nil {
		return false
	}
	if s.Viewer.Animating() {
		return true
	}
	return s.Viewer.IsOpen() && s.Viewer.StayCount() < viewer.TouchDwellFrames
}
