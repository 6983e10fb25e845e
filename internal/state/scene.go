package state

import (
	"fmt"

	"github.com/kk-code-lab/msgitem/internal/catalog"
	"github.com/kk-code-lab/msgitem/internal/ui/list"
)

func (s *AppState) afterCursorMove() {
	s.sound.Play(list.CueCursor)
	s.StatusMessage = ""
}

// processOK confirms the selected row, refusing entries that cannot be used.
func (s *AppState) processOK() {
	if !s.ItemList.IsOpenAndActive() {
		return
	}
	entry := s.CurrentEntry()
	if entry == nil {
		return
	}
	if !s.IsEnabled(entry) {
		s.sound.Play(list.CueBuzzer)
		s.StatusMessage = fmt.Sprintf("%s cannot be used now.", entry.Name)
		return
	}
	s.sound.Play(list.CueOK)
	s.ItemList.CallHandler("ok")
}

// determineItem routes message entries to the viewer after applying the
// normal usage cost; everything else takes the default path.
func (s *AppState) determineItem() {
	entry := s.CurrentEntry()
	if entry == nil {
		return
	}
	if s.Policy.ShouldOpenViewer(entry) {
		s.sound.Play(list.CueUse)
		catalog.Consume(entry)
		s.openItemMessage(entry)
		return
	}
	s.useItem(entry)
}

func (s *AppState) useItem(entry *catalog.Entry) {
	s.sound.Play(list.CueUse)
	catalog.Consume(entry)
	s.StatusMessage = fmt.Sprintf("Used %s.", entry.Name)
	s.log.V(1).Info("item used", "id", entry.ID, "name", entry.Name, "quantity", entry.Quantity)
}

func (s *AppState) openItemMessage(entry *catalog.Entry) {
	if s.Viewer == nil {
		return
	}
	s.StatusMessage = ""
	s.Viewer.UpdateItem(entry)
	s.Viewer.Open()
	s.Viewer.Activate()
	s.Viewer.Select(0)
	s.ItemList.Deactivate()
	s.log.V(1).Info("message viewer opened", "id", entry.ID, "name", entry.Name, "pages", s.Viewer.PageCount())
}

func (s *AppState) closeItemMessage() {
	s.Viewer.Close()
	s.Viewer.Deselect()
	s.Viewer.Deactivate()
	s.ItemList.Activate()
	s.log.V(1).Info("message viewer closed")
}
