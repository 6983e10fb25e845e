package state

import (
	"fmt"
)

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state in place.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== ITEM MENU =====

	case NavigateDownAction:
		if state.ItemList.IsOpenAndActive() && state.ItemList.CursorDown(false) {
			state.afterCursorMove()
		}
		return state, nil

	case NavigateUpAction:
		if state.ItemList.IsOpenAndActive() && state.ItemList.CursorUp(false) {
			state.afterCursorMove()
		}
		return state, nil

	case ScrollPageDownAction:
		if state.ItemList.IsOpenAndActive() && state.ItemList.CursorPageDown() {
			state.afterCursorMove()
		}
		return state, nil

	case ScrollPageUpAction:
		if state.ItemList.IsOpenAndActive() && state.ItemList.CursorPageUp() {
			state.afterCursorMove()
		}
		return state, nil

	case MouseSelectAction:
		if !state.ItemList.IsOpenAndActive() {
			return state, nil
		}
		if a.Index < 0 || a.Index >= len(state.Entries) {
			return state, fmt.Errorf("item row %d out of range", a.Index)
		}
		if a.Index != state.ItemList.Index() {
			state.ItemList.Select(a.Index)
			state.afterCursorMove()
		}
		return state, nil

	case ConfirmAction:
		state.processOK()
		return state, nil

	// ===== VIEWER =====

	case ViewerInputAction:
		if state.Viewer != nil {
			state.Viewer.HandleInput(a.Input)
		}
		return state, nil

	case ViewerTouchAction:
		if state.Viewer != nil {
			state.Viewer.Touch(a.X, a.Y)
		}
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.Resize(a.Width, a.Height)
		return state, nil

	case TickAction:
		state.ItemList.Update()
		if state.Viewer != nil {
			state.Viewer.Update()
		}
		return state, nil

	case ToggleBattleAction:
		if state.ViewerActive() {
			return state, nil
		}
		state.Party.Battle = !state.Party.Battle
		if state.Party.Battle {
			state.StatusMessage = "Battle started."
		} else {
			state.StatusMessage = "Battle ended."
		}
		state.log.V(1).Info("engagement changed", "inBattle", state.Party.Battle)
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil
	}

	return state, nil
}
