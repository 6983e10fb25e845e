package state

import "github.com/kk-code-lab/msgitem/internal/ui/viewer"

// Action is the base interface for all state mutations
type Action interface{}

// ===== ITEM MENU ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type MouseSelectAction struct {
	Index int
}
type ConfirmAction struct{}

// ===== VIEWER ACTIONS =====

type ViewerInputAction struct {
	Input viewer.Input
}
type ViewerTouchAction struct {
	X int
	Y int
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// TickAction advances window animations by one frame.
type TickAction struct{}

type ToggleBattleAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

// SuspendAction hands the terminal back to the shell (Ctrl+Z).
type SuspendAction struct{}
