package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/kk-code-lab/msgitem/internal/catalog"
	"github.com/kk-code-lab/msgitem/internal/config"
	statepkg "github.com/kk-code-lab/msgitem/internal/state"
	"github.com/kk-code-lab/msgitem/internal/ui/list"
	"github.com/kk-code-lab/msgitem/internal/ui/viewer"
)

func newViewerState(t *testing.T, active bool) *statepkg.AppState {
	t.Helper()
	geometry, err := config.NewGeometry(config.Default().MessageBox, logr.Discard())
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	v := viewer.New(geometry, nil, list.Silent{}, logr.Discard())
	state := statepkg.NewAppState([]*catalog.Entry{{ID: 1, Name: "a"}}, v, list.Silent{}, logr.Discard())
	if active {
		v.Activate()
	}
	return state
}

func nextAction(t *testing.T, actionChan chan statepkg.Action) statepkg.Action {
	t.Helper()
	select {
	case action := <-actionChan:
		return action
	default:
		t.Fatal("Expected an action to be emitted")
		return nil
	}
}

func TestQuestionMarkTogglesHelpInNormalMode(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.AppState{})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '?', 0))

	if _, ok := nextAction(t, actionChan).(statepkg.HelpToggleAction); !ok {
		t.Fatalf("Expected HelpToggleAction")
	}
}

func TestQClosesHelpWithoutQuitting(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.AppState{HelpVisible: true})

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatalf("q with help visible should not quit")
	}
	if _, ok := nextAction(t, actionChan).(statepkg.HelpHideAction); !ok {
		t.Fatalf("Expected HelpHideAction")
	}
}

func TestMenuKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, 0), statepkg.NavigateUpAction{}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, 0), statepkg.NavigateDownAction{}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, 0), statepkg.ScrollPageDownAction{}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, 0), statepkg.ConfirmAction{}},
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', 0), statepkg.ConfirmAction{}},
		{"battle", tcell.NewEventKey(tcell.KeyRune, 'b', 0), statepkg.ToggleBattleAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionChan := make(chan statepkg.Action, 1)
			handler := NewInputHandler(actionChan)
			handler.SetState(newViewerState(t, false))

			handler.ProcessEvent(tt.ev)
			if got := nextAction(t, actionChan); got != tt.want {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestQuitFromMenu(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(newViewerState(t, false))

	if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatalf("q in the menu should quit")
	}
	if _, ok := nextAction(t, actionChan).(statepkg.QuitAction); !ok {
		t.Fatalf("Expected QuitAction")
	}
}

func TestViewerKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want viewer.Input
	}{
		{"right pages forward", tcell.NewEventKey(tcell.KeyRight, 0, 0), viewer.InputRight},
		{"left pages back", tcell.NewEventKey(tcell.KeyLeft, 0, 0), viewer.InputLeft},
		{"down scrolls", tcell.NewEventKey(tcell.KeyDown, 0, 0), viewer.InputDown},
		{"k scrolls", tcell.NewEventKey(tcell.KeyRune, 'k', 0), viewer.InputUp},
		{"escape cancels", tcell.NewEventKey(tcell.KeyEscape, 0, 0), viewer.InputCancel},
		{"q cancels", tcell.NewEventKey(tcell.KeyRune, 'q', 0), viewer.InputCancel},
		{"backspace cancels", tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), viewer.InputCancel},
		{"enter is ok", tcell.NewEventKey(tcell.KeyEnter, 0, 0), viewer.InputOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionChan := make(chan statepkg.Action, 1)
			handler := NewInputHandler(actionChan)
			handler.SetState(newViewerState(t, true))

			if !handler.ProcessEvent(tt.ev) {
				t.Fatalf("viewer keys must never quit")
			}
			action, ok := nextAction(t, actionChan).(statepkg.ViewerInputAction)
			if !ok || action.Input != tt.want {
				t.Fatalf("got %#v, want input %v", action, tt.want)
			}
		})
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(newViewerState(t, true))

	if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, 0)) {
		t.Fatalf("Ctrl+C should quit")
	}
	if _, ok := nextAction(t, actionChan).(statepkg.QuitAction); !ok {
		t.Fatalf("Expected QuitAction")
	}
}

func TestCtrlZSuspends(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(newViewerState(t, false))

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlZ, 0, 0)) {
		t.Fatalf("Ctrl+Z should not quit")
	}
	if _, ok := nextAction(t, actionChan).(statepkg.SuspendAction); !ok {
		t.Fatalf("Expected SuspendAction")
	}
}
