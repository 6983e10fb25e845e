package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/msgitem/internal/state"
	"github.com/kk-code-lab/msgitem/internal/ui/viewer"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for focus checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for focus checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	helpVisible := ih.state != nil && ih.state.HelpVisible
	viewerActive := ih.state != nil && ih.state.ViewerActive()

	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}
	if ev.Key() == tcell.KeyCtrlZ {
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	}

	if helpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
		}
		return true
	}

	if viewerActive {
		if in, ok := viewerInput(ev); ok {
			ih.actionChan <- statepkg.ViewerInputAction{Input: in}
		} else if ev.Key() == tcell.KeyRune && ev.Rune() == '?' {
			ih.actionChan <- statepkg.HelpToggleAction{}
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.ConfirmAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case ' ', 'z':
			ih.actionChan <- statepkg.ConfirmAction{}
		case 'k':
			ih.actionChan <- statepkg.NavigateUpAction{}
		case 'j':
			ih.actionChan <- statepkg.NavigateDownAction{}
		case 'b':
			ih.actionChan <- statepkg.ToggleBattleAction{}
		case '?':
			ih.actionChan <- statepkg.HelpToggleAction{}
		}
	}
	return true
}

// viewerInput maps keys to viewer inputs while the viewer has focus.
func viewerInput(ev *tcell.EventKey) (viewer.Input, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return viewer.InputUp, true
	case tcell.KeyDown:
		return viewer.InputDown, true
	case tcell.KeyLeft:
		return viewer.InputLeft, true
	case tcell.KeyRight:
		return viewer.InputRight, true
	case tcell.KeyEnter:
		return viewer.InputOK, true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return viewer.InputCancel, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return viewer.InputUp, true
		case 'j':
			return viewer.InputDown, true
		case 'h':
			return viewer.InputLeft, true
		case 'l':
			return viewer.InputRight, true
		case 'z', ' ':
			return viewer.InputOK, true
		case 'q', 'x':
			return viewer.InputCancel, true
		}
	}
	return 0, false
}
