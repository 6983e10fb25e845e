package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	statepkg "github.com/kk-code-lab/msgitem/internal/state"
	inputui "github.com/kk-code-lab/msgitem/internal/ui/input"
	renderui "github.com/kk-code-lab/msgitem/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
	log        logr.Logger

	lastButtons   tcell.ButtonMask
	lastClickRow  int
	lastClickTime time.Time
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// State exposes the application state, mainly for tests and diagnostics.
func (app *Application) State() *statepkg.AppState {
	return app.state
}
