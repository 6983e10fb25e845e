package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/kk-code-lab/msgitem/internal/catalog"
	"github.com/kk-code-lab/msgitem/internal/config"
	statepkg "github.com/kk-code-lab/msgitem/internal/state"
	"github.com/kk-code-lab/msgitem/internal/ui/input"
	renderui "github.com/kk-code-lab/msgitem/internal/ui/render"
	"github.com/kk-code-lab/msgitem/internal/ui/viewer"
)

const (
	doubleClickThreshold = 300 * time.Millisecond
	frameInterval        = time.Second / 60
)

// NewApplication opens the terminal and builds the item menu over entries.
func NewApplication(cfg config.Config, entries []*catalog.Entry, log logr.Logger) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	app, err := newApplication(screen, cfg, entries, log)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, cfg config.Config, entries []*catalog.Entry, log logr.Logger) (*Application, error) {
	geometry, err := config.NewGeometry(cfg.MessageBox, log.WithName("geometry"))
	if err != nil {
		return nil, err
	}
	indicator, err := config.NewIndicator(cfg.PageIndicator)
	if err != nil {
		return nil, err
	}
	if cfg.Sound {
		log.V(1).Info("terminal bell enabled")
	}
	sound := newBellSound(screen, cfg.Sound)

	v := viewer.New(geometry, indicator, sound, log.WithName("viewer"))
	state := statepkg.NewAppState(entries, v, sound, log.WithName("scene"))
	w, h := screen.Size()
	state.Resize(w, h)

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := input.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:       screen,
		state:        state,
		reducer:      statepkg.NewStateReducer(),
		renderer:     renderui.NewRenderer(screen),
		input:        inputHandler,
		actionCh:     actionCh,
		log:          log,
		lastClickRow: -1,
	}, nil
}

func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var frameTimer *time.Timer
	var frameCh <-chan time.Time

	startFrames := func() {
		if frameCh != nil {
			return
		}
		if frameTimer == nil {
			frameTimer = time.NewTimer(frameInterval)
		} else {
			frameTimer.Reset(frameInterval)
		}
		frameCh = frameTimer.C
	}

	stopFrames := func() {
		if frameTimer == nil || frameCh == nil {
			return
		}
		if !frameTimer.Stop() {
			select {
			case <-frameTimer.C:
			default:
			}
		}
		frameCh = nil
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		if app.state.NeedsFrames() {
			startFrames()
		} else {
			stopFrames()
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-frameCh:
			frameCh = nil
			if app.handleAction(statepkg.TickAction{}) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	stopFrames()
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse routes wheel and button presses to the focused window. Only the
// press edge of a button counts; held buttons repeat nothing.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state == nil || app.state.HelpVisible {
		return
	}
	buttons := ev.Buttons()
	pressed := buttons &^ app.lastButtons
	app.lastButtons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	viewerActive := app.state.ViewerActive()

	switch {
	case buttons&tcell.WheelUp != 0:
		if viewerActive {
			app.actionCh <- statepkg.ViewerInputAction{Input: viewer.InputUp}
		} else {
			app.actionCh <- statepkg.NavigateUpAction{}
		}
		return
	case buttons&tcell.WheelDown != 0:
		if viewerActive {
			app.actionCh <- statepkg.ViewerInputAction{Input: viewer.InputDown}
		} else {
			app.actionCh <- statepkg.NavigateDownAction{}
		}
		return
	}

	x, y := ev.Position()

	if pressed&tcell.Button2 != 0 {
		if viewerActive {
			app.actionCh <- statepkg.ViewerInputAction{Input: viewer.InputCancel}
		}
		return
	}
	if pressed&tcell.Button1 == 0 {
		return
	}

	if viewerActive {
		app.actionCh <- statepkg.ViewerTouchAction{X: x, Y: y}
		return
	}
	if !app.state.ItemList.IsOpenAndActive() {
		return
	}

	row := app.state.ItemList.HitTest(x, y)
	if row < 0 {
		app.lastClickRow = -1
		return
	}

	doubleClick := app.lastClickRow == row && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickRow = row
	app.lastClickTime = time.Now()

	app.actionCh <- statepkg.MouseSelectAction{Index: row}
	if doubleClick {
		app.lastClickRow = -1
		app.actionCh <- statepkg.ConfirmAction{}
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.log.Error(err, "action failed", "action", action)
		return true
	}
	if _, tick := action.(statepkg.TickAction); !tick {
		app.state.LastError = nil
	}
	return true
}
