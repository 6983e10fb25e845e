package app

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/kk-code-lab/msgitem/internal/catalog"
	"github.com/kk-code-lab/msgitem/internal/config"
	"github.com/kk-code-lab/msgitem/internal/message"
	statepkg "github.com/kk-code-lab/msgitem/internal/state"
	"github.com/kk-code-lab/msgitem/internal/ui/viewer"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(80, 24)

	note := "<Item Message>\nDear reader,\n</Item Message>\n<Item Message: Page 1>\nYours.\n</Item Message>"
	entries := []*catalog.Entry{
		{ID: 1, Name: "Potion", Occasion: catalog.OccasionAlways, Consumable: true, Quantity: 2},
		{ID: 2, Name: "Old Letter", Occasion: catalog.OccasionMenu, Quantity: 1, Note: note, Messages: message.Parse(note)},
	}
	cfg := config.Default()
	cfg.Sound = false
	app, err := newApplication(scr, cfg, entries, logr.Discard())
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	return app
}

func drainActions(app *Application) []statepkg.Action {
	var actions []statepkg.Action
	for {
		select {
		case action := <-app.actionCh:
			actions = append(actions, action)
		default:
			return actions
		}
	}
}

func openLetterViewer(t *testing.T, app *Application) {
	t.Helper()
	app.handleAction(statepkg.NavigateDownAction{})
	app.handleAction(statepkg.ConfirmAction{})
	for i := 0; i < 40 && app.state.NeedsFrames(); i++ {
		app.handleAction(statepkg.TickAction{})
	}
	if !app.state.ViewerActive() {
		t.Fatalf("expected viewer to be active")
	}
}

func click(app *Application, x, y int, buttons tcell.ButtonMask) {
	app.handleMouse(tcell.NewEventMouse(x, y, buttons, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestHandleMouseSelectsItemRow(t *testing.T) {
	app := newTestApplication(t)
	content := app.state.ItemList.ContentRect()

	click(app, content.X+1, content.Y+1, tcell.Button1)

	actions := drainActions(app)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %#v", actions)
	}
	sel, ok := actions[0].(statepkg.MouseSelectAction)
	if !ok || sel.Index != 1 {
		t.Fatalf("expected MouseSelectAction{1}, got %#v", actions[0])
	}
}

func TestHandleMouseDoubleClickConfirms(t *testing.T) {
	app := newTestApplication(t)
	content := app.state.ItemList.ContentRect()

	click(app, content.X, content.Y, tcell.Button1)
	click(app, content.X, content.Y, tcell.Button1)

	actions := drainActions(app)
	if len(actions) != 3 {
		t.Fatalf("expected select, select, confirm; got %#v", actions)
	}
	if _, ok := actions[2].(statepkg.ConfirmAction); !ok {
		t.Fatalf("expected ConfirmAction last, got %#v", actions[2])
	}
}

func TestHandleMouseIgnoresHeldButton(t *testing.T) {
	app := newTestApplication(t)
	content := app.state.ItemList.ContentRect()

	app.handleMouse(tcell.NewEventMouse(content.X, content.Y, tcell.Button1, tcell.ModNone))
	app.handleMouse(tcell.NewEventMouse(content.X, content.Y+1, tcell.Button1, tcell.ModNone))

	if actions := drainActions(app); len(actions) != 1 {
		t.Fatalf("drag should not select again, got %#v", actions)
	}
}

func TestHandleMouseIgnoresClicksOutsideList(t *testing.T) {
	app := newTestApplication(t)

	click(app, 5, 0, tcell.Button1)  // header
	click(app, 5, 23, tcell.Button1) // footer
	click(app, 5, 10, tcell.Button2) // right click without viewer

	if actions := drainActions(app); len(actions) != 0 {
		t.Fatalf("expected no actions, got %#v", actions)
	}
}

func TestHandleMouseWheelMovesCursor(t *testing.T) {
	app := newTestApplication(t)

	app.handleMouse(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
	actions := drainActions(app)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %#v", actions)
	}
	if _, ok := actions[0].(statepkg.NavigateDownAction); !ok {
		t.Fatalf("expected NavigateDownAction, got %#v", actions[0])
	}
}

func TestHandleMouseRoutesToViewer(t *testing.T) {
	app := newTestApplication(t)
	openLetterViewer(t, app)
	bounds := app.state.Viewer.Bounds()

	click(app, bounds.X+2, bounds.Y, tcell.Button1)
	app.handleMouse(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	click(app, 0, 0, tcell.Button2)

	actions := drainActions(app)
	if len(actions) != 3 {
		t.Fatalf("expected touch, scroll and cancel; got %#v", actions)
	}
	touch, ok := actions[0].(statepkg.ViewerTouchAction)
	if !ok || touch.X != bounds.X+2 || touch.Y != bounds.Y {
		t.Fatalf("expected ViewerTouchAction at border, got %#v", actions[0])
	}
	if in, ok := actions[1].(statepkg.ViewerInputAction); !ok || in.Input != viewer.InputUp {
		t.Fatalf("expected wheel to scroll viewer, got %#v", actions[1])
	}
	if in, ok := actions[2].(statepkg.ViewerInputAction); !ok || in.Input != viewer.InputCancel {
		t.Fatalf("expected right click to cancel, got %#v", actions[2])
	}
}

func TestRightClickClosesViewer(t *testing.T) {
	app := newTestApplication(t)
	openLetterViewer(t, app)

	click(app, 0, 0, tcell.Button2)
	app.processActions()

	if app.state.ViewerActive() {
		t.Fatalf("viewer should have lost focus")
	}
	if !app.state.ItemList.Active() {
		t.Fatalf("item list should be active again")
	}
}
