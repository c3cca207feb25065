package app

import (
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
)

const (
	tickInterval  = 100 * time.Millisecond
	watchDebounce = 300 * time.Millisecond
)

// Run drives the session until the user exits. A returned error is fatal.
func (app *Application) Run() error {
	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	quitPoll := make(chan struct{})
	defer close(quitPoll)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quitPoll:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var watchCh <-chan struct{}
	if app.watcher != nil {
		watchCh = app.watcher.Changes()
	}
	var debounce *time.Timer
	var debounceCh <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
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
		case <-ticker.C:
			if app.handleAction(statepkg.TickAction{}) {
				renderPending = true
			}
		case <-watchCh:
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				debounce.Reset(watchDebounce)
			}
			debounceCh = debounce.C
		case <-debounceCh:
			debounceCh = nil
			if app.handleAction(statepkg.RescanAction{}) {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
		if app.state.FatalErr != nil {
			return app.state.FatalErr
		}
		if app.state.Exit {
			app.shouldQuit = true
		}
	}
	return nil
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
			return false
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			app.screen.Sync()
		}
		return true
	case *tcell.EventInterrupt:
		return true
	}
	return false
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

// dispatch queues an action produced by the application itself.
func (app *Application) dispatch(action statepkg.Action) {
	select {
	case app.actionCh <- action:
	default:
		go func() { app.actionCh <- action }()
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

	return app.handleAppAction(action)
}

// handleAppAction runs the side effects the reducer does not own and passes
// everything else on to it.
func (app *Application) handleAppAction(action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.YankPathAction:
		return app.handleClipboard()
	case statepkg.OpenEditorAction:
		return app.handleEditorOpen()
	case statepkg.TmuxSplitAction:
		if app.inTmux() {
			app.runTmux(tmuxShellArgs())
		}
		return true
	case statepkg.ToggleTerminalAction:
		if app.inTmux() && app.state.Context != statepkg.ContextTerminal {
			if app.state.Context != statepkg.ContextHelp {
				app.runTmux(tmuxShellArgs())
			}
			return true
		}
	case statepkg.RunInTerminalAction:
		if app.inTmux() {
			if target, ok := app.highlightedAbsPath(); ok {
				app.runTmux(tmuxRunArgs(target))
			}
			return true
		}
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		log.Printf("fatal: %v", err)
		app.state.FatalErr = err
	}
	return true
}
