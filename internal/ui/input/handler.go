package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for context checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for context checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into Actions. It returns false when
// the event ends the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.emit(statepkg.ResizeAction{Width: w, Height: h})
		return true
	default:
		return true
	}
}

func (ih *InputHandler) emit(action statepkg.Action) {
	ih.actionChan <- action
}

func (ih *InputHandler) context() statepkg.Context {
	if ih.state == nil {
		return statepkg.ContextFileviewer
	}
	return ih.state.Context
}

func (ih *InputHandler) focus() statepkg.Focus {
	if ih.state == nil {
		return statepkg.FocusFilelist
	}
	return ih.state.Focus
}

// processKeyEvent routes the key to the handler of the active context.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	// Keys with the same meaning everywhere
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.ExitAction{})
		return true
	case tcell.KeyCtrlN:
		ih.emit(statepkg.NextColorSchemeAction{})
		return true
	case tcell.KeyCtrlP:
		ih.emit(statepkg.TogglePreviewAction{})
		return true
	}

	switch ih.context() {
	case statepkg.ContextStringsearch:
		return ih.stringsearchKey(ev)
	case statepkg.ContextStringsearchreplace:
		return ih.replaceKey(ev)
	case statepkg.ContextTerminal:
		return ih.terminalKey(ev)
	case statepkg.ContextHelp:
		return ih.helpKey(ev)
	default:
		return ih.fileviewerKey(ev)
	}
}

// listKey handles navigation and the session keys shared by the list
// contexts. It reports whether the key was consumed and, if so, whether the
// session continues.
func (ih *InputHandler) listKey(ev *tcell.EventKey) (handled, keepRunning bool) {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyCtrlK:
		ih.emit(statepkg.NavigateUpAction{})
	case tcell.KeyDown, tcell.KeyCtrlJ:
		ih.emit(statepkg.NavigateDownAction{})
	case tcell.KeyTab:
		ih.emit(statepkg.CycleFocusAction{})
	case tcell.KeyCtrlY:
		ih.emit(statepkg.YankPathAction{})
	case tcell.KeyCtrlZ:
		ih.emit(statepkg.SuspendAction{})
	case tcell.KeyCtrlH:
		// Also the Backspace key on terminals that send 0x08.
		ih.emit(statepkg.ToggleHelpAction{})
	case tcell.KeyCtrlC:
		ih.emit(statepkg.QuitAction{})
		return true, false
	default:
		return false, true
	}
	return true, true
}

// editKey handles typing. DEL (Backspace on most terminals) removes a rune.
func (ih *InputHandler) editKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		ih.emit(statepkg.InputCharAction{Char: ev.Rune()})
		return true
	case tcell.KeyBackspace2:
		ih.emit(statepkg.InputBackspaceAction{})
		return true
	}
	return false
}

// enterInSearch opens the selected match, or submits the query/replacement.
func (ih *InputHandler) enterInSearch() {
	if ih.state != nil {
		if _, ok := ih.state.EditorTarget(); ok {
			ih.emit(statepkg.OpenEditorAction{})
			return
		}
	}
	ih.emit(statepkg.SubmitAction{})
}

func (ih *InputHandler) removeRecent() {
	if ih.focus() == statepkg.FocusRecentfiles {
		ih.emit(statepkg.RemoveRecentAction{})
	}
}

func (ih *InputHandler) fileviewerKey(ev *tcell.EventKey) bool {
	if ih.editKey(ev) {
		return true
	}
	if handled, keepRunning := ih.listKey(ev); handled {
		return keepRunning
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		ih.emit(statepkg.OpenEditorAction{})
	case tcell.KeyCtrlF:
		ih.emit(statepkg.ToggleStringsearchAction{})
	case tcell.KeyCtrlR:
		ih.emit(statepkg.RescanAction{})
	case tcell.KeyCtrlT:
		ih.emit(statepkg.ToggleTerminalAction{})
	case tcell.KeyCtrlX:
		if ih.focus() == statepkg.FocusRecentfiles {
			ih.emit(statepkg.RemoveRecentAction{})
		} else {
			ih.emit(statepkg.RunInTerminalAction{})
		}
	}
	return true
}

func (ih *InputHandler) stringsearchKey(ev *tcell.EventKey) bool {
	if ih.editKey(ev) {
		return true
	}
	if handled, keepRunning := ih.listKey(ev); handled {
		return keepRunning
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		ih.enterInSearch()
	case tcell.KeyCtrlF:
		ih.emit(statepkg.ToggleStringsearchAction{})
	case tcell.KeyCtrlS:
		ih.emit(statepkg.ToggleReplaceAction{})
	case tcell.KeyCtrlR:
		ih.emit(statepkg.RescanAction{})
	case tcell.KeyCtrlT:
		ih.emit(statepkg.ToggleTerminalAction{})
	case tcell.KeyCtrlX:
		ih.removeRecent()
	}
	return true
}

func (ih *InputHandler) replaceKey(ev *tcell.EventKey) bool {
	if ih.editKey(ev) {
		return true
	}
	if handled, keepRunning := ih.listKey(ev); handled {
		return keepRunning
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		ih.enterInSearch()
	case tcell.KeyCtrlF:
		ih.emit(statepkg.ToggleStringsearchAction{})
	case tcell.KeyCtrlS, tcell.KeyCtrlR:
		ih.emit(statepkg.ToggleReplaceAction{})
	case tcell.KeyCtrlT:
		ih.emit(statepkg.TmuxSplitAction{})
	case tcell.KeyCtrlX:
		ih.removeRecent()
	}
	return true
}

func (ih *InputHandler) terminalKey(ev *tcell.EventKey) bool {
	if ih.editKey(ev) {
		return true
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		ih.emit(statepkg.SubmitAction{})
	case tcell.KeyCtrlC:
		ih.emit(statepkg.InterruptShellAction{})
	case tcell.KeyCtrlT:
		ih.emit(statepkg.ToggleTerminalAction{})
	case tcell.KeyCtrlH:
		ih.emit(statepkg.ToggleHelpAction{})
	case tcell.KeyCtrlR:
		ih.emit(statepkg.RescanAction{})
	}
	return true
}

func (ih *InputHandler) helpKey(ev *tcell.EventKey) bool {
	if handled, keepRunning := ih.listKey(ev); handled {
		return keepRunning
	}
	if ev.Key() == tcell.KeyCtrlR {
		ih.emit(statepkg.RescanAction{})
	}
	return true
}
