package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== INPUT ACTIONS =====

type InputCharAction struct {
	Char rune
}
type InputBackspaceAction struct{}

// SubmitAction is Enter when it does not open an editor: start a content
// search, run a replace, or send the typed command to the shell.
type SubmitAction struct{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type CycleFocusAction struct{}

// ===== CONTEXT ACTIONS =====

type ToggleStringsearchAction struct{}
type ToggleReplaceAction struct{}
type ToggleTerminalAction struct{}
type ToggleHelpAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type TogglePreviewAction struct{}
type NextColorSchemeAction struct{}
type RescanAction struct{}
type RemoveRecentAction struct{}

// RunInTerminalAction sends the highlighted file's absolute path to the shell.
type RunInTerminalAction struct{}

// InterruptShellAction delivers Ctrl-C to the embedded shell.
type InterruptShellAction struct{}

// ===== APPLICATION ACTIONS =====

// These are handled by the application before they reach the reducer.
type QuitAction struct{}
type SuspendAction struct{}
type YankPathAction struct{}
type OpenEditorAction struct{}

// TmuxSplitAction opens a shell in a new tmux pane; Ctrl-t inside tmux.
type TmuxSplitAction struct{}

// ExitAction is Esc: it raises the exit flag and the loop stops.
type ExitAction struct{}

// EditorClosedAction reports that the editor for Target has exited.
type EditorClosedAction struct {
	Target EditorTarget
	Err    error
}

// TickAction is dispatched on every idle tick of the main loop.
type TickAction struct{}

// StatusAction replaces the status line message.
type StatusAction struct {
	Message string
}
