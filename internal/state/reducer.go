package state

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/kk-code-lab/vuit/internal/search"
	"github.com/kk-code-lab/vuit/internal/terminal"
)

// Indexer rebuilds the list of files under the root.
type Indexer interface {
	Rebuild() []string
}

// SearchJob is a running content search as seen by the reducer.
type SearchJob interface {
	Progress() int
	Total() int
	Take() ([]search.ContentMatch, bool)
}

// Terminal is the embedded shell.
type Terminal interface {
	Send(cmd string) (terminal.SendResult, error)
	Interrupt()
	Snapshot() string
	Clear()
}

// Services are the side-effecting collaborators the reducer drives.
type Services struct {
	Index       Indexer
	Terminal    Terminal
	StartSearch func(files []string, query string) SearchJob
	Replace     func(matches []search.ContentMatch, find, replacement string) (search.ReplaceStats, error)
}

// StateReducer applies actions to an AppState. It is the only writer of the
// state and runs on the application goroutine.
type StateReducer struct {
	svc Services
}

// NewStateReducer creates a reducer over svc.
func NewStateReducer(svc Services) *StateReducer {
	return &StateReducer{svc: svc}
}

// Reduce applies action to state. A returned error is fatal to the session.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== INPUT =====

	case InputCharAction:
		if state.Context == ContextHelp {
			return state, nil
		}
		state.Input += string(a.Char)
		if state.Context == ContextFileviewer {
			r.applyFileFilter(state)
		}
		return state, nil

	case InputBackspaceAction:
		if state.Context == ContextHelp || state.Input == "" {
			return state, nil
		}
		runes := []rune(state.Input)
		state.Input = string(runes[:len(runes)-1])
		if state.Context == ContextFileviewer {
			r.applyFileFilter(state)
		}
		return state, nil

	case SubmitAction:
		return r.submit(state)

	// ===== NAVIGATION =====

	case NavigateDownAction:
		n := state.FocusedLen()
		if n == 0 {
			return state, nil
		}
		if state.SelectedIndex < n-1 {
			state.SelectedIndex++
		}
		state.clampSelection()
		state.MatchSelected = state.Focus == FocusFilestrlist
		r.refreshPreview(state)
		return state, nil

	case NavigateUpAction:
		if state.FocusedLen() == 0 {
			return state, nil
		}
		if state.SelectedIndex > 0 {
			state.SelectedIndex--
		}
		state.clampSelection()
		state.MatchSelected = state.Focus == FocusFilestrlist
		r.refreshPreview(state)
		return state, nil

	case CycleFocusAction:
		r.cycleFocus(state)
		return state, nil

	// ===== CONTEXT =====

	case ToggleStringsearchAction:
		switch state.Context {
		case ContextFileviewer:
			state.CurrentFilter = state.Input
			state.Input = ""
			r.switchContext(state, ContextStringsearch)
		case ContextStringsearch, ContextStringsearchreplace:
			state.Input = ""
			state.SearchFilter = ""
			r.dropMatches(state)
			r.switchContext(state, ContextFileviewer)
			r.applyFileFilter(state)
		}
		return state, nil

	case ToggleReplaceAction:
		switch state.Context {
		case ContextStringsearch:
			state.Input = ""
			r.switchContext(state, ContextStringsearchreplace)
			if state.SearchFilter != "" {
				state.Status = fmt.Sprintf("Replace %q with:", state.SearchFilter)
			}
		case ContextStringsearchreplace:
			state.Input = ""
			state.Status = ""
			r.switchContext(state, ContextStringsearch)
		}
		return state, nil

	case ToggleTerminalAction:
		if state.Context == ContextTerminal {
			state.Input = ""
			r.returnToPrevious(state, ContextTerminal)
			return state, nil
		}
		if state.Context == ContextHelp || state.Context == ContextStringsearchreplace {
			return state, nil
		}
		state.Input = ""
		if r.svc.Terminal != nil {
			r.svc.Terminal.Clear()
		}
		state.TermOutput = ""
		r.switchContext(state, ContextTerminal)
		r.refreshPreview(state)
		return state, nil

	case ToggleHelpAction:
		if state.Context == ContextHelp {
			r.returnToPrevious(state, ContextHelp)
			return state, nil
		}
		state.Input = ""
		r.switchContext(state, ContextHelp)
		r.refreshPreview(state)
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	case TogglePreviewAction:
		state.PreviewVisible = !state.PreviewVisible
		r.refreshPreview(state)
		return state, nil

	case NextColorSchemeAction:
		r.nextColorScheme(state)
		return state, nil

	case RescanAction:
		r.rescan(state)
		return state, nil

	case RemoveRecentAction:
		if state.Focus != FocusRecentfiles || state.Recent.Len() == 0 {
			return state, nil
		}
		state.Recent.Remove(state.SelectedIndex)
		state.SelectedIndex = 0
		if state.Recent.Len() == 0 {
			state.Focus = FocusFilelist
		}
		state.clampSelection()
		r.refreshPreview(state)
		return state, nil

	case RunInTerminalAction:
		return r.runInTerminal(state)

	case InterruptShellAction:
		if r.svc.Terminal != nil {
			r.svc.Terminal.Interrupt()
		}
		return state, nil

	// ===== LIFECYCLE =====

	case ExitAction:
		state.Exit = true
		return state, nil

	case EditorClosedAction:
		if a.Target.Remember {
			state.Recent.Push(a.Target.Path)
		}
		state.MatchSelected = false
		if a.Err != nil {
			state.Status = fmt.Sprintf("editor: %v", a.Err)
		}
		r.refreshPreview(state)
		return state, nil

	case TickAction:
		r.pollSearch(state)
		if state.Context == ContextTerminal && r.svc.Terminal != nil {
			state.TermOutput = r.svc.Terminal.Snapshot()
		}
		return state, nil

	case StatusAction:
		state.Status = a.Message
		return state, nil
	}

	return state, nil
}

// RefreshPreview reloads the preview for the highlighted entry.
func (r *StateReducer) RefreshPreview(state *AppState) {
	r.refreshPreview(state)
}

func (r *StateReducer) submit(state *AppState) (*AppState, error) {
	switch state.Context {
	case ContextStringsearch:
		r.startSearch(state)
		return state, nil

	case ContextStringsearchreplace:
		r.replace(state)
		return state, nil

	case ContextTerminal:
		if r.svc.Terminal == nil {
			return state, nil
		}
		cmd := state.Input
		state.Input = ""
		r.svc.Terminal.Clear()
		res, err := r.svc.Terminal.Send(cmd)
		if err != nil {
			state.FatalErr = err
			return state, err
		}
		state.TermOutput = r.svc.Terminal.Snapshot()
		if res == terminal.LeaveTerminal {
			state.PrevContext = ContextTerminal
			state.Context = ContextFileviewer
			r.refreshPreview(state)
		}
		return state, nil
	}
	return state, nil
}

func (r *StateReducer) applyFileFilter(state *AppState) {
	state.refilter()
	state.clampSelection()
	r.refreshPreview(state)
}

func (r *StateReducer) switchContext(state *AppState, next Context) {
	state.PrevContext = state.Context
	state.Context = next
}

// returnToPrevious leaves the current overlay context. Returning into the
// overlay itself falls back to the file viewer.
func (r *StateReducer) returnToPrevious(state *AppState, leaving Context) {
	target := state.PrevContext
	if target == leaving {
		target = ContextFileviewer
	}
	state.PrevContext = leaving
	state.Context = target
	r.refreshPreview(state)
}

func (r *StateReducer) dropMatches(state *AppState) {
	state.Matches = nil
	state.MatchSelected = false
	if state.Focus == FocusFilestrlist {
		state.Focus = FocusFilelist
		state.SelectedIndex = 0
	}
	state.clampSelection()
}

func (r *StateReducer) cycleFocus(state *AppState) {
	start := 0
	for i, f := range focusOrder {
		if f == state.Focus {
			start = i
			break
		}
	}
	for step := 1; step < len(focusOrder); step++ {
		next := focusOrder[(start+step)%len(focusOrder)]
		if state.listLen(next) == 0 {
			continue
		}
		state.Focus = next
		state.SelectedIndex = 0
		state.MatchSelected = next == FocusFilestrlist
		r.refreshPreview(state)
		return
	}
}

func (r *StateReducer) nextColorScheme(state *AppState) {
	n := len(state.Palette)
	if n == 0 {
		return
	}
	state.SchemeIndex = (state.SchemeIndex + 1) % n
	state.ColorScheme = state.Palette[state.SchemeIndex]
	state.HighlightColor = state.Palette[(state.SchemeIndex+1)%n]
}

func (r *StateReducer) rescan(state *AppState) {
	if r.svc.Index == nil {
		return
	}
	state.Index = r.svc.Index.Rebuild()
	filter := state.Input
	if state.Context != ContextFileviewer {
		filter = state.CurrentFilter
	}
	state.Files = search.Filter(state.Index, filter)
	state.clampSelection()
	state.Status = fmt.Sprintf("Indexed %d files", len(state.Index))
	r.refreshPreview(state)
}

func (r *StateReducer) startSearch(state *AppState) {
	if state.job != nil {
		state.Status = "Search already running"
		return
	}
	if r.svc.StartSearch == nil {
		return
	}
	state.SearchFilter = state.Input
	r.dropMatches(state)
	state.Status = ""
	state.job = r.svc.StartSearch(state.Files, state.Input)
	log.Printf("content search started: %q over %d files", state.Input, len(state.Files))
	r.pollSearch(state)
}

// pollSearch installs the results of a finished job. Results that arrive
// after the user left the search contexts are discarded.
func (r *StateReducer) pollSearch(state *AppState) {
	job := state.job
	if job == nil || job.Progress() < job.Total() {
		return
	}
	matches, ok := job.Take()
	if !ok {
		return
	}
	state.job = nil
	if state.Context != ContextStringsearch && state.Context != ContextStringsearchreplace {
		return
	}
	state.Matches = matches
	state.clampSelection()
	r.refreshPreview(state)
}

func (r *StateReducer) replace(state *AppState) {
	if r.svc.Replace == nil || state.SearchFilter == "" || len(state.Matches) == 0 {
		return
	}
	stats, err := r.svc.Replace(state.Matches, state.SearchFilter, state.Input)
	if err != nil {
		state.Status = fmt.Sprintf("replace: %v", err)
	} else {
		state.Status = fmt.Sprintf("Replaced %d lines in %d files", stats.Lines, stats.Files)
		if stats.SkippedFiles > 0 {
			state.Status += fmt.Sprintf(" (%d unreadable)", stats.SkippedFiles)
		}
	}
	state.Input = ""
	r.dropMatches(state)
	r.refreshPreview(state)
}

func (r *StateReducer) runInTerminal(state *AppState) (*AppState, error) {
	path, ok := state.HighlightedPath()
	if !ok || r.svc.Terminal == nil {
		return state, nil
	}
	abs := filepath.Join(state.Root, filepath.FromSlash(path))

	if state.Context != ContextTerminal {
		r.switchContext(state, ContextTerminal)
	}
	state.Input = ""
	r.svc.Terminal.Clear()
	res, err := r.svc.Terminal.Send(abs)
	if err != nil {
		state.FatalErr = err
		return state, err
	}
	if res == terminal.LeaveTerminal {
		state.PrevContext = ContextTerminal
		state.Context = ContextFileviewer
	}
	state.TermOutput = r.svc.Terminal.Snapshot()
	r.refreshPreview(state)
	return state, nil
}
