package state

import (
	"github.com/kk-code-lab/vuit/internal/config"
	"github.com/kk-code-lab/vuit/internal/search"
)

const (
	PreviewLines         = 50
	PreviewLinesWithDock = 30

	noPreview = "No Preview Available"
)

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth. Only StateReducer writes it.
type AppState struct {
	// Working root all paths are relative to
	Root string

	Context     Context
	PrevContext Context
	Focus       Focus

	// Typed text: file filter, search query, replacement or shell command
	// depending on Context.
	Input         string
	CurrentFilter string // file filter captured when entering content search
	SearchFilter  string // query of the last started content search

	SelectedIndex int

	// File index and the filtered view of it
	Index []string
	Files []string

	Recent RecentFiles

	// Content search
	Matches       []search.ContentMatch
	MatchSelected bool
	job           SearchJob

	// Preview of the highlighted entry
	Preview          []string
	PreviewStart     int // 1-based line number of Preview[0]
	PreviewMatchLine int // highlighted line for match previews, 0 when none
	PreviewPath      string
	PreviewVisible   bool

	// Terminal panel
	TermOutput string

	// Colours
	Palette        []string
	SchemeIndex    int
	ColorScheme    string
	HighlightColor string

	ScreenWidth  int
	ScreenHeight int

	Status   string
	Exit     bool
	FatalErr error
}

// NewAppState returns the initial state for root with the configured colours.
func NewAppState(root string, cfg config.Config) *AppState {
	palette := config.Palette(cfg.ColorScheme)
	idx := config.IndexOf(palette, cfg.ColorScheme)
	if idx < 0 {
		idx = 0
	}
	return &AppState{
		Root:           root,
		Context:        ContextFileviewer,
		PrevContext:    ContextFileviewer,
		Focus:          FocusFilelist,
		PreviewVisible: true,
		Palette:        palette,
		SchemeIndex:    idx,
		ColorScheme:    cfg.ColorScheme,
		HighlightColor: cfg.HighlightColor,
	}
}

// ===== HELPER METHODS =====

// SearchInFlight reports whether a content search job is running.
func (s *AppState) SearchInFlight() bool {
	return s.job != nil
}

// SearchProgress returns the running job's progress and total.
func (s *AppState) SearchProgress() (int, int) {
	if s.job == nil {
		return 0, 0
	}
	return s.job.Progress(), s.job.Total()
}

// FocusedLen returns the length of the list Focus points at.
func (s *AppState) FocusedLen() int {
	return s.listLen(s.Focus)
}

func (s *AppState) listLen(f Focus) int {
	switch f {
	case FocusRecentfiles:
		return s.Recent.Len()
	case FocusFilestrlist:
		return len(s.Matches)
	default:
		return len(s.Files)
	}
}

// HighlightedPath returns the file under the cursor in the focused list.
func (s *AppState) HighlightedPath() (string, bool) {
	switch s.Focus {
	case FocusRecentfiles:
		return s.Recent.at(s.SelectedIndex)
	case FocusFilestrlist:
		m, ok := s.HighlightedMatch()
		return m.Path, ok
	default:
		if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Files) {
			return "", false
		}
		return s.Files[s.SelectedIndex], true
	}
}

// HighlightedMatch returns the content match under the cursor.
func (s *AppState) HighlightedMatch() (search.ContentMatch, bool) {
	if s.Focus != FocusFilestrlist || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Matches) {
		return search.ContentMatch{}, false
	}
	return s.Matches[s.SelectedIndex], true
}

// EditorTarget is a file the user asked to open.
type EditorTarget struct {
	Path string
	Line int // 0 when no line is known
	// Remember marks targets picked from the file or match list; those are
	// pushed onto the recent list once the editor closes.
	Remember bool
}

// EditorTarget returns what Enter opens in the current Context, if anything.
// In the content search contexts Enter only opens a selected match; otherwise
// it starts a search or a replace.
func (s *AppState) EditorTarget() (EditorTarget, bool) {
	switch s.Context {
	case ContextFileviewer:
		path, ok := s.HighlightedPath()
		if !ok {
			return EditorTarget{}, false
		}
		target := EditorTarget{Path: path, Remember: s.Focus == FocusFilelist}
		if m, ok := s.HighlightedMatch(); ok {
			target.Line = m.Line
			target.Remember = true
		}
		return target, true
	case ContextStringsearch, ContextStringsearchreplace:
		if !s.MatchSelected {
			return EditorTarget{}, false
		}
		m, ok := s.HighlightedMatch()
		if !ok {
			return EditorTarget{}, false
		}
		return EditorTarget{Path: m.Path, Line: m.Line, Remember: true}, true
	default:
		return EditorTarget{}, false
	}
}

// BottomPanelOpen reports whether the terminal or help panel takes space
// below the lists.
func (s *AppState) BottomPanelOpen() bool {
	return s.Context == ContextTerminal || s.Context == ContextHelp
}

func (s *AppState) previewLimit() int {
	if s.BottomPanelOpen() {
		return PreviewLinesWithDock
	}
	return PreviewLines
}

func (s *AppState) clampSelection() {
	n := s.FocusedLen()
	switch {
	case n == 0:
		s.SelectedIndex = 0
	case s.SelectedIndex >= n:
		s.SelectedIndex = n - 1
	case s.SelectedIndex < 0:
		s.SelectedIndex = 0
	}
}

func (s *AppState) refilter() {
	s.Files = search.Filter(s.Index, s.Input)
}
