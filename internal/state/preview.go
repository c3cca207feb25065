package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/vuit/internal/fs"
	"github.com/kk-code-lab/vuit/internal/textutil"
)

// refreshPreview loads the preview for the highlighted entry. Plain entries
// show the head of the file; matches show a window centred on the matched
// line, or the head when the line lies past the preview byte window. Unreadable or binary files show a single placeholder line.
func (r *StateReducer) refreshPreview(state *AppState) {
	state.Preview = nil
	state.PreviewStart = 0
	state.PreviewMatchLine = 0
	state.PreviewPath = ""

	if !state.PreviewVisible {
		return
	}
	path, ok := state.HighlightedPath()
	if !ok {
		return
	}

	limit := state.previewLimit()
	skip := 0
	if m, ok := state.HighlightedMatch(); ok {
		skip = m.Line - 1 - limit/2
		if skip < 0 {
			skip = 0
		}
		state.PreviewMatchLine = m.Line
	}

	lines, start, err := fsutil.ReadLines(filepath.Join(state.Root, filepath.FromSlash(path)), skip, limit)
	state.PreviewPath = path
	if err != nil {
		state.Preview = []string{noPreview}
		state.PreviewMatchLine = 0
		return
	}

	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = textutil.CleanDisplay(textutil.ExpandTabs(line, textutil.DefaultTabWidth))
	}
	state.Preview = cleaned
	state.PreviewStart = start + 1
}
