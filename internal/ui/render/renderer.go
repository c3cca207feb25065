package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
	"github.com/kk-code-lab/vuit/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	highlighter      *previewHighlighter
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:      screen,
		theme:       GetColorTheme(nil),
		highlighter: newPreviewHighlighter(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	r.screen.HideCursor()
	if state == nil {
		r.screen.Show()
		return
	}
	r.theme = GetColorTheme(state)

	w, h := r.screen.Size()
	layout := computeLayout(w, h, state)

	r.drawRecent(state, layout.recent)
	r.drawFiles(state, layout.files)
	if !layout.preview.empty() {
		r.drawPreview(state, layout.preview)
	}

	switch state.Context {
	case statepkg.ContextFileviewer:
		r.drawCounter(counterRect(layout.files, fileCounterWidth, fileCounterInset),
			fmt.Sprintf(" [ %d / %d ] ", len(state.Files), len(state.Index)))
	case statepkg.ContextStringsearch, statepkg.ContextStringsearchreplace:
		r.drawMatches(state, layout.panel)
		r.drawCounter(counterRect(layout.panel, matchCounterWidth, matchCounterInset), searchCounterText(state))
	case statepkg.ContextTerminal:
		r.drawTerminal(state, layout.panel)
	case statepkg.ContextHelp:
		r.drawHelp(layout.panel)
	}

	r.drawCommandLine(state, layout.commandLine)
	r.drawHelpToggle(layout.helpToggle)

	r.screen.Show()
}

func searchCounterText(state *statepkg.AppState) string {
	if state.SearchInFlight() {
		progress, total := state.SearchProgress()
		return fmt.Sprintf(" [ %d / %d ] ", progress, total)
	}
	return fmt.Sprintf(" [ %d Matches ] ", len(state.Matches))
}

// commandLineText is the prompt shown in the command line box.
func commandLineText(state *statepkg.AppState) string {
	switch state.Context {
	case statepkg.ContextStringsearch:
		filter := "null"
		if state.CurrentFilter != "" {
			filter = fmt.Sprintf("%q", state.CurrentFilter)
		}
		return fmt.Sprintf(" [FILE FILTER: %s] > %s", filter, state.Input)
	case statepkg.ContextStringsearchreplace:
		return fmt.Sprintf(" [REPLACE: %q] > %s", state.SearchFilter, state.Input)
	default:
		return " > " + state.Input
	}
}

// visibleWindow returns the first row to draw so selected stays on screen.
func visibleWindow(selected, total, height int) int {
	if height <= 0 || total == 0 {
		return 0
	}
	if selected >= total {
		selected = total - 1
	}
	if selected >= height {
		return selected + 1 - height
	}
	return 0
}

// drawList draws items in a bordered box with the selected row highlighted
// when the list holds focus. Items are paths as stored; they are sanitised
// here, at the last moment before drawing.
func (r *Renderer) drawList(area rect, title string, items []string, selected int, focused bool, fit func(string, int) string) {
	if area.empty() {
		return
	}
	r.drawBox(area, title, alignCenter, r.theme.Border)
	in := area.inner()
	if in.empty() {
		return
	}

	start := 0
	if focused {
		start = visibleWindow(selected, len(items), in.h)
	}
	for row := 0; row < in.h && start+row < len(items); row++ {
		idx := start + row
		style := r.theme.Text
		if focused && idx == selected {
			style = r.theme.Selection
			r.fillRow(in.x, in.y+row, in.w, style)
		}
		r.drawTextLine(in.x, in.y+row, in.w, fit(textutil.CleanDisplay(items[idx]), in.w), style)
	}
}

func (r *Renderer) drawRecent(state *statepkg.AppState, area rect) {
	r.drawList(area, " Recent ", state.Recent.Items(), state.SelectedIndex,
		state.Focus == statepkg.FocusRecentfiles, textutil.TruncateLeft)
}

func (r *Renderer) drawFiles(state *statepkg.AppState, area rect) {
	r.drawList(area, " Files ", state.Files, state.SelectedIndex,
		state.Focus == statepkg.FocusFilelist, textutil.TruncateLeft)
}

func (r *Renderer) drawMatches(state *statepkg.AppState, area rect) {
	items := make([]string, len(state.Matches))
	for i, m := range state.Matches {
		items[i] = m.String()
	}
	r.drawList(area, " Strings ", items, state.SelectedIndex,
		state.Focus == statepkg.FocusFilestrlist, r.truncateTextToWidth)
}

// drawTerminal shows the tail of the shell output that fits the panel.
func (r *Renderer) drawTerminal(state *statepkg.AppState, area rect) {
	if area.empty() {
		return
	}
	r.drawBox(area, " Terminal ", alignCenter, r.theme.Plain)
	in := area.inner()
	if in.empty() {
		return
	}

	output := textutil.CleanTerminalOutput(state.TermOutput)
	if output == "" {
		return
	}
	lines := strings.Split(output, "\n")
	if len(lines) > in.h {
		lines = lines[len(lines)-in.h:]
	}
	for row, line := range lines {
		r.drawTextLine(in.x, in.y+row, in.w, textutil.TruncateRight(line, in.w), r.theme.Plain)
	}
}

func (r *Renderer) drawHelp(area rect) {
	if area.empty() {
		return
	}
	r.drawBox(area, " Help Menu ", alignCenter, r.theme.Plain)
	in := area.inner()
	colWidth := in.w / 2
	for col, lines := range buildHelpColumns() {
		x := in.x + col*colWidth
		for row, line := range lines {
			if row >= in.h {
				break
			}
			r.drawTextLine(x+1, in.y+row, colWidth-2, r.truncateTextToWidth(line, colWidth-2), r.theme.Plain)
		}
	}
}

func (r *Renderer) drawCounter(area rect, text string) {
	if area.empty() {
		return
	}
	for row := 0; row < area.h; row++ {
		r.fillRow(area.x, area.y+row, area.w, tcell.StyleDefault)
	}
	r.drawBox(area, "", alignCenter, r.theme.Border)
	in := area.inner()
	text = r.truncateTextToWidth(text, in.w)
	pad := (in.w - r.measureTextWidth(text)) / 2
	r.drawTextLine(in.x+pad, in.y, in.w-pad, text, r.theme.Text)
}

func (r *Renderer) drawCommandLine(state *statepkg.AppState, area rect) {
	if area.empty() {
		return
	}
	r.drawBox(area, " Command Line ", alignLeft, r.theme.Border)
	if state.Status != "" {
		r.drawBorderLabel(area, area.y+area.h-1, " "+textutil.CleanDisplay(state.Status)+" ", alignRight, r.theme.Border)
	}
	in := area.inner()
	if in.empty() {
		return
	}

	prompt := commandLineText(state)
	visible := textutil.TruncateLeft(prompt, in.w-1)
	end := r.drawTextLine(in.x, in.y, in.w, visible, r.theme.Text)
	r.screen.ShowCursor(end, in.y)
}

func (r *Renderer) drawHelpToggle(area rect) {
	if area.empty() {
		return
	}
	r.drawBox(area, "", alignCenter, r.theme.Border)
	in := area.inner()
	if in.empty() {
		return
	}
	r.drawTextLine(in.x, in.y, in.w, helpToggleText, r.theme.Text.Bold(true))
}
