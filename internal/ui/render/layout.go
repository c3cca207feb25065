package render

import statepkg "github.com/kk-code-lab/vuit/internal/state"

const (
	recentPanelLines = 8
	bottomPanelLines = 20
	commandLineLines = 3
	helpToggleWidth  = 18

	fileCounterWidth  = 21
	fileCounterInset  = 24
	matchCounterWidth = 27
	matchCounterInset = 30
	counterLines      = 3
)

type rect struct {
	x, y, w, h int
}

func (rc rect) empty() bool {
	return rc.w <= 0 || rc.h <= 0
}

// inner is the area inside a one-cell border.
func (rc rect) inner() rect {
	in := rect{x: rc.x + 1, y: rc.y + 1, w: rc.w - 2, h: rc.h - 2}
	if in.w < 0 {
		in.w = 0
	}
	if in.h < 0 {
		in.h = 0
	}
	return in
}

type layoutMetrics struct {
	recent      rect
	files       rect
	preview     rect // empty when the preview is hidden
	panel       rect // strings, terminal or help; empty in Fileviewer
	commandLine rect
	helpToggle  rect
}

// hasBottomPanel reports whether the context shows a panel above the
// command line.
func hasBottomPanel(ctx statepkg.Context) bool {
	switch ctx {
	case statepkg.ContextStringsearch, statepkg.ContextStringsearchreplace,
		statepkg.ContextTerminal, statepkg.ContextHelp:
		return true
	default:
		return false
	}
}

func computeLayout(w, h int, state *statepkg.AppState) layoutMetrics {
	var m layoutMetrics

	bottom := commandLineLines
	if state != nil && hasBottomPanel(state.Context) {
		bottom += bottomPanelLines
	}
	content := h - bottom
	if content < 0 {
		content = 0
		bottom = h
	}

	leftWidth := w
	if state == nil || state.PreviewVisible {
		leftWidth = w / 2
		m.preview = rect{x: leftWidth, y: 0, w: w - leftWidth, h: content}
	}

	recentLines := recentPanelLines
	if recentLines > content {
		recentLines = content
	}
	m.recent = rect{x: 0, y: 0, w: leftWidth, h: recentLines}
	m.files = rect{x: 0, y: recentLines, w: leftWidth, h: content - recentLines}

	y := content
	if bottom > commandLineLines {
		m.panel = rect{x: 0, y: y, w: w, h: bottom - commandLineLines}
		y += m.panel.h
	}
	cmdLines := h - y
	if cmdLines > commandLineLines {
		cmdLines = commandLineLines
	}
	toggle := helpToggleWidth
	if toggle > w {
		toggle = w
	}
	m.commandLine = rect{x: 0, y: y, w: w - toggle, h: cmdLines}
	m.helpToggle = rect{x: w - toggle, y: y, w: toggle, h: cmdLines}
	return m
}

// counterRect places a small counter box on the lower right of area.
func counterRect(area rect, width, inset int) rect {
	if area.h < counterLines+1 || area.w < inset {
		return rect{}
	}
	return rect{
		x: area.x + area.w - inset,
		y: area.y + area.h - counterLines - 1,
		w: width,
		h: counterLines,
	}
}
