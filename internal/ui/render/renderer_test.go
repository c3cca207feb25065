package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/vuit/internal/search"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ru, _, _, _ := screen.GetContent(x, y)
			if ru == 0 {
				ru = ' '
			}
			b.WriteRune(ru)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func newRenderState(ctx statepkg.Context) *statepkg.AppState {
	state := &statepkg.AppState{
		Context:        ctx,
		Focus:          statepkg.FocusFilelist,
		PreviewVisible: true,
		ColorScheme:    "lightblue",
		HighlightColor: "blue",
		Index:          []string{"a.go", "b.go", "docs/readme.md"},
		Files:          []string{"a.go", "b.go"},
	}
	return state
}

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "file.txt",
			width:  20,
			expect: "file.txt",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "verylongname",
			width:  6,
			expect: "veryl…",
		},
		{
			name:   "only ellipsis when width too small",
			text:   "example",
			width:  1,
			expect: "…",
		},
		{
			name:   "multi-byte characters respected",
			text:   "你好世界",
			width:  5,
			expect: "你好…",
		},
		{
			name:   "returns empty when width is zero",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil)

	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}

	if got := r.measureTextWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestVisibleWindowKeepsSelectionOnScreen(t *testing.T) {
	if got := visibleWindow(3, 10, 5); got != 0 {
		t.Fatalf("expected no scroll, got start %d", got)
	}
	if got := visibleWindow(7, 10, 5); got != 3 {
		t.Fatalf("expected start 3, got %d", got)
	}
	if got := visibleWindow(20, 10, 5); got != 5 {
		t.Fatalf("expected selection clamped to last row, got start %d", got)
	}
}

func TestRenderFileviewerShowsListsAndCounter(t *testing.T) {
	screen := newTestScreen(t, 100, 40)
	r := NewRenderer(screen)
	state := newRenderState(statepkg.ContextFileviewer)
	state.Input = "go"

	r.Render(state)
	text := screenText(screen)

	for _, want := range []string{" Recent ", " Files ", " Preview ", " Command Line ", "a.go", "b.go", "[ 2 / 3 ]", " > go", "Help -> <C-h>"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected screen to contain %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "readme") {
		t.Fatalf("filtered out entry should not be drawn:\n%s", text)
	}
}

func TestRenderSanitisesPathsOnlyOnScreen(t *testing.T) {
	screen := newTestScreen(t, 100, 40)
	r := NewRenderer(screen)
	state := newRenderState(statepkg.ContextFileviewer)
	state.Files = []string{"caf\u00e9.txt"}

	r.Render(state)
	text := screenText(screen)

	if !strings.Contains(text, "caf.txt") {
		t.Fatalf("expected sanitised name on screen:\n%s", text)
	}
	if strings.ContainsRune(text, '\u00e9') {
		t.Fatalf("non-ASCII rune should not be drawn:\n%s", text)
	}
	if state.Files[0] != "caf\u00e9.txt" {
		t.Fatalf("render must not rewrite state paths, got %q", state.Files[0])
	}
}

func TestRenderHighlightsSelectedFile(t *testing.T) {
	screen := newTestScreen(t, 100, 40)
	r := NewRenderer(screen)
	state := newRenderState(statepkg.ContextFileviewer)
	state.SelectedIndex = 1

	r.Render(state)

	files := computeLayout(100, 40, state).files.inner()
	_, _, style, _ := screen.GetContent(files.x, files.y+1)
	_, bg, _ := style.Decompose()
	if bg != colorFor("blue") {
		t.Fatalf("expected selected row background %v, got %v", colorFor("blue"), bg)
	}
	_, _, style, _ = screen.GetContent(files.x, files.y)
	if _, bg, _ = style.Decompose(); bg == colorFor("blue") {
		t.Fatalf("unselected row should not use the highlight colour")
	}
}

func TestRenderStringsearchShowsMatchesAndPrompt(t *testing.T) {
	screen := newTestScreen(t, 100, 40)
	r := NewRenderer(screen)
	state := newRenderState(statepkg.ContextStringsearch)
	state.CurrentFilter = "go"
	state.Input = "needle"
	state.Matches = []search.ContentMatch{{Path: "a.go", Line: 4, Text: "x := needle"}}

	r.Render(state)
	text := screenText(screen)

	for _, want := range []string{" Strings ", "a.go:4:x := needle", "[ 1 Matches ]", `[FILE FILTER: "go"] > needle`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected screen to contain %q:\n%s", want, text)
		}
	}
}

func TestCommandLineTextPerContext(t *testing.T) {
	state := newRenderState(statepkg.ContextStringsearch)
	state.Input = "foo"
	if got := commandLineText(state); got != " [FILE FILTER: null] > foo" {
		t.Fatalf("unexpected search prompt %q", got)
	}

	state.Context = statepkg.ContextStringsearchreplace
	state.SearchFilter = "foo"
	state.Input = "bar"
	if got := commandLineText(state); got != ` [REPLACE: "foo"] > bar` {
		t.Fatalf("unexpected replace prompt %q", got)
	}

	state.Context = statepkg.ContextTerminal
	state.Input = "ls"
	if got := commandLineText(state); got != " > ls" {
		t.Fatalf("unexpected terminal prompt %q", got)
	}
}

func TestRenderTerminalShowsCleanedTail(t *testing.T) {
	screen := newTestScreen(t, 100, 40)
	r := NewRenderer(screen)
	state := newRenderState(statepkg.ContextTerminal)

	var out strings.Builder
	for i := 0; i < 40; i++ {
		out.WriteString("line ")
		out.WriteString(strings.Repeat("x", i%3))
		out.WriteString("\r\n")
	}
	out.WriteString("\x1b[31mlast-line\x1b[0m")
	state.TermOutput = out.String()

	r.Render(state)
	text := screenText(screen)

	if !strings.Contains(text, " Terminal ") {
		t.Fatalf("expected terminal panel:\n%s", text)
	}
	if !strings.Contains(text, "last-line") {
		t.Fatalf("expected newest output line:\n%s", text)
	}
	if strings.Contains(text, "[31m") {
		t.Fatalf("escape sequences should be stripped:\n%s", text)
	}
}

func TestRenderHelpMenu(t *testing.T) {
	screen := newTestScreen(t, 160, 45)
	r := NewRenderer(screen)

	r.Render(newRenderState(statepkg.ContextHelp))
	text := screenText(screen)

	for _, want := range []string{" Help Menu ", "(General Commands)", "(Terminal Focus Commands)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected screen to contain %q:\n%s", want, text)
		}
	}
}

func TestRenderStatusOnCommandLine(t *testing.T) {
	screen := newTestScreen(t, 100, 40)
	r := NewRenderer(screen)
	state := newRenderState(statepkg.ContextFileviewer)
	state.Status = "Indexed 3 files"

	r.Render(state)

	if text := screenText(screen); !strings.Contains(text, "Indexed 3 files") {
		t.Fatalf("expected status message:\n%s", text)
	}
}

func TestRenderSurvivesTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 5, 2)
	r := NewRenderer(screen)

	for _, ctx := range []statepkg.Context{
		statepkg.ContextFileviewer,
		statepkg.ContextStringsearch,
		statepkg.ContextTerminal,
		statepkg.ContextHelp,
	} {
		r.Render(newRenderState(ctx))
	}
}
