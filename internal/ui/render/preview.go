package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
)

const previewStyleName = "dracula"

type styledRun struct {
	text  string
	style tcell.Style
}

// previewHighlighter colours preview lines by file type. Lexer lookups are
// cached per path since the same file is redrawn on every tick.
type previewHighlighter struct {
	style *chroma.Style
	path  string
	lexer chroma.Lexer
}

func newPreviewHighlighter() *previewHighlighter {
	style := styles.Get(previewStyleName)
	if style == nil {
		style = styles.Fallback
	}
	return &previewHighlighter{style: style}
}

func (h *previewHighlighter) lexerFor(path string) chroma.Lexer {
	if path == h.path {
		return h.lexer
	}
	h.path = path
	h.lexer = nil
	if lexer := lexers.Match(path); lexer != nil {
		h.lexer = chroma.Coalesce(lexer)
	}
	return h.lexer
}

// highlight splits lines into coloured runs. Files without a lexer come back
// as one run per line in base.
func (h *previewHighlighter) highlight(path string, lines []string, base tcell.Style) [][]styledRun {
	out := make([][]styledRun, len(lines))
	lexer := h.lexerFor(path)
	if lexer == nil {
		for i, line := range lines {
			out[i] = []styledRun{{text: line, style: base}}
		}
		return out
	}

	it, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		for i, line := range lines {
			out[i] = []styledRun{{text: line, style: base}}
		}
		return out
	}

	row := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		style := h.tokenStyle(tok.Type, base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				row++
			}
			if row >= len(out) {
				return out
			}
			if part != "" {
				out[row] = append(out[row], styledRun{text: part, style: style})
			}
		}
	}
	return out
}

func (h *previewHighlighter) tokenStyle(tt chroma.TokenType, base tcell.Style) tcell.Style {
	entry := h.style.Get(tt)
	style := base
	if entry.Colour.IsSet() {
		style = style.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	return style
}

func (r *Renderer) drawPreview(state *statepkg.AppState, area rect) {
	r.drawBox(area, " Preview ", alignCenter, r.theme.Border)
	in := area.inner()
	if in.empty() {
		return
	}

	lines := state.Preview
	if len(lines) > in.h {
		lines = lines[:in.h]
	}
	path := state.PreviewPath
	if state.PreviewStart == 0 {
		// placeholder line, not file content
		path = ""
	}
	runs := r.highlighter.highlight(path, lines, r.theme.Text)

	for i, line := range runs {
		y := in.y + i
		lineNo := state.PreviewStart + i
		if state.PreviewMatchLine > 0 && lineNo == state.PreviewMatchLine {
			r.fillRow(in.x, y, in.w, r.theme.MatchLine)
			r.drawTextLine(in.x, y, in.w, lines[i], r.theme.MatchLine)
			continue
		}
		x := in.x
		for _, run := range line {
			remaining := in.w - (x - in.x)
			if remaining <= 0 {
				break
			}
			x = r.drawTextLine(x, y, remaining, run.text, run.style)
		}
	}
}
