package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
)

// ColorTheme holds the styles derived from the session's colour scheme.
type ColorTheme struct {
	Border    tcell.Style
	Text      tcell.Style
	Selection tcell.Style
	Plain     tcell.Style // terminal output and help text
	MatchLine tcell.Style // preview row of the selected content match
}

var namedColors = map[string]tcell.Color{
	"red":         tcell.PaletteColor(1),
	"green":       tcell.PaletteColor(2),
	"yellow":      tcell.PaletteColor(3),
	"blue":        tcell.PaletteColor(4),
	"cyan":        tcell.PaletteColor(6),
	"gray":        tcell.PaletteColor(8),
	"lightred":    tcell.PaletteColor(9),
	"lightgreen":  tcell.PaletteColor(10),
	"lightyellow": tcell.PaletteColor(11),
	"lightblue":   tcell.PaletteColor(12),
	"lightcyan":   tcell.PaletteColor(14),
	"white":       tcell.PaletteColor(15),
}

// colorFor maps a configured colour name to a terminal colour. Names outside
// the built-in set go through tcell's lookup (W3C names, #rrggbb); anything
// still unknown renders light blue.
func colorFor(name string) tcell.Color {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[key]; ok {
		return c
	}
	if c := tcell.GetColor(key); c != tcell.ColorDefault {
		return c
	}
	return namedColors["lightblue"]
}

// GetColorTheme returns the styles for the state's current scheme.
func GetColorTheme(state *statepkg.AppState) ColorTheme {
	scheme, highlight := "", ""
	if state != nil {
		scheme, highlight = state.ColorScheme, state.HighlightColor
	}
	fg := colorFor(scheme)
	base := tcell.StyleDefault.Foreground(fg)
	return ColorTheme{
		Border:    base,
		Text:      base,
		Selection: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(colorFor(highlight)),
		Plain:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
		MatchLine: base.Reverse(true),
	}
}
