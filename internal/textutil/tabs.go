package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		column += runeCells(ru)
	}
	return builder.String()
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeCells(ru)
	}
	return width
}

// TruncateLeft keeps the tail of text so that it fits in width cells,
// prefixing an ellipsis when something was cut. Paths read better this way
// because the file name sits at the end.
func TruncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	const ellipsis = "…"
	if width == 1 {
		return ellipsis
	}

	runes := []rune(text)
	used := 1
	start := len(runes)
	for start > 0 {
		w := runeCells(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return ellipsis + string(runes[start:])
}

// TruncateRight cuts text to width cells without adding an ellipsis.
func TruncateRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "")
}

func runeCells(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 1 {
		return 1
	}
	return w
}
