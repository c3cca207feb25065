package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// CleanDisplay keeps printable ASCII, spaces and newlines. Everything else,
// including tabs, control bytes and non-ASCII runes, is dropped so that paths
// and matched lines cannot corrupt the list panels.
func CleanDisplay(text string) string {
	for i := 0; i < len(text); i++ {
		if !keepDisplayByte(text[i]) {
			return cleanDisplaySlow(text)
		}
	}
	return text
}

func cleanDisplaySlow(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x80 && keepDisplayByte(byte(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepDisplayByte(c byte) bool {
	return (c > 0x20 && c < 0x7f) || c == ' ' || c == '\n'
}

// CleanTerminalOutput prepares raw PTY output for the terminal panel: escape
// sequences are stripped, carriage returns removed and tabs expanded.
func CleanTerminalOutput(raw string) string {
	if raw == "" {
		return ""
	}
	out := ansi.Strip(raw)
	out = strings.ReplaceAll(out, "\r", "")
	if !strings.ContainsRune(out, '\t') {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = ExpandTabs(line, DefaultTabWidth)
	}
	return strings.Join(lines, "\n")
}
