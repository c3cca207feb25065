package config

import "strings"

// BuiltinColors is the colour cycle offered by the next-colour key.
var BuiltinColors = []string{
	"lightblue",
	"cyan",
	"lightgreen",
	"yellow",
	"lightred",
	"green",
	"lightcyan",
	"blue",
	"lightyellow",
	"red",
}

// Palette returns the colour cycle for a session. A configured scheme that
// is not built in is placed first so cycling can return to it.
func Palette(scheme string) []string {
	palette := make([]string, 0, len(BuiltinColors)+1)
	if scheme != "" && IndexOf(BuiltinColors, scheme) < 0 {
		palette = append(palette, scheme)
	}
	return append(palette, BuiltinColors...)
}

// IndexOf finds name in palette ignoring case, or returns -1.
func IndexOf(palette []string, name string) int {
	for i, c := range palette {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}
