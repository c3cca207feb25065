package search

import "strconv"

// RankedMatch is a scored fuzzy filter hit. Index is the entry's position in
// the file index and breaks score ties.
type RankedMatch struct {
	Score int
	Path  string
	Index int
}

// ContentMatch is one line of one file that contains the search query.
// Line is 1-based; Text is the sanitised line content.
type ContentMatch struct {
	Path string
	Line int
	Text string
}

// String renders the match the way the match list shows it: path:line:text.
func (m ContentMatch) String() string {
	return m.Path + ":" + strconv.Itoa(m.Line) + ":" + m.Text
}
