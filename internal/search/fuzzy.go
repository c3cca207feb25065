package search

import (
	"sort"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// nfcSource feeds index entries to the matcher in NFC form so composed and
// decomposed spellings of a name match the same query.
type nfcSource []string

func (s nfcSource) String(i int) string { return norm.NFC.String(s[i]) }
func (s nfcSource) Len() int            { return len(s) }

// Rank scores every index entry against query. Entries that do not contain
// the query as a subsequence are dropped. Results are ordered by descending
// score; equal scores keep index order. An empty query ranks the whole index
// with score zero in index order. Path is always the entry as indexed.
func Rank(index []string, query string) []RankedMatch {
	if query == "" {
		ranked := make([]RankedMatch, len(index))
		for i, entry := range index {
			ranked[i] = RankedMatch{Path: entry, Index: i}
		}
		return ranked
	}

	found := fuzzy.FindFrom(norm.NFC.String(query), nfcSource(index))
	ranked := make([]RankedMatch, len(found))
	for i, m := range found {
		ranked[i] = RankedMatch{Score: m.Score, Path: index[m.Index], Index: m.Index}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})
	return ranked
}

// Filter returns the paths of Rank(index, query). The paths are the on-disk
// names; sanitising them for the screen is left to the renderer.
func Filter(index []string, query string) []string {
	ranked := Rank(index, query)
	out := make([]string, len(ranked))
	for i, m := range ranked {
		out[i] = m.Path
	}
	return out
}
