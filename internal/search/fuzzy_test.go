package search

import "testing"

func TestFilterEmptyQueryKeepsIndexOrder(t *testing.T) {
	index := []string{"src/main.rs", "LICENSE", "README.md"}
	got := Filter(index, "")
	if len(got) != len(index) {
		t.Fatalf("expected %d entries, got %v", len(index), got)
	}
	for i := range index {
		if got[i] != index[i] {
			t.Fatalf("position %d: expected %q, got %q", i, index[i], got[i])
		}
	}
}

func TestFilterDropsNonMatches(t *testing.T) {
	index := []string{"src/main.rs", "LICENSE", "README.md"}
	got := Filter(index, "mai")
	if len(got) != 1 || got[0] != "src/main.rs" {
		t.Fatalf("expected only src/main.rs, got %v", got)
	}
}

func TestRankOrdersByScoreThenIndex(t *testing.T) {
	index := []string{"docs/x", "lib/x", "internal/state/reducer.go", "cmd/main.go"}
	ranked := Rank(index, "x")
	if len(ranked) != 2 {
		t.Fatalf("expected two matches, got %+v", ranked)
	}
	if ranked[0].Score == ranked[1].Score && ranked[0].Index > ranked[1].Index {
		t.Fatalf("equal scores must keep index order, got %+v", ranked)
	}

	ranked = Rank([]string{"internal/state/reducer.go", "main.go", "cmd/main.go"}, "main")
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if prev.Score < cur.Score {
			t.Fatalf("scores out of order at %d: %+v", i, ranked)
		}
		if prev.Score == cur.Score && prev.Index > cur.Index {
			t.Fatalf("tie broken against index order at %d: %+v", i, ranked)
		}
	}
	if len(ranked) != 2 {
		t.Fatalf("expected main.go and cmd/main.go, got %+v", ranked)
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	got := Filter([]string{"README.md", "notes.txt"}, "readme")
	if len(got) != 1 || got[0] != "README.md" {
		t.Fatalf("expected README.md, got %v", got)
	}
}

func TestFilterKeepsOnDiskPaths(t *testing.T) {
	got := Filter([]string{"dir/caf\u00e9.txt"}, "caf")
	if len(got) != 1 || got[0] != "dir/caf\u00e9.txt" {
		t.Fatalf("expected the indexed path unchanged, got %q", got)
	}
}

func TestRankMatchesDecomposedNames(t *testing.T) {
	decomposed := "cafe\u0301.txt"
	ranked := Rank([]string{decomposed, "other.txt"}, "caf\u00e9")
	if len(ranked) != 1 {
		t.Fatalf("expected the decomposed name to match a composed query, got %+v", ranked)
	}
	if ranked[0].Path != decomposed || ranked[0].Index != 0 {
		t.Fatalf("expected the indexed spelling back, got %+v", ranked[0])
	}
}
