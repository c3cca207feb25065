package state

// MaxRecentFiles bounds the recently opened list.
const MaxRecentFiles = 5

// RecentFiles is an ordered, duplicate-free list of opened paths. When full,
// the oldest entry is evicted.
type RecentFiles struct {
	items []string
}

// Push appends path unless it is already present.
func (r *RecentFiles) Push(path string) {
	if path == "" || r.Contains(path) {
		return
	}
	r.items = append(r.items, path)
	if over := len(r.items) - MaxRecentFiles; over > 0 {
		r.items = append(r.items[:0:0], r.items[over:]...)
	}
}

// Remove deletes the entry at i. Out-of-range indexes are ignored.
func (r *RecentFiles) Remove(i int) {
	if i < 0 || i >= len(r.items) {
		return
	}
	r.items = append(r.items[:i:i], r.items[i+1:]...)
}

func (r *RecentFiles) Contains(path string) bool {
	for _, item := range r.items {
		if item == path {
			return true
		}
	}
	return false
}

// Items returns a copy of the entries, oldest first.
func (r *RecentFiles) Items() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

func (r *RecentFiles) Len() int {
	return len(r.items)
}

func (r *RecentFiles) at(i int) (string, bool) {
	if i < 0 || i >= len(r.items) {
		return "", false
	}
	return r.items[i], true
}
