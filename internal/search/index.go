package search

import (
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"
)

// FileIndex enumerates the regular files below a root directory, honouring
// git-style ignore files.
type FileIndex struct {
	root string
}

// NewFileIndex returns an index rooted at root. Nothing is read until Rebuild.
func NewFileIndex(root string) *FileIndex {
	return &FileIndex{root: root}
}

// Rebuild walks the tree breadth-first and returns every non-ignored regular
// file as a slash-separated path relative to the root. Names are kept
// byte-for-byte as the filesystem reports them so they can be opened again.
// Unreadable directories and entries are skipped.
func (idx *FileIndex) Rebuild() []string {
	started := time.Now()
	files := make([]string, 0, 256)

	idx.walkFilesBFS(func(relPath string) {
		files = append(files, relPath)
	})

	log.Printf("index rebuilt: %d files in %s", len(files), time.Since(started).Round(time.Millisecond))
	return files
}

func (idx *FileIndex) walkFilesBFS(handle func(relPath string)) {
	type dirNode struct {
		absPath string
		relPath string
	}

	provider := newIgnoreProvider(idx.root)
	queue := []dirNode{{absPath: idx.root, relPath: "."}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(node.absPath)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			rel := joinRelPath(node.relPath, entry.Name())
			fullPath := filepath.Join(node.absPath, entry.Name())

			isDir, regular, ok := classifyEntry(fullPath, entry)
			if !ok {
				continue
			}
			if isDir && entry.Name() == ".git" {
				continue
			}
			if provider.Ignored(rel, isDir) {
				continue
			}

			if isDir {
				// Symlinked directories are not followed to avoid cycles.
				if entry.Type()&fs.ModeSymlink != 0 {
					continue
				}
				queue = append(queue, dirNode{absPath: fullPath, relPath: rel})
				continue
			}

			if regular {
				handle(rel)
			}
		}
	}
}

// classifyEntry resolves symlinks with os.Stat. Dangling links report ok=false.
func classifyEntry(fullPath string, entry fs.DirEntry) (isDir, regular, ok bool) {
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(fullPath)
		if err != nil {
			return false, false, false
		}
		return info.IsDir(), info.Mode().IsRegular(), true
	}
	return mode.IsDir(), mode.IsRegular(), true
}

func joinRelPath(parent, child string) string {
	if parent == "." || parent == "" {
		return child
	}
	return path.Join(parent, child)
}
