package search

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ReplaceStats summarises a ReplaceMatches run.
type ReplaceStats struct {
	Files        int
	Lines        int
	SkippedFiles int
}

type replaceTarget struct {
	lines           []string
	trailingNewline bool
	mode            os.FileMode
	dirty           bool
	unreadable      bool
}

// ReplaceMatches replaces every occurrence of find with replacement on the
// exact lines recorded in matches. Each file is read once; a file that cannot
// be read is skipped and never written. Line numbers beyond the end of a file
// are ignored. Modified files are written back once, keeping their mode and
// whether they ended with a newline. The first write error aborts the run.
func ReplaceMatches(root string, matches []ContentMatch, find, replacement string) (ReplaceStats, error) {
	var stats ReplaceStats
	if find == "" || len(matches) == 0 {
		return stats, nil
	}

	cache := make(map[string]*replaceTarget)
	var order []string

	for _, m := range matches {
		target, ok := cache[m.Path]
		if !ok {
			target = loadReplaceTarget(filepath.Join(root, filepath.FromSlash(m.Path)))
			cache[m.Path] = target
			order = append(order, m.Path)
			if target.unreadable {
				stats.SkippedFiles++
			}
		}
		if target.unreadable {
			continue
		}

		idx := m.Line - 1
		if idx < 0 || idx >= len(target.lines) {
			continue
		}
		updated := strings.ReplaceAll(target.lines[idx], find, replacement)
		if updated == target.lines[idx] {
			continue
		}
		target.lines[idx] = updated
		target.dirty = true
		stats.Lines++
	}

	for _, rel := range order {
		target := cache[rel]
		if !target.dirty {
			continue
		}
		content := strings.Join(target.lines, "\n")
		if target.trailingNewline {
			content += "\n"
		}
		if err := os.WriteFile(filepath.Join(root, filepath.FromSlash(rel)), []byte(content), target.mode); err != nil {
			return stats, fmt.Errorf("write %s: %w", rel, err)
		}
		stats.Files++
	}

	log.Printf("replace %q -> %q: %d lines in %d files, %d skipped", find, replacement, stats.Lines, stats.Files, stats.SkippedFiles)
	return stats, nil
}

func loadReplaceTarget(path string) *replaceTarget {
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("replace: stat %s: %v", path, err)
		return &replaceTarget{unreadable: true}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("replace: read %s: %v", path, err)
		return &replaceTarget{unreadable: true}
	}

	text := string(data)
	trailing := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	var lines []string
	if text != "" || trailing {
		lines = strings.Split(text, "\n")
	}
	return &replaceTarget{
		lines:           lines,
		trailingNewline: trailing,
		mode:            info.Mode().Perm(),
	}
}
