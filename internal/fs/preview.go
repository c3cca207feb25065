package fs

import (
	"errors"
	"strings"
)

// previewByteLimit bounds how much of a file is read to build a preview.
const previewByteLimit int64 = 256 * 1024

// ErrNotText is returned by ReadLines for content that sniffs as binary.
var ErrNotText = errors.New("not a text file")

// ReadLines returns lines [skip, skip+limit) of the text file at path along
// with the 0-based index of the first returned line. Only the preview byte
// window is visible; a skip past its end falls back to the head of the file.
// Trailing carriage returns are removed; no other cleanup is applied.
func ReadLines(path string, skip, limit int) ([]string, int, error) {
	if limit <= 0 {
		return nil, 0, nil
	}
	if skip < 0 {
		skip = 0
	}

	head, err := ReadFileHead(path, previewByteLimit)
	if err != nil {
		return nil, 0, err
	}
	if !IsTextFile(path, head) {
		return nil, 0, ErrNotText
	}

	text := NormalizeTextContent(head)
	if text == "" {
		return nil, 0, nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	if skip >= len(lines) {
		skip = 0
	}
	lines = lines[skip:]
	if len(lines) > limit {
		lines = lines[:limit]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSuffix(line, "\r")
	}
	return out, skip, nil
}
