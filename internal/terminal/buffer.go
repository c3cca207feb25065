package terminal

import (
	"strings"
	"sync"
)

// MaxLines bounds the number of lines a session keeps. The oldest lines are
// dropped first.
const MaxLines = 2000

// lineBuffer accumulates PTY output as lines. The unterminated tail (usually
// the shell prompt) is kept separately until its newline arrives.
type lineBuffer struct {
	mu      sync.Mutex
	lines   []string
	partial string
	limit   int
}

func newLineBuffer(limit int) *lineBuffer {
	if limit <= 0 {
		limit = MaxLines
	}
	return &lineBuffer{limit: limit}
}

// Write appends raw output. It never fails.
func (b *lineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := b.partial + string(p)
	for {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			break
		}
		b.lines = append(b.lines, text[:idx])
		text = text[idx+1:]
	}
	b.partial = text
	b.trimLocked()
	return len(p), nil
}

// AppendLine adds a complete line, flushing any pending partial line first.
func (b *lineBuffer) AppendLine(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.partial != "" {
		b.lines = append(b.lines, b.partial)
		b.partial = ""
	}
	b.lines = append(b.lines, line)
	b.trimLocked()
}

func (b *lineBuffer) trimLocked() {
	if over := len(b.lines) - b.limit; over > 0 {
		kept := make([]string, b.limit)
		copy(kept, b.lines[over:])
		b.lines = kept
	}
}

func (b *lineBuffer) Reset() {
	b.mu.Lock()
	b.lines = nil
	b.partial = ""
	b.mu.Unlock()
}

func (b *lineBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// String joins the buffered lines with newlines, followed by the partial line.
func (b *lineBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.partial == "" {
		return strings.Join(b.lines, "\n")
	}
	if len(b.lines) == 0 {
		return b.partial
	}
	return strings.Join(b.lines, "\n") + "\n" + b.partial
}
