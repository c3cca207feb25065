package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/vuit/internal/config"
	"github.com/kk-code-lab/vuit/internal/search"
	"github.com/kk-code-lab/vuit/internal/terminal"
)

type fakeIndexer struct {
	files []string
	calls int
}

func (f *fakeIndexer) Rebuild() []string {
	f.calls++
	out := make([]string, len(f.files))
	copy(out, f.files)
	return out
}

type fakeTerminal struct {
	sent       []string
	interrupts int
	clears     int
	output     string
	leaveOn    string
	sendErr    error
}

func (f *fakeTerminal) Send(cmd string) (terminal.SendResult, error) {
	f.sent = append(f.sent, cmd)
	if f.sendErr != nil {
		return terminal.StayInTerminal, f.sendErr
	}
	if cmd == f.leaveOn {
		return terminal.LeaveTerminal, nil
	}
	return terminal.StayInTerminal, nil
}

func (f *fakeTerminal) Interrupt()       { f.interrupts++ }
func (f *fakeTerminal) Snapshot() string { return f.output }
func (f *fakeTerminal) Clear()           { f.clears++; f.output = "" }

type fakeJob struct {
	progress int
	total    int
	matches  []search.ContentMatch
	taken    bool
}

func (j *fakeJob) Progress() int { return j.progress }
func (j *fakeJob) Total() int    { return j.total }
func (j *fakeJob) Take() ([]search.ContentMatch, bool) {
	if j.progress < j.total || j.taken {
		return nil, false
	}
	j.taken = true
	return j.matches, true
}

type testEnv struct {
	state    *AppState
	reducer  *StateReducer
	index    *fakeIndexer
	term     *fakeTerminal
	jobs     []*fakeJob
	nextJob  *fakeJob
	replaced [][]search.ContentMatch
}

func newTestEnv(t *testing.T, files ...string) *testEnv {
	t.Helper()
	env := &testEnv{
		index: &fakeIndexer{files: files},
		term:  &fakeTerminal{},
	}
	env.state = NewAppState(t.TempDir(), config.Default())
	env.reducer = NewStateReducer(Services{
		Index:    env.index,
		Terminal: env.term,
		StartSearch: func(files []string, query string) SearchJob {
			job := env.nextJob
			if job == nil {
				job = &fakeJob{total: len(files)}
			}
			env.nextJob = nil
			env.jobs = append(env.jobs, job)
			return job
		},
		Replace: func(matches []search.ContentMatch, find, replacement string) (search.ReplaceStats, error) {
			env.replaced = append(env.replaced, matches)
			return search.ReplaceStats{Files: 1, Lines: len(matches)}, nil
		},
	})
	env.state.Index = env.index.Rebuild()
	env.state.Files = search.Filter(env.state.Index, "")
	return env
}

func (e *testEnv) dispatch(t *testing.T, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		if _, err := e.reducer.Reduce(e.state, action); err != nil {
			t.Fatalf("Reduce(%T) failed: %v", action, err)
		}
	}
}

func (e *testEnv) typeText(t *testing.T, text string) {
	t.Helper()
	for _, r := range text {
		e.dispatch(t, InputCharAction{Char: r})
	}
}

func writeStateFile(t *testing.T, root, rel, data string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", full, err)
	}
}
