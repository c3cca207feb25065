package state

import (
	"testing"

	"github.com/kk-code-lab/vuit/internal/search"
)

func TestStartSearchInstallsResultsOnTick(t *testing.T) {
	env := newTestEnv(t, "a.txt", "b.txt")
	env.dispatch(t, ToggleStringsearchAction{})
	env.typeText(t, "bar")
	job := &fakeJob{total: 2}
	env.nextJob = job

	env.dispatch(t, SubmitAction{})
	if !env.state.SearchInFlight() {
		t.Fatalf("expected job in flight")
	}
	if env.state.SearchFilter != "bar" {
		t.Errorf("expected SearchFilter=bar, got %q", env.state.SearchFilter)
	}

	env.dispatch(t, SubmitAction{})
	if len(env.jobs) != 1 {
		t.Fatalf("second submit while running must not start a job, got %d", len(env.jobs))
	}

	env.dispatch(t, TickAction{})
	if len(env.state.Matches) != 0 {
		t.Fatalf("partial progress must not install matches")
	}

	job.progress = 2
	job.matches = []search.ContentMatch{{Path: "a.txt", Line: 2, Text: "bar"}}
	env.dispatch(t, TickAction{})

	if len(env.state.Matches) != 1 {
		t.Fatalf("expected one match, got %v", env.state.Matches)
	}
	if env.state.SearchInFlight() {
		t.Errorf("finished job should be dropped")
	}
}

func TestSearchResultsDiscardedAfterLeavingSearch(t *testing.T) {
	env := newTestEnv(t, "a.txt")
	env.dispatch(t, ToggleStringsearchAction{})
	env.typeText(t, "x")
	job := &fakeJob{total: 1}
	env.nextJob = job
	env.dispatch(t, SubmitAction{}, ToggleStringsearchAction{})

	job.progress = 1
	job.matches = []search.ContentMatch{{Path: "a.txt", Line: 1, Text: "x"}}
	env.dispatch(t, TickAction{})

	if len(env.state.Matches) != 0 || env.state.SearchInFlight() {
		t.Errorf("results should be dropped outside search contexts")
	}
}

func TestEditorTargetForSelectedMatch(t *testing.T) {
	env := newTestEnv(t, "a.txt")
	env.state.Context = ContextStringsearch
	env.state.Matches = []search.ContentMatch{{Path: "a.txt", Line: 7, Text: "x"}}

	if _, ok := env.state.EditorTarget(); ok {
		t.Fatalf("Enter without a selected match must start a search")
	}

	env.dispatch(t, CycleFocusAction{})
	target, ok := env.state.EditorTarget()
	if !ok || target.Path != "a.txt" || target.Line != 7 || !target.Remember {
		t.Fatalf("unexpected target %+v (ok=%v)", target, ok)
	}

	env.dispatch(t, EditorClosedAction{Target: target})
	if !env.state.Recent.Contains("a.txt") {
		t.Errorf("opened match should be remembered")
	}
	if env.state.MatchSelected {
		t.Errorf("closing the editor clears the match selection")
	}
}

func TestEditorClosedFromRecentDoesNotDuplicate(t *testing.T) {
	env := newTestEnv(t, "a.txt")
	env.state.Recent.Push("a.txt")
	env.state.Focus = FocusRecentfiles

	target, ok := env.state.EditorTarget()
	if !ok || target.Remember {
		t.Fatalf("recent entries are opened without being re-added: %+v", target)
	}
	env.dispatch(t, EditorClosedAction{Target: target})
	if env.state.Recent.Len() != 1 {
		t.Errorf("expected one recent entry, got %v", env.state.Recent.Items())
	}
}

func TestReplaceUsesRecordedQuery(t *testing.T) {
	env := newTestEnv(t, "a.txt")
	env.state.Context = ContextStringsearch
	env.state.SearchFilter = "bar"
	env.state.Matches = []search.ContentMatch{{Path: "a.txt", Line: 2, Text: "bar"}}

	env.dispatch(t, ToggleReplaceAction{})
	if env.state.Context != ContextStringsearchreplace {
		t.Fatalf("expected replace context, got %v", env.state.Context)
	}
	env.typeText(t, "baz")
	env.dispatch(t, SubmitAction{})

	if len(env.replaced) != 1 || len(env.replaced[0]) != 1 {
		t.Fatalf("expected one replace call, got %v", env.replaced)
	}
	if len(env.state.Matches) != 0 || env.state.Input != "" {
		t.Errorf("replace should clear matches and input")
	}
	if env.state.Status == "" {
		t.Errorf("expected a status message")
	}

	env.dispatch(t, ToggleReplaceAction{})
	if env.state.Context != ContextStringsearch {
		t.Errorf("expected back in Stringsearch, got %v", env.state.Context)
	}
}
