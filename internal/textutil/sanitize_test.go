package textutil

import "testing"

func TestCleanDisplayLeavesSafeInput(t *testing.T) {
	input := "src/main.rs:12:fn main() {"
	if got := CleanDisplay(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestCleanDisplayDropsControlAndNonASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"escape sequence", "bad\x1b[31mred", "bad[31mred"},
		{"tab dropped", "a\tb", "ab"},
		{"newline kept", "a\nb", "a\nb"},
		{"unicode dropped", "zażółć.txt", "za.txt"},
		{"carriage return", "line\r", "line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanDisplay(tt.input); got != tt.want {
				t.Fatalf("CleanDisplay(%q)=%q want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTerminalOutput(t *testing.T) {
	raw := "\x1b[1;32muser\x1b[0m@host\r\n\tindented"
	got := CleanTerminalOutput(raw)
	want := "user@host\n    indented"
	if got != want {
		t.Fatalf("CleanTerminalOutput=%q want %q", got, want)
	}
}

func TestTruncateLeftKeepsTail(t *testing.T) {
	got := TruncateLeft("internal/search/content.go", 12)
	if got != "…/content.go" {
		t.Fatalf("TruncateLeft=%q", got)
	}
	if DisplayWidth(got) != 12 {
		t.Fatalf("expected width 12, got %d", DisplayWidth(got))
	}
	if got := TruncateLeft("short", 12); got != "short" {
		t.Fatalf("short input changed: %q", got)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("ab\tc", 4); got != "ab  c" {
		t.Fatalf("ExpandTabs=%q", got)
	}
}
