package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEditorCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "  ", want: nil},
		{name: "single word", in: "vim", want: []string{"vim"}},
		{name: "flags", in: "code --wait -n", want: []string{"code", "--wait", "-n"}},
		{name: "quoted executable", in: `"/opt/my editor/bin/ed" -q`, want: []string{"/opt/my editor/bin/ed", "-q"}},
		{name: "home expansion", in: "~/bin/ed", want: []string{filepath.Join(home, "bin/ed")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseEditorCommand(tt.in))
		})
	}
}

func TestEditorArgsLineJump(t *testing.T) {
	assert.Equal(t,
		[]string{"/usr/bin/nvim", "+12", "/w/a.go"},
		editorArgs([]string{"/usr/bin/nvim"}, "/w/a.go", 12))
	assert.Equal(t,
		[]string{"vi", "/w/a.go"},
		editorArgs([]string{"vi"}, "/w/a.go", 0))
	assert.Equal(t,
		[]string{"code", "--wait", "/w/a.go"},
		editorArgs([]string{"code", "--wait"}, "/w/a.go", 12))
}

func TestNormalizeClipboardPath(t *testing.T) {
	assert.Equal(t, `C:\Users\me\project\sub\file.txt`,
		normalizeClipboardPath(`C:\Users\me/project/sub/file.txt`, "windows"))
	assert.Equal(t, "/tmp/project/file.txt",
		normalizeClipboardPath("/tmp/project/dir/../file.txt", "linux"))
}

func TestDirWatcherReportsChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	w, err := newDirWatcher(root)
	require.NoError(t, err)
	t.Cleanup(w.Close)

	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "new.txt"), []byte("x"), 0o644))

	assert.Eventually(t, func() bool {
		select {
		case <-w.Changes():
			return true
		default:
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)
}

func TestSkipWatchDir(t *testing.T) {
	assert.True(t, skipWatchDir(".git"))
	assert.True(t, skipWatchDir("node_modules"))
	assert.True(t, skipWatchDir(".cache"))
	assert.False(t, skipWatchDir("src"))
}
