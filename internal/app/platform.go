package app

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

var commandBuilder = exec.Command

// lineAwareEditors accept a +N argument to jump to a line.
var lineAwareEditors = map[string]bool{
	"vim":  true,
	"nvim": true,
	"vi":   true,
}

// parseEditorCommand splits the configured editor into argv. A leading ~ in
// the executable is expanded. An unparsable value is used as a single word.
func parseEditorCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	args, err := shlex.Split(cmd)
	if err != nil || len(args) == 0 {
		args = []string{cmd}
	}
	args[0] = expandUserPath(args[0])
	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	sep := path[1]
	if sep != '/' && sep != '\\' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[2:])
}

// editorArgs builds the argv that opens file, jumping to line when the
// editor understands +N.
func editorArgs(editor []string, file string, line int) []string {
	args := make([]string, 0, len(editor)+2)
	args = append(args, editor...)
	if line > 0 && len(editor) > 0 && lineAwareEditors[editorName(editor[0])] {
		args = append(args, "+"+strconv.Itoa(line))
	}
	return append(args, file)
}

func editorName(executable string) string {
	return path.Base(filepath.ToSlash(executable))
}

func resolveEditorExecutable(cmd string) (string, bool) {
	if cmd == "" {
		return "", false
	}
	resolved, err := exec.LookPath(cmd)
	if err != nil {
		return "", false
	}
	return resolved, true
}
