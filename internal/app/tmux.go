package app

import (
	"fmt"
	"log"
	"path/filepath"
)

// editorPaneWidth is the share of the window left to vuit after the editor
// pane opens next to it.
const editorPaneWidth = "20%"

func (app *Application) inTmux() bool {
	return app.getenv != nil && app.getenv("TMUX") != ""
}

// tmuxEditorArgs opens the editor in a pane to the right and shrinks the
// pane vuit runs in.
func tmuxEditorArgs(editor []string) []string {
	args := append([]string{"split-window", "-h"}, editor...)
	return append(args, ";", "resize-pane", "-t", "!", "-x", editorPaneWidth)
}

func tmuxShellArgs() []string {
	return []string{"split-window", "-h"}
}

// tmuxRunArgs runs file as the pane's command.
func tmuxRunArgs(file string) []string {
	return []string{"split-window", "-h", file}
}

func (app *Application) runTmux(args []string) error {
	out, err := commandBuilder("tmux", args...).CombinedOutput()
	if err != nil {
		log.Printf("tmux %v: %v: %s", args, err, out)
		return fmt.Errorf("tmux: %w", err)
	}
	return nil
}

func (app *Application) highlightedAbsPath() (string, bool) {
	rel, ok := app.state.HighlightedPath()
	if !ok {
		return "", false
	}
	return filepath.Join(app.state.Root, filepath.FromSlash(rel)), true
}
