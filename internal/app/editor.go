package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	statepkg "github.com/kk-code-lab/vuit/internal/state"
)

// handleEditorOpen opens the Enter target in the configured editor and
// reports back with EditorClosedAction once the editor has returned (or,
// inside tmux, once the pane has been opened).
func (app *Application) handleEditorOpen() bool {
	target, ok := app.state.EditorTarget()
	if !ok {
		return false
	}

	err := app.openTarget(target)
	if err != nil {
		log.Printf("editor: %v", err)
	}
	app.dispatch(statepkg.EditorClosedAction{Target: target, Err: err})
	return true
}

func (app *Application) openTarget(target statepkg.EditorTarget) error {
	if len(app.editorCmd) == 0 {
		return fmt.Errorf("no editor configured")
	}
	exe, ok := resolveEditorExecutable(app.editorCmd[0])
	if !ok {
		return fmt.Errorf("editor %q not found in PATH", app.editorCmd[0])
	}

	editor := append([]string{exe}, app.editorCmd[1:]...)
	file := filepath.Join(app.state.Root, filepath.FromSlash(target.Path))
	args := editorArgs(editor, file, target.Line)

	if app.inTmux() {
		return app.runTmux(tmuxEditorArgs(args))
	}
	return app.openFileInEditor(args)
}

// openFileInEditor runs the editor on the controlling terminal with the
// screen suspended and redraws everything afterwards.
func (app *Application) openFileInEditor(editorArgs []string) error {
	useTTY := runtime.GOOS != "windows"
	var tty *os.File
	var err error

	if useTTY {
		tty, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return app.openFileInEditorFallback(editorArgs)
		}
		defer func() {
			_ = tty.Close()
		}()
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := commandBuilder(editorArgs[0], editorArgs[1:]...)
	if useTTY {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	if runErr != nil {
		return fmt.Errorf("%s: %w", editorArgs[0], runErr)
	}
	return nil
}

func (app *Application) openFileInEditorFallback(args []string) error {
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		_ = app.screen.Resume()
		app.screen.Sync()
	}()

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
