package app

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/vuit/internal/config"
	"github.com/kk-code-lab/vuit/internal/search"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
	"github.com/kk-code-lab/vuit/internal/terminal"
	inputui "github.com/kk-code-lab/vuit/internal/ui/input"
	renderui "github.com/kk-code-lab/vuit/internal/ui/render"
)

// shell is the embedded terminal as the application sees it.
type shell interface {
	statepkg.Terminal
	Close()
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shell      shell
	watcher    *dirWatcher
	editorCmd  []string
	shouldQuit bool
	getenv     func(string) string
}

// NewApplication initialises the screen, indexes the working directory and
// starts the embedded shell.
func NewApplication(cfg config.Config) (*Application, error) {
	root, err := GetCwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	term := terminal.NewManager(terminal.Options{
		Shell: terminal.ResolveShell(cfg.Shell),
		Dir:   root,
	})
	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		term.Close()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		term.Close()
		return nil, err
	}

	app := newApplication(screen, cfg, root, term)
	if cfg.Watch {
		w, err := newDirWatcher(root)
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			app.watcher = w
		}
	}
	return app, nil
}

// newApplication wires the reducer, renderer and input handler around an
// initialised screen.
func newApplication(screen tcell.Screen, cfg config.Config, root string, term shell) *Application {
	index := search.NewFileIndex(root)

	svc := statepkg.Services{
		Index: index,
		StartSearch: func(files []string, query string) statepkg.SearchJob {
			return search.StartContentSearch(root, files, query)
		},
		Replace: func(matches []search.ContentMatch, find, replacement string) (search.ReplaceStats, error) {
			return search.ReplaceMatches(root, matches, find, replacement)
		},
	}
	if term != nil {
		svc.Terminal = term
	}

	state := statepkg.NewAppState(root, cfg)
	state.Index = index.Rebuild()
	state.Files = search.Filter(state.Index, "")
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer(svc)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)
	reducer.RefreshPreview(state)

	return &Application{
		screen:    screen,
		state:     state,
		reducer:   reducer,
		renderer:  renderui.NewRenderer(screen),
		input:     inputHandler,
		actionCh:  actionCh,
		shell:     term,
		editorCmd: parseEditorCommand(cfg.Editor),
		getenv:    os.Getenv,
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		app.watcher.Close()
	}
	if app.shell != nil {
		app.shell.Close()
	}
	app.screen.Fini()
	return nil
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
