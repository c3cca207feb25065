package app

import (
	"fmt"
	"log"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	statepkg "github.com/kk-code-lab/vuit/internal/state"
)

var (
	clipboardWrite       = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

// handleClipboard copies the absolute path of the highlighted entry.
func (app *Application) handleClipboard() bool {
	target, ok := app.highlightedAbsPath()
	if !ok {
		return false
	}
	if clipboardUnsupported() {
		app.dispatch(statepkg.StatusAction{Message: "No clipboard utility found"})
		return true
	}

	p := normalizeClipboardPath(target, runtime.GOOS)
	if err := clipboardWrite(p); err != nil {
		log.Printf("clipboard: %v", err)
		app.dispatch(statepkg.StatusAction{Message: fmt.Sprintf("clipboard: %v", err)})
		return true
	}
	app.dispatch(statepkg.StatusAction{Message: "Copied " + p})
	return true
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}
