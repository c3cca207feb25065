package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/vuit/internal/app"
	"github.com/kk-code-lab/vuit/internal/config"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vuit",
		Short: "Vim User Interface Terminal - a buffer manager for Vim",
		Long: `vuit lists the files under the current directory, filters them as you
type and opens the chosen one in your editor. It also searches file
contents, replaces text across matches and keeps a shell at hand.

Configuration is read from ~/.vuit/.vuitrc (JSON, comments allowed) or
~/.vuit/vuit.toml; VUIT_CONFIG overrides the path. Set VUIT_LOG to a file
path to write a debug log.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.SetVersionTemplate("vuit version {{.Version}}\n")
	return root
}

func run() error {
	closeLog := setupLogging(os.Getenv("VUIT_LOG"))
	defer closeLog()

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	// UTF-8 fallback so non-ASCII file names display on bare terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	runErr := app.Run()
	_ = app.Close()
	if runErr != nil {
		log.Printf("exit: %v", runErr)
	}
	return runErr
}

// setupLogging sends the standard logger to path, or discards it. The screen
// belongs to the UI, so nothing is ever logged to the terminal.
func setupLogging(path string) func() {
	log.SetPrefix("vuit: ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}
