package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/cham5/google-code-sample/internal/catalog"
	"github.com/cham5/google-code-sample/internal/config"
	"github.com/cham5/google-code-sample/internal/console"
	"github.com/cham5/google-code-sample/internal/library"
	"github.com/cham5/google-code-sample/internal/logging"
	"github.com/cham5/google-code-sample/internal/ui/shell"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vidcat:", err)
		os.Exit(1)
	}
}

func run() error {
	logging.Init()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cat, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	logging.Info("catalog ready: %d videos", cat.Len())

	ctl := library.New(cat)
	defer ctl.Close()

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd())
	if !cfg.InteractiveEnabled() || !stdoutTTY || !isatty.IsTerminal(os.Stdin.Fd()) {
		// Piped input: plain line-by-line mode, colored only on a terminal.
		return console.New(ctl, os.Stdout, cfg.ColorEnabled() && stdoutTTY).Run(os.Stdin)
	}

	// Anything written to stderr would corrupt the prompt.
	if logging.IsDebugEnabled() {
		path, err := xdg.StateFile(filepath.Join("vidcat", "debug.log"))
		if err != nil {
			return err
		}
		f, err := tea.LogToFile(path, "vidcat")
		if err != nil {
			return err
		}
		defer f.Close()
		logging.SetOutput(f)
	} else {
		logging.SetOutput(io.Discard)
	}

	return shell.Run(shell.New(ctl, cfg.Prompt, cfg.ColorEnabled()))
}
