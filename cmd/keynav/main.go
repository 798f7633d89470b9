// Package main provides the entry point for the keynav terminal document viewer.
//
// keynav shows HTML, Markdown and text documents with keyboard hints for
// every link and form control.
//
// Usage:
//
//	keynav [--config path] [--debug] <file or URL>
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/keynav/internal/app"
	"github.com/riordanpawley/keynav/internal/config"
	"github.com/riordanpawley/keynav/internal/services/clipboard"
	"github.com/riordanpawley/keynav/internal/services/document"
	"github.com/riordanpawley/keynav/internal/services/opener"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var debug, showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&debug, "debug", false, "Log at debug level")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: keynav [options] <file or URL>\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println("keynav", config.Version)
		return 0
	}
	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	level := cfg.Log.SlogLevel()
	if debug {
		level = slog.LevelDebug
	}
	logger, closeLog := setupLogger(cfg.Log.Dir, level)
	defer closeLog()

	loader := document.NewLoader(document.Options{
		Timeout:   cfg.FetchTimeout(),
		UserAgent: cfg.Fetch.UserAgent,
	}, logger)

	model := app.New(app.Options{
		Config:   cfg,
		Loader:   loader,
		Copier:   clipboard.NewWriter(logger),
		Launcher: opener.New(&opener.ExecRunner{}, cfg.Opener.Command, logger),
		Logger:   logger,
		Ref:      flag.Arg(0),
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return config.LoadConfig(cwd)
}

// setupLogger writes to <dir>/keynav.log since the terminal belongs to the UI.
// Logging is discarded if the file cannot be opened.
func setupLogger(dir string, level slog.Level) (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: level}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "keynav.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}

	return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }
}
