// Package opener hands references to the system browser, which acts as the
// new browsing context for activate-in-new-context.
package opener

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/keynav/internal/domain"
)

// OpenedMsg reports the outcome of launching the browser
type OpenedMsg struct {
	URL string
	Err error
}

// Opener launches the configured browser command
type Opener struct {
	runner  CommandRunner
	command []string
	logger  *slog.Logger
}

// New creates an opener. An empty command selects the platform default.
func New(runner CommandRunner, command string, logger *slog.Logger) *Opener {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = DefaultCommand(runtime.GOOS)
	}
	return &Opener{runner: runner, command: fields, logger: logger}
}

// DefaultCommand returns the browser launcher for an operating system
func DefaultCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Command returns the launcher and its leading arguments
func (o *Opener) Command() []string {
	return o.command
}

// Open returns a command that opens url in the system browser
func (o *Opener) Open(url string) tea.Cmd {
	return func() tea.Msg {
		args := append(append([]string{}, o.command[1:]...), url)
		err := o.runner.Run(context.Background(), o.command[0], args...)
		if err != nil {
			err = &domain.OpenError{URL: url, Err: err}
			o.logger.Debug("browser launch failed", "error", err)
		} else {
			o.logger.Debug("opened in browser", "url", url)
		}
		return OpenedMsg{URL: url, Err: err}
	}
}
