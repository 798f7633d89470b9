// Package clipboard writes text to the system clipboard
package clipboard

import (
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// CopiedMsg reports the outcome of a clipboard write
type CopiedMsg struct {
	Text string
	Err  error
}

// Writer copies text asynchronously. Failures are logged, never surfaced as
// errors to the caller.
type Writer struct {
	write  func(string) error
	logger *slog.Logger
}

// NewWriter creates a writer backed by the system clipboard
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{write: clipboard.WriteAll, logger: logger}
}

// NewWriterWithFunc creates a writer with a custom write function (for testing)
func NewWriterWithFunc(write func(string) error, logger *slog.Logger) *Writer {
	return &Writer{write: write, logger: logger}
}

// Write returns a command that copies text to the clipboard
func (w *Writer) Write(text string) tea.Cmd {
	return func() tea.Msg {
		err := w.write(text)
		if err != nil {
			w.logger.Debug("clipboard write failed", "error", err)
		}
		return CopiedMsg{Text: text, Err: err}
	}
}
