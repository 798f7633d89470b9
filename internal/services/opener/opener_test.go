package opener

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/keynav/internal/domain"
)

// mockRunner records commands for testing
type mockRunner struct {
	calls [][]string
	err   error
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) error {
	m.calls = append(m.calls, append([]string{name}, args...))
	return m.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultCommand(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"xdg-open"}},
		{"freebsd", []string{"xdg-open"}},
		{"darwin", []string{"open"}},
		{"windows", []string{"rundll32", "url.dll,FileProtocolHandler"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultCommand(tt.goos))
		})
	}
}

func TestOpener_Open(t *testing.T) {
	runner := &mockRunner{}
	o := New(runner, "firefox --new-tab", discard())

	msg, ok := o.Open("https://example.com")().(OpenedMsg)
	require.True(t, ok)

	assert.NoError(t, msg.Err)
	assert.Equal(t, "https://example.com", msg.URL)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"firefox", "--new-tab", "https://example.com"}, runner.calls[0])

	// Leading arguments are not mutated across calls
	o.Open("https://example.org")()
	assert.Equal(t, []string{"firefox", "--new-tab", "https://example.org"}, runner.calls[1])
}

func TestOpener_DefaultsWhenEmpty(t *testing.T) {
	o := New(&mockRunner{}, "  ", discard())
	assert.NotEmpty(t, o.Command())
}

func TestOpener_OpenFailure(t *testing.T) {
	runner := &mockRunner{err: errors.New("exit status 3")}
	o := New(runner, "xdg-open", discard())

	msg := o.Open("https://example.com")().(OpenedMsg)

	var openErr *domain.OpenError
	require.True(t, errors.As(msg.Err, &openErr))
	assert.Equal(t, "https://example.com", openErr.URL)
}
