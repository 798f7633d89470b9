package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/keynav/internal/types"
	"github.com/riordanpawley/keynav/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestToastRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	assert.Equal(t, "", renderer.Render(nil, 80))
}

func TestToastRenderer_Render_LoadError(t *testing.T) {
	renderer := New(styles.New())
	toasts := []types.Toast{
		{Level: types.ToastError, Message: "read missing.html: no such file", Expires: start.Add(5 * time.Second)},
	}

	result := ansi.Strip(renderer.Render(toasts, 120))

	assert.Contains(t, result, "read missing.html")
}

func TestToastRenderer_Render_Stacked(t *testing.T) {
	renderer := New(styles.New())
	toasts := []types.Toast{
		{Level: types.ToastInfo, Message: "Copied next.html", Expires: start},
		{Level: types.ToastWarning, Message: "No visible elements to hint", Expires: start},
	}

	result := ansi.Strip(renderer.Render(toasts, 80))

	lines := strings.Split(result, "\n")
	require.Greater(t, len(lines), 1, "toasts stack vertically")
	copied := strings.Index(result, "Copied next.html")
	warning := strings.Index(result, "No visible elements")
	assert.True(t, copied >= 0 && warning > copied, "oldest toast on top")
}

func TestToastRenderer_Render_WidthFollowsTerminal(t *testing.T) {
	renderer := New(styles.New())
	toasts := []types.Toast{{Level: types.ToastInfo, Message: "Copied index.html", Expires: start}}

	narrow := ansi.Strip(renderer.Render(toasts, 40))
	wide := ansi.Strip(renderer.Render(toasts, 200))

	for _, line := range strings.Split(narrow, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20+2, "half the terminal width plus the border")
	}
	for _, line := range strings.Split(wide, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 50+2, "capped width plus the border")
	}
}

func TestToastRenderer_styleForLevel(t *testing.T) {
	s := styles.New()
	renderer := New(s)

	tests := []struct {
		name  string
		level types.ToastLevel
		want  string
	}{
		{"info", types.ToastInfo, s.ToastInfo.Render("x")},
		{"success", types.ToastSuccess, s.ToastSuccess.Render("x")},
		{"warning", types.ToastWarning, s.ToastWarning.Render("x")},
		{"error", types.ToastError, s.ToastError.Render("x")},
		{"unknown falls back to info", types.ToastLevel(42), s.ToastInfo.Render("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderer.styleForLevel(tt.level).Render("x"))
		})
	}
}

func TestQueue_PushAndPrune(t *testing.T) {
	q := NewQueue(3 * time.Second)

	q.Push(types.ToastInfo, "Copied next.html", start)
	q.Push(types.ToastError, "load failed", start.Add(time.Second))
	assert.Len(t, q.Toasts(), 2)

	assert.True(t, q.Prune(start.Add(3*time.Second)), "load error still live")
	require.Len(t, q.Toasts(), 1)
	assert.Equal(t, "load failed", q.Toasts()[0].Message)

	assert.False(t, q.Prune(start.Add(4*time.Second)))
	assert.Empty(t, q.Toasts())
}

func TestQueue_RepeatedWarningRefreshes(t *testing.T) {
	q := NewQueue(3 * time.Second)

	q.Push(types.ToastWarning, "No visible elements to hint", start)
	q.Push(types.ToastWarning, "No visible elements to hint", start.Add(2*time.Second))

	require.Len(t, q.Toasts(), 1)
	assert.Equal(t, start.Add(5*time.Second), q.Toasts()[0].Expires)

	// Same text at another level is a new toast
	q.Push(types.ToastError, "No visible elements to hint", start.Add(2*time.Second))
	assert.Len(t, q.Toasts(), 2)
}

func TestQueue_DropsOldest(t *testing.T) {
	q := NewQueue(time.Minute)

	for _, ref := range []string{"a.html", "b.html", "c.html", "d.html"} {
		q.Push(types.ToastInfo, "Copied "+ref, start)
	}

	toasts := q.Toasts()
	require.Len(t, toasts, MaxVisible)
	assert.Equal(t, "Copied b.html", toasts[0].Message)
	assert.Equal(t, "Copied d.html", toasts[MaxVisible-1].Message)
}
