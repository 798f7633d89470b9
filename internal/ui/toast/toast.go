package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/keynav/internal/types"
	"github.com/riordanpawley/keynav/internal/ui/styles"
)

// MaxVisible is the number of toasts kept on screen at once
const MaxVisible = 3

// Queue holds the active toasts, oldest first
type Queue struct {
	toasts []types.Toast
	ttl    time.Duration
}

// NewQueue creates a queue whose toasts live for ttl
func NewQueue(ttl time.Duration) *Queue {
	return &Queue{ttl: ttl}
}

// Push adds a toast, dropping the oldest beyond MaxVisible.
// Repeating the newest toast only extends its lifetime.
func (q *Queue) Push(level types.ToastLevel, message string, now time.Time) {
	if n := len(q.toasts); n > 0 && q.toasts[n-1].Level == level && q.toasts[n-1].Message == message {
		q.toasts[n-1].Expires = now.Add(q.ttl)
		return
	}
	q.toasts = append(q.toasts, types.Toast{Level: level, Message: message, Expires: now.Add(q.ttl)})
	if len(q.toasts) > MaxVisible {
		q.toasts = q.toasts[len(q.toasts)-MaxVisible:]
	}
}

// Prune drops expired toasts. Returns true if any remain.
func (q *Queue) Prune(now time.Time) bool {
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	q.toasts = kept
	return len(q.toasts) > 0
}

// Toasts returns the active toasts
func (q *Queue) Toasts() []types.Toast {
	return q.toasts
}

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders a stack of toasts aligned to the right
// Returns empty string if no toasts to display
func (r *ToastRenderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := min(width/2, 50)

	var rendered []string
	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
