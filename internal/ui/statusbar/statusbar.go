package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/keynav/internal/types"
	"github.com/riordanpawley/keynav/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	width   int
	styles  *styles.Styles
	pending string // command buffer or typed hint prefix
	info    string
	editing bool
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithPending shows keys typed but not yet resolved
func (sb StatusBar) WithPending(keys string) StatusBar {
	sb.pending = keys
	return sb
}

// WithInfo shows a short message on the right-hand side
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// WithEditing switches the hints to field editing
func (sb StatusBar) WithEditing(editing bool) StatusBar {
	sb.editing = editing
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeStyle := sb.styles.StatusMode
	if sb.mode == types.ModeHintSelecting {
		modeStyle = sb.styles.StatusModeHint
	}
	parts := []string{modeStyle.Render(" " + sb.mode.String() + " ")}

	if sb.pending != "" {
		parts = append(parts, " ", sb.styles.StatusBuffer.Render(sb.pending))
	}

	// Keybinding hints
	hints := GetHints(sb.mode)
	if sb.editing {
		hints = EditingHints
	}
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}

	if sb.info != "" {
		parts = append(parts, sb.styles.StatusHint.Render(" │ "), sb.styles.StatusInfo.Render(sb.info))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}
