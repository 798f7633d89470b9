package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/keynav/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Prompt is the style of a text field prompt
	Prompt lipgloss.Style
	// Field is the style of the text being edited
	Field lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// MenuHeader is the style for help section headers
	MenuHeader lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Prompt: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Field: lipgloss.NewStyle().
			Foreground(styles.Text),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		MenuHeader: lipgloss.NewStyle().
			Foreground(styles.Subtext1).
			Bold(true),
	}
}

// Frame wraps an overlay view in the overlay container with its title
func (s *Styles) Frame(o Overlay) string {
	body := o.View()
	if title := o.Title(); title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(title), body)
	}
	return s.Overlay.Render(body)
}
