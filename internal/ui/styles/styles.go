package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/keynav/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Page
	TitleBar lipgloss.Style
	Gutter   lipgloss.Style
	Text     lipgloss.Style
	Focused  lipgloss.Style

	// Elements
	ElementKind func(kind domain.ElementKind) lipgloss.Style

	// Hint badges
	Badge      lipgloss.Style
	BadgeTyped lipgloss.Style

	// Status bar
	StatusBar      lipgloss.Style
	StatusMode     lipgloss.Style
	StatusModeHint lipgloss.Style
	StatusBuffer   lipgloss.Style
	StatusHint     lipgloss.Style
	StatusInfo     lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		TitleBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Lavender).
			Bold(true),

		Gutter: lipgloss.NewStyle().
			Foreground(Surface2),

		Text: lipgloss.NewStyle().
			Foreground(Text),

		Focused: lipgloss.NewStyle().
			Background(Surface1).
			Underline(true),

		ElementKind: func(kind domain.ElementKind) lipgloss.Style {
			color, ok := KindColors[kind]
			if !ok {
				color = Text
			}
			style := lipgloss.NewStyle().Foreground(color)
			if kind == domain.KindLink {
				style = style.Underline(true)
			}
			return style
		},

		Badge: lipgloss.NewStyle().
			Foreground(Base).
			Background(Yellow).
			Bold(true),

		BadgeTyped: lipgloss.NewStyle().
			Foreground(Base).
			Background(Peach),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusModeHint: lipgloss.NewStyle().
			Background(Yellow).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusBuffer: lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}
