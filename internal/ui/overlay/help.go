package overlay

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	keys   help.KeyMap
	help   help.Model
	styles *Styles
}

var closeHelp = key.NewBinding(key.WithKeys("esc", "q", "?"))

// NewHelpOverlay creates a help overlay listing keys
func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	return &HelpOverlay{
		keys:   keys,
		help:   h,
		styles: New(),
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, closeHelp) {
		return h, func() tea.Msg { return CloseOverlayMsg{} }
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		h.help.View(h.keys),
		h.styles.Footer.Render("esc / q / ? to close"),
	)
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions including padding and border
func (h *HelpOverlay) Size() (width, height int) {
	view := h.View()
	return lipgloss.Width(view) + 6, lipgloss.Height(view) + 5
}

// CapturesInput implements Overlay
func (h *HelpOverlay) CapturesInput() bool {
	return false
}
