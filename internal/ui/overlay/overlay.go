// Package overlay provides modal views drawn over the page
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
	// CapturesInput reports whether the overlay is a text field. Keys reach
	// a capturing overlay only after the input gate passes them through.
	CapturesInput() bool
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}
