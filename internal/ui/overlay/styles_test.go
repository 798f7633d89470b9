package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStyles(t *testing.T) {
	styles := New()
	if styles == nil {
		t.Fatal("New() returned nil")
	}

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Overlay", styles.Overlay},
		{"Title", styles.Title},
		{"Prompt", styles.Prompt},
		{"Field", styles.Field},
		{"Footer", styles.Footer},
		{"MenuHeader", styles.MenuHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render("test")
			if rendered == "" {
				t.Errorf("%s style rendered empty string", tt.name)
			}
		})
	}
}

func TestStyles_Frame(t *testing.T) {
	framed := New().Frame(mockOverlay{title: "Framed", body: "content"})

	if !strings.Contains(framed, "Framed") {
		t.Errorf("Expected frame to contain title, got: %s", framed)
	}
	if !strings.Contains(framed, "content") {
		t.Errorf("Expected frame to contain body, got: %s", framed)
	}
}
