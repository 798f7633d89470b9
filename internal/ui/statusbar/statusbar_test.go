package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/keynav/internal/types"
	"github.com/riordanpawley/keynav/internal/ui/styles"
)

func TestStatusBar_RenderNormalMode(t *testing.T) {
	sb := New(types.ModeNormal, 200, styles.New())

	result := ansi.Strip(sb.Render())

	if !strings.Contains(result, "NORMAL") {
		t.Errorf("Expected status bar to contain 'NORMAL', got: %s", result)
	}
	if !strings.Contains(result, "f: follow") {
		t.Errorf("Expected status bar to contain hint command hints, got: %s", result)
	}
	if !strings.Contains(result, "j/k: scroll") {
		t.Errorf("Expected status bar to contain scroll hints, got: %s", result)
	}
}

func TestStatusBar_RenderHintMode(t *testing.T) {
	sb := New(types.ModeHintSelecting, 80, styles.New()).WithPending("n")

	result := ansi.Strip(sb.Render())

	if !strings.Contains(result, "HINT") {
		t.Errorf("Expected status bar to contain 'HINT', got: %s", result)
	}
	if !strings.Contains(result, " n ") {
		t.Errorf("Expected status bar to show the typed prefix, got: %s", result)
	}
	if !strings.Contains(result, "Esc: cancel") {
		t.Errorf("Expected status bar to contain cancel hint, got: %s", result)
	}
}

func TestStatusBar_RenderEditing(t *testing.T) {
	sb := New(types.ModeNormal, 120, styles.New()).WithEditing(true).WithInfo("editing q")

	result := ansi.Strip(sb.Render())

	if !strings.Contains(result, EditingHints) {
		t.Errorf("Expected editing hints, got: %s", result)
	}
	if strings.Contains(result, "f: follow") {
		t.Errorf("Expected normal hints to be replaced, got: %s", result)
	}
	if !strings.Contains(result, "editing q") {
		t.Errorf("Expected info text, got: %s", result)
	}
}

func TestStatusBar_Width(t *testing.T) {
	sb := New(types.ModeNormal, 200, styles.New())

	result := ansi.Strip(sb.Render())

	if w := ansi.StringWidth(result); w != 200 {
		t.Errorf("Expected width 200, got %d", w)
	}
}

func TestGetHints(t *testing.T) {
	if GetHints(types.ModeNormal) == "" {
		t.Error("Expected hints for normal mode")
	}
	if GetHints(types.Mode(42)) != "" {
		t.Error("Expected no hints for unknown mode")
	}
}
