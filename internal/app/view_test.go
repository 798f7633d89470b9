package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/keynav/internal/types"
)

func viewLines(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func TestViewHeight(t *testing.T) {
	m, _ := newTestModel(t, nil)

	t.Run("normal view", func(t *testing.T) {
		if lines := viewLines(m); len(lines) != m.height {
			t.Errorf("got %d lines, want %d", len(lines), m.height)
		}
	})

	t.Run("with hints", func(t *testing.T) {
		hm, _ := press(m, "f")
		if lines := viewLines(hm); len(lines) != m.height {
			t.Errorf("got %d lines, want %d", len(lines), m.height)
		}
		hm.gate.Reset()
	})

	t.Run("with overlay", func(t *testing.T) {
		om, _ := press(m, "?")
		if lines := viewLines(om); len(lines) > m.height {
			t.Errorf("view with overlay is too tall: got %d lines, want %d", len(lines), m.height)
		}
		om.overlay.Clear()
	})

	t.Run("with toasts", func(t *testing.T) {
		m.addToast(types.ToastInfo, "test toast")
		lines := viewLines(m)
		if len(lines) != m.height {
			t.Errorf("view with toasts: got %d lines, want %d", len(lines), m.height)
		}
		if !strings.Contains(strings.Join(lines, "\n"), "test toast") {
			t.Error("expected the toast to be drawn")
		}
	})
}

func TestViewContent(t *testing.T) {
	m, _ := newTestModel(t, nil)

	lines := viewLines(m)
	if !strings.Contains(lines[0], "Index") {
		t.Errorf("expected title bar, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "next page") {
		t.Errorf("expected first document line, got %q", lines[1])
	}
	if !strings.Contains(lines[len(lines)-1], types.ModeNormal.String()) {
		t.Errorf("expected status bar with mode, got %q", lines[len(lines)-1])
	}

	m, _ = press(m, "f")
	lines = viewLines(m)
	if !strings.Contains(lines[len(lines)-1], types.ModeHintSelecting.String()) {
		t.Errorf("expected hint mode in status bar, got %q", lines[len(lines)-1])
	}
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Options{})
	if m.View() != "Loading..." {
		t.Errorf("expected placeholder before the first resize, got %q", m.View())
	}
}

func TestStackBottom(t *testing.T) {
	got := stackBottom("a\nb\nc\nd", "x\ny", 4)
	if got != "a\nb\nx\ny" {
		t.Errorf("unexpected result %q", got)
	}

	got = stackBottom("a", "x", 3)
	if got != "a\n\nx" {
		t.Errorf("short base should be padded, got %q", got)
	}
}
