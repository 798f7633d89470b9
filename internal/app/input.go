package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/keynav/internal/core/gate"
)

// splitRunes breaks a multi-rune key message into one message per rune so
// every character is routed on its own
func splitRunes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || len(msg.Runes) <= 1 || msg.Paste {
		return []tea.KeyMsg{msg}
	}
	out := make([]tea.KeyMsg, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
	}
	return out
}

// keyEvents converts a key message into a down/up transition pair.
// Terminals only report presses, so the release is synthesized.
// Pasted text produces no events.
func keyEvents(msg tea.KeyMsg) []gate.KeyEvent {
	if msg.Paste {
		return nil
	}

	ev := gate.KeyEvent{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return nil
		}
		ev.Key = string(msg.Runes[0])
	case tea.KeySpace:
		ev.Key = " "
	case tea.KeyEsc:
		ev.Key = gate.KeyEscape
	default:
		name := strings.TrimPrefix(msg.String(), "alt+")
		if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
			ev.Ctrl = true
			name = rest
		}
		ev.Key = name
	}

	down := ev
	down.Phase = gate.PhaseDown
	up := ev
	up.Phase = gate.PhaseUp
	return []gate.KeyEvent{down, up}
}
