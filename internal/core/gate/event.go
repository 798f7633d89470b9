// Package gate arbitrates keyboard ownership between the command
// accumulator and the hint session, and tracks the focus proxy.
package gate

import "unicode/utf8"

// Phase is the key transition a KeyEvent reports
type Phase int

const (
	PhaseDown Phase = iota
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// KeyEscape is the key identifier of the escape key
const KeyEscape = "esc"

// KeyEvent is a normalized key transition.
// Key is the single character typed, or a name such as "esc" or "enter".
type KeyEvent struct {
	Key   string
	Phase Phase
	Alt   bool
	Ctrl  bool
	Meta  bool
}

// Char returns the typed character if Key is a single rune
func (e KeyEvent) Char() (rune, bool) {
	r, size := utf8.DecodeRuneInString(e.Key)
	if r == utf8.RuneError || size != len(e.Key) {
		return 0, false
	}
	return r, true
}

// IsEscape reports whether the event is the escape key
func (e KeyEvent) IsEscape() bool {
	return e.Key == KeyEscape
}

// commandModifiersOK rejects chords that belong to the host (meta, or ctrl+alt together)
func (e KeyEvent) commandModifiersOK() bool {
	return !e.Meta && !(e.Ctrl && e.Alt)
}
