// Package types contains shared types used across the application.
package types

// Mode represents which component owns keyboard input.
// Exactly one mode is active at a time.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHintSelecting
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeHintSelecting:
		return "HINT"
	default:
		return "UNKNOWN"
	}
}
