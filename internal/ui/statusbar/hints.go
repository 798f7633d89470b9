package statusbar

import "github.com/riordanpawley/keynav/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "f: follow  F: browser  c: copy link  j/k: scroll  yy: copy url  ?: help  q: quit"
	case types.ModeHintSelecting:
		return "Type a hint  Esc: cancel"
	default:
		return ""
	}
}

// EditingHints are shown while a form field is being edited
const EditingHints = "Enter: save  Esc: cancel"
