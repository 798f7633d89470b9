package types

// Action is the pending action performed on a resolved hint target
type Action int

const (
	ActionActivate Action = iota
	ActionActivateNew
	ActionCopyReference
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionActivate:
		return "activate"
	case ActionActivateNew:
		return "activate-new"
	case ActionCopyReference:
		return "copy-reference"
	default:
		return "unknown"
	}
}
