package gate

import (
	"github.com/riordanpawley/keynav/internal/domain"
	"github.com/riordanpawley/keynav/internal/types"
)

// Effect is a side effect requested by the gate. The host performs effects
// in order.
type Effect interface {
	effect()
}

// Edge is an absolute scroll destination
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// ScrollBy scrolls by Delta units; positive is down
type ScrollBy struct{ Delta int }

// ScrollTo scrolls to the top or bottom of the document
type ScrollTo struct{ Edge Edge }

// CopyLocation copies the current document reference to the clipboard
type CopyLocation struct{}

// StartTimer arms (or replaces) the idle timer for a buffer generation
type StartTimer struct{ Generation uint64 }

// FocusProxy forces focus onto the proxy so keystrokes reach nothing else
type FocusProxy struct{}

// ReleaseProxy releases the proxy focus
type ReleaseProxy struct{}

// BlurElement blurs the focused input-like element
type BlurElement struct{}

// Execute performs Action on a resolved hint target
type Execute struct {
	Action  types.Action
	Element *domain.Element
}

// HintsShown reports a started hint session
type HintsShown struct {
	Count  int
	Action types.Action
}

// HintsCancelled reports a session that ended without a target
type HintsCancelled struct{}

// NoHints reports a hint command with nothing visible to label
type NoHints struct{ Action types.Action }

func (ScrollBy) effect()       {}
func (ScrollTo) effect()       {}
func (CopyLocation) effect()   {}
func (StartTimer) effect()     {}
func (FocusProxy) effect()     {}
func (ReleaseProxy) effect()   {}
func (BlurElement) effect()    {}
func (Execute) effect()        {}
func (HintsShown) effect()     {}
func (HintsCancelled) effect() {}
func (NoHints) effect()        {}

// Result is the outcome of routing one event
type Result struct {
	// Handled means the event must not reach the page's own key handling
	Handled bool
	Effects []Effect
}

func (r *Result) add(effects ...Effect) {
	r.Effects = append(r.Effects, effects...)
}
