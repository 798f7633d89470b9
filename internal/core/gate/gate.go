package gate

import (
	"log/slog"

	"github.com/riordanpawley/keynav/internal/core/command"
	"github.com/riordanpawley/keynav/internal/core/hint"
	"github.com/riordanpawley/keynav/internal/domain"
	"github.com/riordanpawley/keynav/internal/types"
)

// Page is the element enumerator and visibility test of the current document
type Page interface {
	Candidates() []hint.Candidate
	Visible(rect domain.Rect) bool
}

// Focus is what currently holds keyboard focus
type Focus int

const (
	FocusNone    Focus = iota
	FocusOnProxy // the hidden proxy; keys reach no page binding
	FocusInput   // an input-like element; keys pass through to it
	FocusElement // a focused element that does not capture typing
)

func (f Focus) String() string {
	switch f {
	case FocusNone:
		return "none"
	case FocusOnProxy:
		return "proxy"
	case FocusInput:
		return "input"
	case FocusElement:
		return "element"
	default:
		return "unknown"
	}
}

// Gate owns the input mode and routes key events.
// The zero mode is Normal; only the gate's own transitions change it.
type Gate struct {
	mode    types.Mode
	focus   Focus
	acc     *command.Accumulator
	session *hint.Session
	page    Page
	logger  *slog.Logger

	// holdProxy keeps the proxy focused after a hint opened a new browsing
	// context, until this context becomes visible again
	holdProxy bool
}

// New creates a gate in Normal mode
func New(acc *command.Accumulator, session *hint.Session, page Page, logger *slog.Logger) *Gate {
	return &Gate{
		mode:    types.ModeNormal,
		acc:     acc,
		session: session,
		page:    page,
		logger:  logger,
	}
}

// Mode returns the current mode
func (g *Gate) Mode() types.Mode {
	return g.mode
}

// IsHintSelecting returns true while the hint session owns the keyboard
func (g *Gate) IsHintSelecting() bool {
	return g.mode == types.ModeHintSelecting
}

// Focus returns what currently holds focus
func (g *Gate) Focus() Focus {
	return g.focus
}

// HoldingProxy returns true while the proxy outlives a resolved session
func (g *Gate) HoldingProxy() bool {
	return g.holdProxy && g.focus == FocusOnProxy
}

// Buffer returns the pending command keys
func (g *Gate) Buffer() string {
	return g.acc.Buffer()
}

// Typed returns the hint prefix typed so far
func (g *Gate) Typed() string {
	return g.session.Typed()
}

// Session returns the hint session
func (g *Gate) Session() *hint.Session {
	return g.session
}

// Dispatch routes one key event and returns the effects to perform
func (g *Gate) Dispatch(ev KeyEvent) Result {
	switch {
	case g.mode == types.ModeHintSelecting:
		return g.dispatchHint(ev)
	case g.focus == FocusOnProxy, g.focus == FocusInput:
		return g.dispatchCaptured(ev)
	default:
		return g.dispatchNormal(ev)
	}
}

// dispatchHint consumes every key while selecting
func (g *Gate) dispatchHint(ev KeyEvent) Result {
	res := Result{Handled: true}
	if ev.Phase != PhaseUp {
		return res
	}

	if ev.IsEscape() {
		g.session.Cancel()
		g.enterNormal()
		g.releaseProxy(&res)
		res.add(HintsCancelled{})
		return res
	}

	c, ok := ev.Char()
	if !ok {
		return res
	}

	out := g.session.TypeChar(c)
	switch out.Outcome {
	case hint.OutcomeResolved:
		g.enterNormal()
		el := out.Target.Element
		if out.Action == types.ActionActivateNew && el.Kind == domain.KindLink {
			// The new context takes visibility; the proxy stays until we are back
			g.holdProxy = true
			g.logger.Debug("holding proxy focus across new context")
		} else {
			g.releaseProxy(&res)
		}
		res.add(Execute{Action: out.Action, Element: el})
	case hint.OutcomeCancelled:
		g.enterNormal()
		g.releaseProxy(&res)
		res.add(HintsCancelled{})
	}
	return res
}

// dispatchCaptured handles keys while the proxy or an input-like element has focus
func (g *Gate) dispatchCaptured(ev KeyEvent) Result {
	if ev.Phase == PhaseUp && ev.IsEscape() {
		res := Result{Handled: true}
		if g.focus == FocusOnProxy {
			g.releaseProxy(&res)
		} else {
			g.focus = FocusNone
			res.add(BlurElement{})
		}
		return res
	}

	// The proxy swallows keys; inputs receive them untouched
	return Result{Handled: g.focus == FocusOnProxy}
}

func (g *Gate) dispatchNormal(ev KeyEvent) Result {
	if ev.IsEscape() {
		// Escape abandons a pending command, including an unfinished count
		if ev.Phase == PhaseUp && (g.acc.Buffer() != "" || g.acc.Repeating()) {
			g.logger.Debug("command abandoned", "buffer", g.acc.Buffer())
			g.acc.Reset()
			return Result{Handled: true}
		}
		return Result{}
	}

	c, ok := ev.Char()
	if !ok {
		return Result{}
	}

	if ev.Phase == PhaseDown {
		if ev.Alt {
			return Result{}
		}
		if delta, ok := g.acc.ShortcutDelta(c); ok {
			return Result{Handled: true, Effects: []Effect{ScrollBy{Delta: delta}}}
		}
		return Result{}
	}

	if !command.IsCommandKey(c) || !ev.commandModifiersOK() {
		return Result{}
	}

	res := Result{Handled: true}
	out := g.acc.Feed(c)

	switch out.Status {
	case command.StatusMatched:
		g.run(out, &res)
	case command.StatusPartial:
		if out.ArmTimer {
			res.add(StartTimer{Generation: out.Generation})
		}
	}
	return res
}

func (g *Gate) run(out command.Outcome, res *Result) {
	cmd := out.Command
	switch cmd.Kind {
	case command.KindHint:
		g.startHints(cmd.Action, res)
	case command.KindScroll:
		res.add(ScrollBy{Delta: out.Delta(g.acc.Step())})
	case command.KindCopyLocation:
		res.add(CopyLocation{})
	case command.KindScrollTop:
		res.add(ScrollTo{Edge: EdgeTop})
	case command.KindScrollBottom:
		res.add(ScrollTo{Edge: EdgeBottom})
	}
}

func (g *Gate) startHints(action types.Action, res *Result) {
	n := g.session.Start(g.page.Candidates(), action, g.page.Visible)
	if n == 0 {
		res.add(NoHints{Action: action})
		return
	}

	g.mode = types.ModeHintSelecting
	g.focus = FocusOnProxy
	g.holdProxy = false
	g.logger.Debug("mode changed", "mode", g.mode, "targets", n)
	res.add(FocusProxy{}, HintsShown{Count: n, Action: action})
}

// Timeout handles a fired idle timer for the given buffer generation.
// Late timers for an older generation are no-ops.
func (g *Gate) Timeout(generation uint64) bool {
	return g.acc.Expire(generation)
}

// Click handles a pointer click anywhere in the view
func (g *Gate) Click() Result {
	if g.mode != types.ModeHintSelecting {
		return Result{}
	}
	g.focus = FocusOnProxy
	return Result{Handled: true, Effects: []Effect{FocusProxy{}}}
}

// VisibilityChanged handles the view gaining or losing visibility
func (g *Gate) VisibilityChanged(visible bool) Result {
	var res Result
	if !visible {
		return res
	}

	switch {
	case g.mode == types.ModeHintSelecting:
		g.focus = FocusOnProxy
		res.add(FocusProxy{})
	case g.focus == FocusOnProxy:
		g.releaseProxy(&res)
	}
	return res
}

// FocusElement records that the host focused an element
func (g *Gate) FocusElement(inputLike bool) {
	if g.mode == types.ModeHintSelecting {
		return
	}
	g.holdProxy = false
	if inputLike {
		g.focus = FocusInput
	} else {
		g.focus = FocusElement
	}
}

// Blur records that the host removed element focus
func (g *Gate) Blur() {
	if g.focus == FocusInput || g.focus == FocusElement {
		g.focus = FocusNone
	}
}

// Reset cancels any session and pending command, for example on page load
func (g *Gate) Reset() Result {
	var res Result
	if g.mode == types.ModeHintSelecting {
		g.session.Cancel()
		g.enterNormal()
		res.add(HintsCancelled{})
	}
	if g.focus == FocusOnProxy {
		g.releaseProxy(&res)
	}
	g.focus = FocusNone
	g.acc.Reset()
	return res
}

func (g *Gate) enterNormal() {
	g.mode = types.ModeNormal
	g.logger.Debug("mode changed", "mode", g.mode)
}

func (g *Gate) releaseProxy(res *Result) {
	g.focus = FocusNone
	g.holdProxy = false
	res.add(ReleaseProxy{})
}
