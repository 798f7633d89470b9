package hint

import (
	"log/slog"
	"strings"

	"github.com/riordanpawley/keynav/internal/domain"
	"github.com/riordanpawley/keynav/internal/types"
)

// BadgeID identifies a placed badge within a Renderer
type BadgeID int

// Renderer places and removes hint badges on screen
type Renderer interface {
	Place(code string, rect domain.Rect) BadgeID
	Hide(id BadgeID)
	Clear()
}

// Candidate is an element together with its current viewport-relative rect
type Candidate struct {
	Element *domain.Element
	Rect    domain.Rect
}

// Target is a candidate that received a code in the current session
type Target struct {
	Element *domain.Element
	Rect    domain.Rect
	Code    string

	badge  BadgeID
	hidden bool
}

// Hidden reports whether the target was filtered out by typed input
func (t Target) Hidden() bool {
	return t.hidden
}

// Outcome describes the effect of a typed character
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomePending
	OutcomeResolved
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomePending:
		return "pending"
	case OutcomeResolved:
		return "resolved"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is returned from TypeChar
type Result struct {
	Outcome Outcome
	Target  Target       // valid when Outcome is OutcomeResolved
	Action  types.Action // pending action of the session
}

// Session holds the active hint targets and the typed prefix
type Session struct {
	renderer Renderer
	logger   *slog.Logger

	targets []*Target
	typed   strings.Builder
	action  types.Action
	active  bool
}

// NewSession creates an idle session drawing badges with the given renderer
func NewSession(renderer Renderer, logger *slog.Logger) *Session {
	return &Session{
		renderer: renderer,
		logger:   logger,
	}
}

// Start assigns codes to the visible candidates in scan order and places a
// badge for each. Returns the number of targets; zero leaves the session idle.
func (s *Session) Start(candidates []Candidate, action types.Action, visible func(domain.Rect) bool) int {
	if s.active {
		s.end()
	}

	s.action = action
	s.typed.Reset()
	s.targets = s.targets[:0]

	for _, c := range candidates {
		if len(s.targets) >= MaxCodes {
			s.logger.Debug("hint targets truncated", "max", MaxCodes, "candidates", len(candidates))
			break
		}
		if visible != nil && !visible(c.Rect) {
			continue
		}
		code := CodeFor(len(s.targets))
		s.targets = append(s.targets, &Target{
			Element: c.Element,
			Rect:    c.Rect,
			Code:    code,
			badge:   s.renderer.Place(code, c.Rect),
		})
	}

	s.active = len(s.targets) > 0
	s.logger.Debug("hint session started", "action", action, "targets", len(s.targets))
	return len(s.targets)
}

// TypeChar appends c to the typed prefix and narrows the targets.
// Non-hint characters are ignored.
func (s *Session) TypeChar(c rune) Result {
	if !s.active || !IsHintChar(c) {
		return Result{Outcome: OutcomeIgnored, Action: s.action}
	}

	s.typed.WriteRune(c)
	typed := s.typed.String()

	remaining := 0
	for _, t := range s.targets {
		if t.hidden {
			continue
		}
		if t.Code == typed {
			resolved := *t
			s.logger.Debug("hint resolved", "code", typed, "element", t.Element)
			s.end()
			return Result{Outcome: OutcomeResolved, Target: resolved, Action: s.action}
		}
		if !strings.HasPrefix(t.Code, typed) {
			t.hidden = true
			s.renderer.Hide(t.badge)
			continue
		}
		remaining++
	}

	if remaining == 0 {
		s.logger.Debug("hint prefix matched nothing", "typed", typed)
		s.end()
		return Result{Outcome: OutcomeCancelled, Action: s.action}
	}

	return Result{Outcome: OutcomePending, Action: s.action}
}

// Cancel aborts the session regardless of typed input
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.logger.Debug("hint session cancelled", "typed", s.typed.String())
	s.end()
}

// Active returns true while targets are selectable
func (s *Session) Active() bool {
	return s.active
}

// Typed returns the prefix typed so far
func (s *Session) Typed() string {
	return s.typed.String()
}

// Action returns the pending action of the session
func (s *Session) Action() types.Action {
	return s.action
}

// Targets returns a snapshot of every target in the session, hidden ones included
func (s *Session) Targets() []Target {
	result := make([]Target, 0, len(s.targets))
	for _, t := range s.targets {
		result = append(result, *t)
	}
	return result
}

// ActiveCodes returns the codes still selectable
func (s *Session) ActiveCodes() []string {
	var codes []string
	for _, t := range s.targets {
		if !t.hidden {
			codes = append(codes, t.Code)
		}
	}
	return codes
}

func (s *Session) end() {
	s.renderer.Clear()
	s.targets = nil
	s.typed.Reset()
	s.active = false
}
