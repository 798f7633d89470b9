package command

import (
	"log/slog"
	"strings"
)

// Defaults for the accumulator
const (
	DefaultStep     = 60
	DefaultMaxCount = 9999
)

// Options configures an Accumulator
type Options struct {
	Step     int // Scroll units per step
	MaxCount int // Largest accepted repeat count
}

// Outcome describes what a keystroke did to the buffer
type Outcome struct {
	Accepted   bool    // The key took part in the grammar
	Status     Status  // Grammar status after the key
	Command    Command // Valid when Status is StatusMatched
	ArmTimer   bool    // Start (or replace) the idle timer for Generation
	Generation uint64  // Buffer generation after the key
}

// Delta returns the signed scroll distance of a matched scroll command
func (o Outcome) Delta(step int) int {
	if o.Command.Kind != KindScroll {
		return 0
	}
	return o.Command.Sign * o.Command.Count * step
}

// Accumulator buffers command keystrokes.
// Every mutation of the buffer bumps the generation, so an idle timer armed
// for an older generation is stale when it fires.
type Accumulator struct {
	buf        strings.Builder
	repeat     bool
	generation uint64
	opts       Options
	logger     *slog.Logger
}

// New creates an Accumulator, filling zero options with defaults
func New(opts Options, logger *slog.Logger) *Accumulator {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.MaxCount <= 0 {
		opts.MaxCount = DefaultMaxCount
	}
	return &Accumulator{
		opts:   opts,
		logger: logger,
	}
}

// Step returns the configured scroll step
func (a *Accumulator) Step() int {
	return a.opts.Step
}

// Feed appends r to the buffer and matches the grammar
func (a *Accumulator) Feed(r rune) Outcome {
	if !IsCommandKey(r) {
		return Outcome{Generation: a.generation}
	}

	if IsDigit(r) {
		a.repeat = true
	}
	a.buf.WriteRune(r)
	a.generation++

	buf := a.buf.String()
	cmd, status := Match(buf, a.opts.MaxCount)
	out := Outcome{Accepted: true, Status: status, Command: cmd}

	switch status {
	case StatusMatched:
		if cmd.Kind == KindScroll {
			a.repeat = false
		}
		a.logger.Debug("command matched", "buffer", buf, "command", cmd.Name)
		a.clear()
	case StatusPartial:
		// Digit runs wait without a deadline
		if len([]rune(buf)) == 1 && !IsDigit(r) {
			out.ArmTimer = true
		}
	case StatusDead:
		a.logger.Debug("command discarded", "buffer", buf)
		a.repeat = false
		a.clear()
	}

	out.Generation = a.generation
	return out
}

// Expire clears the buffer if no keystroke arrived since generation.
// Returns true if the buffer was cleared.
func (a *Accumulator) Expire(generation uint64) bool {
	if generation != a.generation || a.buf.Len() == 0 {
		return false
	}
	a.logger.Debug("command timed out", "buffer", a.buf.String())
	a.clear()
	return true
}

// ShortcutDelta returns the immediate scroll for a j/k key-down.
// No shortcut applies while a repeat count is being typed.
func (a *Accumulator) ShortcutDelta(r rune) (int, bool) {
	if a.repeat {
		return 0, false
	}
	switch r {
	case 'j':
		return a.opts.Step, true
	case 'k':
		return -a.opts.Step, true
	}
	return 0, false
}

// Reset discards the buffer and the repeat flag
func (a *Accumulator) Reset() {
	a.repeat = false
	if a.buf.Len() > 0 {
		a.clear()
	}
}

// Buffer returns the keys typed since the last reset
func (a *Accumulator) Buffer() string {
	return a.buf.String()
}

// Repeating returns true while a numeric prefix is being accumulated
func (a *Accumulator) Repeating() bool {
	return a.repeat
}

// Generation returns the current buffer generation
func (a *Accumulator) Generation() uint64 {
	return a.generation
}

func (a *Accumulator) clear() {
	a.buf.Reset()
	a.generation++
}
