// Package command accumulates keystrokes typed outside hint mode into
// multi-key commands matched against a fixed rule table.
package command

import (
	"strconv"
	"strings"

	"github.com/riordanpawley/keynav/internal/types"
)

// Kind identifies the effect of a matched command
type Kind int

const (
	KindNone Kind = iota
	KindHint
	KindScroll
	KindCopyLocation
	KindScrollTop
	KindScrollBottom
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindHint:
		return "hint"
	case KindScroll:
		return "scroll"
	case KindCopyLocation:
		return "copy-location"
	case KindScrollTop:
		return "scroll-top"
	case KindScrollBottom:
		return "scroll-bottom"
	default:
		return "unknown"
	}
}

// Command is a matched rule with its arguments resolved
type Command struct {
	Kind   Kind
	Name   string
	Action types.Action // KindHint
	Count  int          // KindScroll: parsed digit run
	Sign   int          // KindScroll: +1 down, -1 up
}

// Status is the result of matching a buffer against the grammar
type Status int

const (
	// StatusDead means no rule can match, however the buffer grows
	StatusDead Status = iota
	// StatusPartial means the buffer is a proper prefix of at least one rule
	StatusPartial
	// StatusMatched means a rule matched the whole buffer
	StatusMatched
)

func (s Status) String() string {
	switch s {
	case StatusDead:
		return "dead"
	case StatusPartial:
		return "partial"
	case StatusMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// rule is one grammar entry: literal keys, optionally completing a digit run
type rule struct {
	name   string
	digits bool
	keys   string
	build  func(count int) Command
}

// rules in priority order
var rules = []rule{
	{name: "f", keys: "f", build: hintRule("f", types.ActionActivate)},
	{name: "F", keys: "F", build: hintRule("F", types.ActionActivateNew)},
	{name: "c", keys: "c", build: hintRule("c", types.ActionCopyReference)},
	{name: "<n>j", digits: true, keys: "j", build: scrollRule("<n>j", 1)},
	{name: "<n>k", digits: true, keys: "k", build: scrollRule("<n>k", -1)},
	{name: "yy", keys: "yy", build: simpleRule("yy", KindCopyLocation)},
	{name: "gg", keys: "gg", build: simpleRule("gg", KindScrollTop)},
	{name: "G", keys: "G", build: simpleRule("G", KindScrollBottom)},
}

func hintRule(name string, action types.Action) func(int) Command {
	return func(int) Command {
		return Command{Kind: KindHint, Name: name, Action: action}
	}
}

func scrollRule(name string, sign int) func(int) Command {
	return func(count int) Command {
		return Command{Kind: KindScroll, Name: name, Count: count, Sign: sign}
	}
}

func simpleRule(name string, kind Kind) func(int) Command {
	return func(int) Command {
		return Command{Kind: kind, Name: name}
	}
}

// commandKeys are the non-digit characters that take part in the grammar
const commandKeys = "fFjkygGc"

// IsCommandKey reports whether r is accumulated into the buffer
func IsCommandKey(r rune) bool {
	return IsDigit(r) || strings.ContainsRune(commandKeys, r)
}

// IsDigit reports whether r is an ASCII digit
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// firstDigitRun returns the first run of digits in buf and the keys outside it
func firstDigitRun(buf string) (digits, rest string) {
	start := strings.IndexFunc(buf, IsDigit)
	if start < 0 {
		return "", buf
	}
	end := start
	for end < len(buf) && IsDigit(rune(buf[end])) {
		end++
	}
	return buf[start:end], buf[:start] + buf[end:]
}

// Match tests the whole buffer against the rule table in priority order.
// maxCount clamps the parsed digit run; zero or negative means unlimited.
//
// Once the buffer holds a digit run only the counted rules can complete it:
// the first run is the count and the final key picks the rule. Keys typed
// in between stay in the buffer but take no part, so a counted buffer is
// never dead.
func Match(buf string, maxCount int) (Command, Status) {
	if buf == "" {
		return Command{}, StatusPartial
	}

	digits, rest := firstDigitRun(buf)
	if digits != "" {
		for _, r := range rules {
			if r.digits && rest != "" && strings.HasSuffix(buf, r.keys) {
				return r.build(parseCount(digits, maxCount)), StatusMatched
			}
		}
		return Command{}, StatusPartial
	}

	partial := false
	for _, r := range rules {
		if r.digits {
			continue
		}
		if rest == r.keys {
			return r.build(0), StatusMatched
		}
		if len(rest) < len(r.keys) && strings.HasPrefix(r.keys, rest) {
			partial = true
		}
	}

	if partial {
		return Command{}, StatusPartial
	}
	return Command{}, StatusDead
}

func parseCount(digits string, maxCount int) int {
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil || (maxCount > 0 && n > maxCount) {
		// Overflowing runs clamp like oversized ones
		if maxCount > 0 {
			return maxCount
		}
		return int(^uint(0) >> 1)
	}
	return n
}
