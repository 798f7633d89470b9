package command

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccumulator() *Accumulator {
	return New(Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func feedAll(a *Accumulator, keys string) []Outcome {
	var outs []Outcome
	for _, r := range keys {
		outs = append(outs, a.Feed(r))
	}
	return outs
}

func TestAccumulator_Defaults(t *testing.T) {
	a := newTestAccumulator()
	assert.Equal(t, DefaultStep, a.Step())
	assert.Equal(t, "", a.Buffer())
	assert.False(t, a.Repeating())
}

func TestAccumulator_CountedScroll(t *testing.T) {
	tests := []struct {
		keys  string
		delta int
	}{
		{"3j", 180},
		{"12k", -720},
		{"1j", 60},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			a := newTestAccumulator()
			outs := feedAll(a, tt.keys)

			last := outs[len(outs)-1]
			require.Equal(t, StatusMatched, last.Status)
			assert.Equal(t, tt.delta, last.Delta(a.Step()))
			assert.Equal(t, "", a.Buffer(), "buffer cleared after match")
			assert.False(t, a.Repeating(), "repeat flag cleared after scroll")
		})
	}
}

func TestAccumulator_DigitsSetRepeatWithoutTimer(t *testing.T) {
	a := newTestAccumulator()

	outs := feedAll(a, "12")

	for _, out := range outs {
		assert.True(t, out.Accepted)
		assert.Equal(t, StatusPartial, out.Status)
		assert.False(t, out.ArmTimer, "digit runs never arm the idle timer")
	}
	assert.True(t, a.Repeating())
	assert.Equal(t, "12", a.Buffer())

	_, ok := a.ShortcutDelta('j')
	assert.False(t, ok, "shortcut suppressed while counting")
}

func TestAccumulator_SinglePrefixArmsTimer(t *testing.T) {
	a := newTestAccumulator()

	out := a.Feed('g')

	assert.True(t, out.ArmTimer)
	assert.Equal(t, a.Generation(), out.Generation)
	assert.Equal(t, "g", a.Buffer())

	// Timer fires with nothing typed since: buffer cleared
	assert.True(t, a.Expire(out.Generation))
	assert.Equal(t, "", a.Buffer())

	// A following g starts a fresh command instead of completing gg
	out = a.Feed('g')
	assert.Equal(t, StatusPartial, out.Status)
	assert.Equal(t, "g", a.Buffer())
}

func TestAccumulator_StaleTimerIsNoop(t *testing.T) {
	a := newTestAccumulator()

	first := a.Feed('g')
	second := a.Feed('g')
	require.Equal(t, StatusMatched, second.Status)

	assert.False(t, a.Expire(first.Generation), "buffer already cleared by match")

	third := a.Feed('y')
	assert.False(t, a.Expire(first.Generation), "older generation is stale")
	assert.Equal(t, "y", a.Buffer())
	assert.True(t, a.Expire(third.Generation))
}

func TestAccumulator_DeadSequenceClears(t *testing.T) {
	a := newTestAccumulator()

	outs := feedAll(a, "gy")

	assert.Equal(t, StatusDead, outs[1].Status)
	assert.Equal(t, "", a.Buffer())
	assert.False(t, a.Repeating())
}

func TestAccumulator_CountKeepsAccumulating(t *testing.T) {
	a := newTestAccumulator()

	outs := feedAll(a, "3g")

	assert.Equal(t, StatusPartial, outs[1].Status)
	assert.False(t, outs[1].ArmTimer, "no idle reset while counting")
	assert.Equal(t, "3g", a.Buffer())
	assert.True(t, a.Repeating())
	_, ok := a.ShortcutDelta('j')
	assert.False(t, ok, "shortcut stays suppressed")

	out := a.Feed('j')
	require.Equal(t, StatusMatched, out.Status)
	assert.Equal(t, 180, out.Delta(a.Step()))
	assert.Equal(t, "", a.Buffer())
	assert.False(t, a.Repeating())
}

func TestAccumulator_ResetAbandonsCount(t *testing.T) {
	a := newTestAccumulator()
	feedAll(a, "42f")
	require.True(t, a.Repeating())

	a.Reset()

	assert.Equal(t, "", a.Buffer())
	assert.False(t, a.Repeating())
	delta, ok := a.ShortcutDelta('k')
	assert.True(t, ok)
	assert.Equal(t, -60, delta)
}

func TestAccumulator_IgnoresOtherKeys(t *testing.T) {
	a := newTestAccumulator()
	gen := a.Generation()

	out := a.Feed('x')

	assert.False(t, out.Accepted)
	assert.Equal(t, gen, a.Generation())
	assert.Equal(t, "", a.Buffer())
}

func TestAccumulator_Commands(t *testing.T) {
	tests := []struct {
		keys string
		kind Kind
	}{
		{"yy", KindCopyLocation},
		{"gg", KindScrollTop},
		{"G", KindScrollBottom},
		{"f", KindHint},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			a := newTestAccumulator()
			outs := feedAll(a, tt.keys)
			last := outs[len(outs)-1]
			assert.Equal(t, StatusMatched, last.Status)
			assert.Equal(t, tt.kind, last.Command.Kind)
			assert.Equal(t, 0, last.Delta(a.Step()))
		})
	}
}

func TestAccumulator_ShortcutDelta(t *testing.T) {
	a := New(Options{Step: 40}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	d, ok := a.ShortcutDelta('j')
	assert.True(t, ok)
	assert.Equal(t, 40, d)

	d, ok = a.ShortcutDelta('k')
	assert.True(t, ok)
	assert.Equal(t, -40, d)

	_, ok = a.ShortcutDelta('g')
	assert.False(t, ok)
}

func TestAccumulator_Reset(t *testing.T) {
	a := newTestAccumulator()
	feedAll(a, "42")
	gen := a.Generation()

	a.Reset()

	assert.Equal(t, "", a.Buffer())
	assert.False(t, a.Repeating())
	assert.Greater(t, a.Generation(), gen)
}
