package command

import (
	"testing"

	"github.com/riordanpawley/keynav/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		buf    string
		status Status
		kind   Kind
		count  int
		sign   int
	}{
		{"f", StatusMatched, KindHint, 0, 0},
		{"F", StatusMatched, KindHint, 0, 0},
		{"c", StatusMatched, KindHint, 0, 0},
		{"3j", StatusMatched, KindScroll, 3, 1},
		{"12k", StatusMatched, KindScroll, 12, -1},
		{"007j", StatusMatched, KindScroll, 7, 1},
		{"yy", StatusMatched, KindCopyLocation, 0, 0},
		{"gg", StatusMatched, KindScrollTop, 0, 0},
		{"G", StatusMatched, KindScrollBottom, 0, 0},
		{"g", StatusPartial, KindNone, 0, 0},
		{"y", StatusPartial, KindNone, 0, 0},
		{"4", StatusPartial, KindNone, 0, 0},
		{"42", StatusPartial, KindNone, 0, 0},
		{"", StatusPartial, KindNone, 0, 0},
		{"j", StatusDead, KindNone, 0, 0},
		{"k", StatusDead, KindNone, 0, 0},
		{"gy", StatusDead, KindNone, 0, 0},
		{"3f", StatusPartial, KindNone, 0, 0},
		{"3gg", StatusPartial, KindNone, 0, 0},
		{"3gj", StatusMatched, KindScroll, 3, 1},
		{"g3k", StatusMatched, KindScroll, 3, -1},
		{"3g5j", StatusMatched, KindScroll, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.buf, func(t *testing.T) {
			cmd, status := Match(tt.buf, DefaultMaxCount)
			assert.Equal(t, tt.status, status, "status")
			assert.Equal(t, tt.kind, cmd.Kind, "kind")
			if tt.kind == KindScroll {
				assert.Equal(t, tt.count, cmd.Count, "count")
				assert.Equal(t, tt.sign, cmd.Sign, "sign")
			}
		})
	}
}

func TestMatch_HintActions(t *testing.T) {
	tests := []struct {
		buf    string
		action types.Action
	}{
		{"f", types.ActionActivate},
		{"F", types.ActionActivateNew},
		{"c", types.ActionCopyReference},
	}

	for _, tt := range tests {
		t.Run(tt.buf, func(t *testing.T) {
			cmd, _ := Match(tt.buf, 0)
			assert.Equal(t, tt.action, cmd.Action)
			assert.Equal(t, tt.buf, cmd.Name)
		})
	}
}

func TestMatch_ClampsCount(t *testing.T) {
	cmd, status := Match("123456j", 100)
	assert.Equal(t, StatusMatched, status)
	assert.Equal(t, 100, cmd.Count)

	// Overflowing digit runs clamp too
	cmd, _ = Match("99999999999999999999999j", 50)
	assert.Equal(t, 50, cmd.Count)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "scroll", KindScroll.String())
	assert.Equal(t, "scroll-bottom", KindScrollBottom.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.Equal(t, "partial", StatusPartial.String())
	assert.Equal(t, "unknown", Status(-1).String())
}

func TestIsCommandKey(t *testing.T) {
	for _, r := range "fFjkygGc0123456789" {
		assert.True(t, IsCommandKey(r), "%q should be a command key", r)
	}
	for _, r := range "aqxJK ;/" {
		assert.False(t, IsCommandKey(r), "%q should not be a command key", r)
	}
}
