package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Resolve(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		href string
		want string
	}{
		{"absolute url", "docs/index.html", "https://example.com/a", "https://example.com/a"},
		{"relative to url", "https://example.com/docs/index.html", "guide.html", "https://example.com/docs/guide.html"},
		{"root relative to url", "https://example.com/docs/index.html", "/about", "https://example.com/about"},
		{"relative to file", filepath.Join("docs", "index.html"), "guide.html", filepath.Join("docs", "guide.html")},
		{"file with fragment", filepath.Join("docs", "index.html"), "guide.html#intro", filepath.Join("docs", "guide.html")},
		{"fragment only", "docs/index.html", "#top", "docs/index.html"},
		{"empty", "docs/index.html", "  ", "docs/index.html"},
		{"absolute path", "docs/index.html", "/tmp/x.md", "/tmp/x.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{Ref: tt.ref}
			assert.Equal(t, tt.want, doc.Resolve(tt.href))
		})
	}
}

func TestDocument_ElementsOnLine(t *testing.T) {
	a := &Element{ID: 0, Line: 2}
	b := &Element{ID: 1, Line: 4}
	c := &Element{ID: 2, Line: 2}
	doc := &Document{Lines: make([]string, 5), Elements: []*Element{a, b, c}}

	assert.Equal(t, []*Element{a, c}, doc.ElementsOnLine(2))
	assert.Empty(t, doc.ElementsOnLine(0))
	assert.Equal(t, 5, doc.LineCount())
}

func TestElement_Display(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want string
	}{
		{"link", Element{Kind: KindLink, Label: "Home"}, "Home"},
		{"button", Element{Kind: KindButton, Label: "Go"}, "[ Go ]"},
		{"checkbox on", Element{Kind: KindInput, Type: "checkbox", Checked: true}, "[x]"},
		{"checkbox upper type", Element{Kind: KindInput, Type: "CheckBox"}, "[ ]"},
		{"radio", Element{Kind: KindInput, Type: "radio", Checked: true}, "(*)"},
		{"submit", Element{Kind: KindInput, Type: "submit", Label: "Send"}, "[ Send ]"},
		{"select", Element{Kind: KindSelect, Options: []string{"one", "two"}, Selected: 1}, "<two v>"},
		{"select out of range", Element{Kind: KindSelect, Selected: 3}, "< v>"},
		{"padded to width", Element{Kind: KindLink, Label: "ab", Width: 4}, "ab  "},
		{"truncated to width", Element{Kind: KindLink, Label: "abcdef", Width: 3}, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.el.Display())
		})
	}
}

func TestElement_TextField(t *testing.T) {
	el := Element{Kind: KindInput, Value: "hi"}
	display := el.Display()

	assert.Equal(t, FieldWidth+2, len(display))
	assert.Equal(t, "[hi", display[:3])

	el.Type = "password"
	assert.Equal(t, "[**", el.Display()[:3])
}

func TestElement_Classification(t *testing.T) {
	tests := []struct {
		name      string
		el        Element
		inputLike bool
		toggle    bool
		push      bool
	}{
		{"text input", Element{Kind: KindInput, Type: "text"}, true, false, false},
		{"missing type", Element{Kind: KindInput}, true, false, false},
		{"unknown type", Element{Kind: KindInput, Type: "wat"}, true, false, false},
		{"checkbox", Element{Kind: KindInput, Type: "checkbox"}, true, true, false},
		{"submit", Element{Kind: KindInput, Type: " Submit "}, false, false, true},
		{"textarea", Element{Kind: KindTextArea}, true, false, false},
		{"editable", Element{Kind: KindEditable}, true, false, false},
		{"button", Element{Kind: KindButton}, false, false, true},
		{"select", Element{Kind: KindSelect}, false, false, false},
		{"link", Element{Kind: KindLink}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inputLike, tt.el.InputLike(), "InputLike")
			assert.Equal(t, tt.toggle, tt.el.IsToggle(), "IsToggle")
			assert.Equal(t, tt.push, tt.el.IsPushButton(), "IsPushButton")
		})
	}
}

func TestDocument_Redraw(t *testing.T) {
	el := &Element{Kind: KindInput, Type: "checkbox", Line: 0, Col: 4, Width: 3}
	doc := &Document{Lines: []string{"opt [ ] here"}, Elements: []*Element{el}}

	el.Checked = true
	doc.Redraw(el)
	assert.Equal(t, "opt [x] here", doc.Lines[0])

	el.Checked = false
	doc.Redraw(el)
	assert.Equal(t, "opt [ ] here", doc.Lines[0])
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		s           string
		col         int
		left, right string
	}{
		{"abc", 0, "", "abc"},
		{"abc", 1, "a", "bc"},
		{"abc", 5, "abc", ""},
		{"日本", 1, "", "日本"},
		{"日本", 2, "日", "本"},
	}

	for _, tt := range tests {
		left, right := SplitCells(tt.s, tt.col)
		assert.Equal(t, tt.left, left, "%q at %d", tt.s, tt.col)
		assert.Equal(t, tt.right, right, "%q at %d", tt.s, tt.col)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range AllKinds() {
		got, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}

	got, ok := ParseKind(" Link ")
	assert.True(t, ok)
	assert.Equal(t, KindLink, got)

	_, ok = ParseKind("image")
	assert.False(t, ok)
	assert.Len(t, AllKinds(), 6)
}
