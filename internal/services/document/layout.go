package document

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/riordanpawley/keynav/internal/domain"
)

// DefaultWidth is the wrap width used when none is configured
const DefaultWidth = 80

// builder lays out inline text and atomic element tokens into wrapped lines
type builder struct {
	width    int
	lines    []string
	cur      strings.Builder
	curWidth int
	indent   string
	space    bool // a collapsed space is pending before the next token
	elements []*domain.Element
}

func newBuilder(width int) *builder {
	if width <= 0 {
		width = DefaultWidth
	}
	return &builder{width: width}
}

// text adds inline text, collapsing whitespace and wrapping at word boundaries
func (b *builder) text(s string) {
	if s == "" {
		return
	}
	if startsWithSpace(s) {
		b.space = true
	}
	words := strings.Fields(s)
	for i, w := range words {
		if i > 0 {
			b.space = true
		}
		b.word(w)
	}
	if len(words) > 0 && endsWithSpace(s) {
		b.space = true
	}
}

// word places one unbreakable run of text, splitting it only if it cannot
// fit on an empty line
func (b *builder) word(w string) {
	b.fit(runewidth.StringWidth(w))
	for b.curWidth+runewidth.StringWidth(w) > b.width {
		head, tail := domain.SplitCells(w, b.width-b.curWidth)
		if head == "" {
			break
		}
		b.write(head)
		b.newline()
		b.startLine()
		w = tail
	}
	b.write(w)
}

// atom places an element token that is never split across lines
func (b *builder) atom(el *domain.Element) {
	display := el.Display()
	w := runewidth.StringWidth(display)
	if room := b.width - runewidth.StringWidth(b.indent); w > room && room > 0 {
		display = runewidth.Truncate(display, room, "")
		w = runewidth.StringWidth(display)
	}
	b.fit(w)

	el.ID = len(b.elements)
	el.Line = len(b.lines)
	el.Col = b.curWidth
	el.Width = w
	b.elements = append(b.elements, el)
	b.write(display)
}

// pre adds preformatted text verbatim, one output line per source line
func (b *builder) pre(s string) {
	s = expandTabs(s)
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		if i > 0 {
			b.newline()
		}
		if p != "" {
			b.startLine()
			b.cur.WriteString(p)
			b.curWidth += runewidth.StringWidth(p)
		}
	}
}

// fit wraps before a token of width w when it would overflow
func (b *builder) fit(w int) {
	sep := 0
	if b.space && b.curWidth > runewidth.StringWidth(b.indent) {
		sep = 1
	}
	if b.curWidth > runewidth.StringWidth(b.indent) && b.curWidth+sep+w > b.width {
		b.newline()
		b.startLine()
		return
	}
	if sep == 1 {
		b.cur.WriteByte(' ')
		b.curWidth++
	}
	b.space = false
	b.startLine()
}

func (b *builder) write(s string) {
	b.startLine()
	b.cur.WriteString(s)
	b.curWidth += runewidth.StringWidth(s)
	b.space = false
}

func (b *builder) startLine() {
	if b.cur.Len() == 0 && b.indent != "" {
		b.cur.WriteString(b.indent)
		b.curWidth = runewidth.StringWidth(b.indent)
	}
}

// newline ends the current line even if it is empty
func (b *builder) newline() {
	b.lines = append(b.lines, strings.TrimRightFunc(b.cur.String(), unicode.IsSpace))
	b.cur.Reset()
	b.curWidth = 0
	b.space = false
}

// block ends the current line if anything was written to it
func (b *builder) block() {
	if b.cur.Len() > 0 {
		b.newline()
	}
	b.space = false
}

// gap separates paragraphs with a single blank line
func (b *builder) gap() {
	b.block()
	if n := len(b.lines); n > 0 && b.lines[n-1] != "" {
		b.lines = append(b.lines, "")
	}
}

// prefix writes a marker such as a list bullet at the start of a fresh line
func (b *builder) prefix(s string) {
	b.block()
	b.startLine()
	b.cur.WriteString(s)
	b.curWidth += runewidth.StringWidth(s)
	b.space = false
}

func (b *builder) finish() ([]string, []*domain.Element) {
	b.block()
	for len(b.lines) > 0 && b.lines[len(b.lines)-1] == "" {
		b.lines = b.lines[:len(b.lines)-1]
	}
	return b.lines, b.elements
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}

func endsWithSpace(s string) bool {
	return s != "" && unicode.IsSpace(rune(s[len(s)-1]))
}

// expandTabs replaces tabs with spaces up to the next multiple of four cells
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := 4 - col%4
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return sb.String()
}
