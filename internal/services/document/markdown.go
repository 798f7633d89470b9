package document

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/riordanpawley/keynav/internal/domain"
)

// parseMarkdown keeps the source lines as the display and turns links and
// autolinks into elements positioned at their label.
func parseMarkdown(data []byte, md goldmark.Markdown) (string, []string, []*domain.Element) {
	source := []byte(expandTabs(strings.ReplaceAll(string(data), "\r\n", "\n")))
	lines := strings.Split(strings.TrimRight(string(source), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}

	root := md.Parser().Parse(text.NewReader(source))

	var (
		title    string
		elements []*domain.Element
		cursor   int
	)

	add := func(label, href string, offset int) {
		if offset < 0 || offset > len(source) {
			return
		}
		line := bytes.Count(source[:offset], []byte("\n"))
		lineStart := bytes.LastIndexByte(source[:offset], '\n') + 1
		col := runewidth.StringWidth(string(source[lineStart:offset]))

		width := runewidth.StringWidth(label)
		if line < len(lines) {
			if rest := runewidth.StringWidth(lines[line]) - col; width > rest {
				width = rest
			}
		}
		elements = append(elements, &domain.Element{
			ID:    len(elements),
			Kind:  domain.KindLink,
			Label: label,
			Href:  href,
			Line:  line,
			Col:   col,
			Width: width,
		})
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if title == "" && node.Level == 1 {
				title = strings.TrimSpace(string(inlineText(node, source)))
			}

		case *ast.Link:
			start, stop, ok := textSpan(node)
			if !ok {
				return ast.WalkSkipChildren, nil
			}
			label := firstLine(string(source[start:stop]))
			add(label, string(node.Destination), start)
			cursor = stop
			return ast.WalkSkipChildren, nil

		case *ast.AutoLink:
			label := node.Label(source)
			i := bytes.Index(source[cursor:], label)
			if i < 0 {
				return ast.WalkContinue, nil
			}
			offset := cursor + i
			add(string(label), string(node.URL(source)), offset)
			cursor = offset + len(label)

		case *ast.Text:
			cursor = node.Segment.Stop
		}
		return ast.WalkContinue, nil
	})

	return title, lines, elements
}

// textSpan returns the source range covered by the text descendants of n
func textSpan(n ast.Node) (int, int, bool) {
	start, stop := -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			if start < 0 {
				start = t.Segment.Start
			}
			stop = t.Segment.Stop
		}
		return ast.WalkContinue, nil
	})
	return start, stop, start >= 0
}

func inlineText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
