// Package domain contains core document types for the keynav application.
package domain

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Format is the source format of a loaded document
type Format int

const (
	FormatText Format = iota
	FormatHTML
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Document is a laid-out document ready for display.
// Elements are in document order and are computed once per load.
type Document struct {
	Ref      string // Path or URL the document was loaded from
	Title    string
	Format   Format
	Lines    []string
	Elements []*Element
}

// Rect is a viewport-relative bounding box measured in terminal cells.
// Row 0 is the title bar and column 0 is the gutter, so content starts at (1,1).
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// LineCount returns the number of laid-out lines
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// ElementsOnLine returns the elements whose first cell is on the given line
func (d *Document) ElementsOnLine(line int) []*Element {
	var result []*Element
	for _, el := range d.Elements {
		if el.Line == line {
			result = append(result, el)
		}
	}
	return result
}

// Redraw rewrites the cells of el on its line with its current display text
func (d *Document) Redraw(el *Element) {
	if el.Line < 0 || el.Line >= len(d.Lines) {
		return
	}
	line := d.Lines[el.Line]
	before, _ := SplitCells(line, el.Col)
	_, after := SplitCells(line, el.Col+el.Width)
	d.Lines[el.Line] = runewidth.FillRight(before, el.Col) + el.Display() + after
}

// SplitCells splits s at cell column col. A wide rune straddling col goes
// to the right half.
func SplitCells(s string, col int) (string, string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > col {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}

// Resolve turns a possibly relative reference into one usable for loading.
// URLs resolve against the document URL, paths against the document directory.
func (d *Document) Resolve(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return d.Ref
	}

	ref, err := url.Parse(href)
	if err == nil && ref.Scheme != "" {
		return href
	}

	base, err := url.Parse(d.Ref)
	if err == nil && (base.Scheme == "http" || base.Scheme == "https") {
		if ref == nil {
			return href
		}
		return base.ResolveReference(ref).String()
	}

	// Fragment-only and query-only references stay on the current document
	if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "?") {
		return d.Ref
	}

	if filepath.IsAbs(href) {
		return href
	}
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	return filepath.Join(filepath.Dir(d.Ref), href)
}
