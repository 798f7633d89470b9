// Package page renders the visible part of a document with element styling
// and hint badges
package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/riordanpawley/keynav/internal/domain"
	"github.com/riordanpawley/keynav/internal/ui/badge"
	"github.com/riordanpawley/keynav/internal/ui/styles"
)

// View is everything needed to draw one frame of the page
type View struct {
	Title    string
	Location string
	Percent  float64
	Doc      *domain.Document
	Offset   int // first document line in view
	Focused  *domain.Element
	Badges   []badge.Badge
	Typed    string // hint prefix typed so far
	Width    int
	Height   int // rows including the title bar
}

// Renderer draws page views
type Renderer struct {
	styles *styles.Styles
}

// New creates a page renderer
func New(s *styles.Styles) *Renderer {
	return &Renderer{styles: s}
}

// Render returns Height rows: the title bar followed by the content rows
func (r *Renderer) Render(v View) string {
	if v.Width <= 0 || v.Height <= 0 {
		return ""
	}

	rows := make([]string, 0, v.Height)
	rows = append(rows, r.titleBar(v))

	byRow := make(map[int][]badge.Badge)
	for _, b := range v.Badges {
		byRow[b.Rect.Top] = append(byRow[b.Rect.Top], b)
	}

	for row := 1; row < v.Height; row++ {
		line := v.Offset + row - 1
		if v.Doc == nil || line >= len(v.Doc.Lines) {
			rows = append(rows, r.styles.Gutter.Render("~"))
			continue
		}
		rows = append(rows, " "+r.line(v, line, byRow[row]))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) titleBar(v View) string {
	title := v.Title
	if title == "" {
		title = v.Location
	}
	right := fmt.Sprintf("%3.0f%%", v.Percent*100)
	room := v.Width - runewidth.StringWidth(right) - 2
	left := " " + runewidth.Truncate(title, max(room-1, 0), "…")
	pad := max(v.Width-runewidth.StringWidth(left)-runewidth.StringWidth(right)-1, 0)
	text := runewidth.Truncate(left+strings.Repeat(" ", pad)+right+" ", v.Width, "")
	return r.styles.TitleBar.Render(text)
}

// cell is one display cell group: a rune and any zero-width runes after it
type cell struct {
	text  string
	width int
	style int // index into the line's style table; 0 is plain text
}

func (r *Renderer) line(v View, index int, badges []badge.Badge) string {
	contentWidth := v.Width - 1
	cells := splitCells(v.Doc.Lines[index])
	table := []lipgloss.Style{r.styles.Text}

	for _, el := range v.Doc.ElementsOnLine(index) {
		style := r.styles.ElementKind(el.Kind)
		if el == v.Focused {
			style = style.Inherit(r.styles.Focused)
		}
		table = append(table, style)
		id := len(table) - 1
		col := 0
		for i := range cells {
			if col >= el.Col && col < el.Col+el.Width {
				cells[i].style = id
			}
			col += cells[i].width
		}
	}

	// Badges are drawn last so they cover element text
	typedStyle := len(table)
	table = append(table, r.styles.BadgeTyped, r.styles.Badge)
	for _, b := range badges {
		cells = overlay(cells, b.Rect.Left-1, b.Code, len(v.Typed), typedStyle, typedStyle+1)
	}

	return render(cells, table, contentWidth)
}

func splitCells(s string) []cell {
	var cells []cell
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 && len(cells) > 0 {
			cells[len(cells)-1].text += string(r)
			continue
		}
		cells = append(cells, cell{text: string(r), width: w})
	}
	return cells
}

// overlay writes code over the cells starting at column col. The first
// typed characters use typedStyle.
func overlay(cells []cell, col int, code string, typed, typedStyle, codeStyle int) []cell {
	if col < 0 {
		return cells
	}

	var out []cell
	pos := 0
	i := 0
	for ; i < len(cells) && pos+cells[i].width <= col; i++ {
		out = append(out, cells[i])
		pos += cells[i].width
	}
	start := pos
	// Pad short lines, or blank a wide cell the badge starts inside
	for pos < col {
		out = append(out, cell{text: " ", width: 1})
		pos++
	}

	end := col + runewidth.StringWidth(code)
	for j, r := range code {
		style := codeStyle
		if j < typed {
			style = typedStyle
		}
		out = append(out, cell{text: string(r), width: runewidth.RuneWidth(r), style: style})
	}

	// Skip the cells under the badge, blanking any wide cell it cuts into
	covered := start
	for ; i < len(cells); i++ {
		if covered >= end {
			break
		}
		covered += cells[i].width
	}
	for ; covered > end; covered-- {
		out = append(out, cell{text: " ", width: 1})
	}

	return append(out, cells[i:]...)
}

func render(cells []cell, table []lipgloss.Style, width int) string {
	var sb strings.Builder
	var run strings.Builder
	current := -1
	used := 0

	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(table[current].Render(run.String()))
		run.Reset()
	}

	for _, c := range cells {
		if used+c.width > width {
			break
		}
		if c.style != current {
			flush()
			current = c.style
		}
		run.WriteString(c.text)
		used += c.width
	}
	flush()
	return sb.String()
}
