// Package navigation provides the scroll viewport over the current document
package navigation

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/keynav/internal/core/hint"
	"github.com/riordanpawley/keynav/internal/domain"
)

// DefaultUnitsPerLine converts scroll units to terminal lines
const DefaultUnitsPerLine = 20

// Entry is a document left behind by in-place navigation
type Entry struct {
	Doc    *domain.Document
	Offset int
}

// Service tracks the current document, its scroll position and the
// in-place navigation history.
//
// The view is width x height cells: row 0 is the title bar and column 0 is
// the gutter, so document line YOffset is drawn at row 1.
type Service struct {
	vp           viewport.Model
	doc          *domain.Document
	history      []Entry
	unitsPerLine int
	residual     int
	width        int
	height       int
}

// NewService creates a navigation service with an empty document
func NewService(unitsPerLine int) *Service {
	if unitsPerLine <= 0 {
		unitsPerLine = DefaultUnitsPerLine
	}
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &Service{
		vp:           vp,
		doc:          &domain.Document{},
		unitsPerLine: unitsPerLine,
	}
}

// Resize sets the view size including the title bar and gutter
func (s *Service) Resize(width, height int) {
	s.width = width
	s.height = height
	s.vp.Width = max(width-1, 0)
	s.vp.Height = max(height-1, 0)
	s.vp.SetYOffset(s.vp.YOffset)
}

// Size returns the view size
func (s *Service) Size() (int, int) {
	return s.width, s.height
}

// Document returns the current document
func (s *Service) Document() *domain.Document {
	return s.doc
}

// Location returns the reference of the current document
func (s *Service) Location() string {
	return s.doc.Ref
}

// Offset returns the first visible document line
func (s *Service) Offset() int {
	return s.vp.YOffset
}

// Show replaces the current document without recording history
func (s *Service) Show(doc *domain.Document) {
	s.doc = doc
	s.residual = 0
	s.vp.SetContent(strings.Join(doc.Lines, "\n"))
	s.vp.GotoTop()
}

// Replace swaps in a reloaded document, keeping the scroll position
func (s *Service) Replace(doc *domain.Document) {
	offset := s.vp.YOffset
	s.Show(doc)
	s.vp.SetYOffset(offset)
}

// Follow shows doc and records the current document for Back
func (s *Service) Follow(doc *domain.Document) {
	if s.doc != nil && s.doc.Ref != "" {
		s.history = append(s.history, Entry{Doc: s.doc, Offset: s.vp.YOffset})
	}
	s.Show(doc)
}

// Back returns to the previous document. Returns false if there is none.
func (s *Service) Back() bool {
	if len(s.history) == 0 {
		return false
	}
	entry := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.Show(entry.Doc)
	s.vp.SetYOffset(entry.Offset)
	return true
}

// CanGoBack returns true if Back has somewhere to go
func (s *Service) CanGoBack() bool {
	return len(s.history) > 0
}

// ScrollBy scrolls by units; positive is down. Units that do not add up to a
// whole line carry over to the next scroll.
func (s *Service) ScrollBy(units int) {
	total := s.residual + units
	lines := total / s.unitsPerLine
	s.residual = total % s.unitsPerLine

	before := s.vp.YOffset
	s.vp.SetYOffset(before + lines)
	if s.vp.YOffset != before+lines {
		// Clamped at an edge
		s.residual = 0
	}
}

// Top scrolls to the first line
func (s *Service) Top() {
	s.residual = 0
	s.vp.GotoTop()
}

// Bottom scrolls so the last line is visible
func (s *Service) Bottom() {
	s.residual = 0
	s.vp.GotoBottom()
}

// AtTop returns true if the first line is visible
func (s *Service) AtTop() bool {
	return s.vp.AtTop()
}

// AtBottom returns true if the last line is visible
func (s *Service) AtBottom() bool {
	return s.vp.AtBottom()
}

// ScrollPercent returns how far down the document the view is
func (s *Service) ScrollPercent() float64 {
	return s.vp.ScrollPercent()
}

// Update forwards paging keys and mouse wheel events to the viewport
func (s *Service) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

// VisibleLines returns the document lines currently in view
func (s *Service) VisibleLines() []string {
	start := min(s.vp.YOffset, len(s.doc.Lines))
	end := min(start+s.vp.Height, len(s.doc.Lines))
	return s.doc.Lines[start:end]
}

// RectOf returns the viewport-relative rect of an element
func (s *Service) RectOf(el *domain.Element) domain.Rect {
	return domain.Rect{
		Top:    el.Line - s.vp.YOffset + 1,
		Left:   el.Col + 1,
		Width:  el.Width,
		Height: 1,
	}
}

// Candidates returns every element of the document with its current rect
func (s *Service) Candidates() []hint.Candidate {
	result := make([]hint.Candidate, 0, len(s.doc.Elements))
	for _, el := range s.doc.Elements {
		result = append(result, hint.Candidate{Element: el, Rect: s.RectOf(el)})
	}
	return result
}

// Visible reports whether rect's top-left cell lies strictly inside the
// view: 0 < top < height and 0 < left < width.
func (s *Service) Visible(rect domain.Rect) bool {
	return rect.Top > 0 && rect.Top < s.height && rect.Left > 0 && rect.Left < s.width
}

// Redraw re-renders el after its state changed
func (s *Service) Redraw(el *domain.Element) {
	s.doc.Redraw(el)
	offset := s.vp.YOffset
	s.vp.SetContent(strings.Join(s.doc.Lines, "\n"))
	s.vp.SetYOffset(offset)
}
