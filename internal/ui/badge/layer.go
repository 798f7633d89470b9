// Package badge keeps the hint markers drawn over the page
package badge

import (
	"github.com/riordanpawley/keynav/internal/core/hint"
	"github.com/riordanpawley/keynav/internal/domain"
)

// Badge is a hint marker anchored at the top-left cell of its element
type Badge struct {
	ID     hint.BadgeID
	Code   string
	Rect   domain.Rect
	Hidden bool
}

// Layer stores placed badges in placement order
type Layer struct {
	badges []Badge
	nextID hint.BadgeID
}

// NewLayer creates an empty layer
func NewLayer() *Layer {
	return &Layer{}
}

// Place adds a badge and returns its handle
func (l *Layer) Place(code string, rect domain.Rect) hint.BadgeID {
	l.nextID++
	l.badges = append(l.badges, Badge{ID: l.nextID, Code: code, Rect: rect})
	return l.nextID
}

// Hide hides a badge. Hidden badges are never shown again.
func (l *Layer) Hide(id hint.BadgeID) {
	for i := range l.badges {
		if l.badges[i].ID == id {
			l.badges[i].Hidden = true
			return
		}
	}
}

// Clear removes every badge
func (l *Layer) Clear() {
	l.badges = nil
}

// Visible returns the badges still shown, in placement order
func (l *Layer) Visible() []Badge {
	var result []Badge
	for _, b := range l.badges {
		if !b.Hidden {
			result = append(result, b)
		}
	}
	return result
}

// Len returns the number of placed badges, hidden ones included
func (l *Layer) Len() int {
	return len(l.badges)
}
