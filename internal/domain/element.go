package domain

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ElementKind categorizes interactive elements
type ElementKind int

const (
	KindLink ElementKind = iota
	KindButton
	KindInput
	KindTextArea
	KindSelect
	KindEditable
)

var kindNames = [...]string{"link", "button", "input", "textarea", "select", "editable"}

func (k ElementKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// FieldWidth is the display width of text fields
const FieldWidth = 20

// Element is one interactive element of a document.
// Type mirrors the source "type" attribute verbatim and may be empty or unknown.
type Element struct {
	ID       int
	Kind     ElementKind
	Label    string
	Href     string
	Type     string
	Name     string
	Value    string
	Checked  bool
	Options  []string
	Selected int

	// Position in document cells
	Line  int
	Col   int
	Width int
}

// InputType returns the normalized type attribute of an input element
func (e *Element) InputType() string {
	return strings.ToLower(strings.TrimSpace(e.Type))
}

// IsToggle reports whether the element is a checkbox or radio input
func (e *Element) IsToggle() bool {
	if e.Kind != KindInput {
		return false
	}
	t := e.InputType()
	return t == "checkbox" || t == "radio"
}

// IsPushButton reports whether activating the element triggers it like a button
func (e *Element) IsPushButton() bool {
	if e.Kind == KindButton {
		return true
	}
	if e.Kind != KindInput {
		return false
	}
	switch e.InputType() {
	case "submit", "button", "reset", "image":
		return true
	}
	return false
}

// InputLike reports whether focus on this element captures typed text
func (e *Element) InputLike() bool {
	switch e.Kind {
	case KindTextArea, KindEditable:
		return true
	case KindInput:
		return !e.IsPushButton()
	}
	return false
}

// SelectedOption returns the current option label of a select element
func (e *Element) SelectedOption() string {
	if e.Selected < 0 || e.Selected >= len(e.Options) {
		return ""
	}
	return e.Options[e.Selected]
}

// Display returns the current on-screen text of the element, padded to Width
func (e *Element) Display() string {
	var s string
	switch e.Kind {
	case KindLink:
		s = e.Label
	case KindEditable:
		s = e.Label
		if s == "" {
			s = field("")
		}
	case KindButton:
		s = "[ " + e.Label + " ]"
	case KindSelect:
		s = "<" + e.SelectedOption() + " v>"
	case KindTextArea:
		s = field(e.Value)
	case KindInput:
		switch {
		case e.InputType() == "checkbox":
			s = mark("[x]", "[ ]", e.Checked)
		case e.InputType() == "radio":
			s = mark("(*)", "( )", e.Checked)
		case e.IsPushButton():
			s = "[ " + e.Label + " ]"
		case e.InputType() == "password":
			s = field(strings.Repeat("*", runewidth.StringWidth(e.Value)))
		default:
			s = field(e.Value)
		}
	}

	if e.Width <= 0 {
		return s
	}
	return runewidth.FillRight(runewidth.Truncate(s, e.Width, ""), e.Width)
}

func (e *Element) String() string {
	return fmt.Sprintf("%s#%d(%q)", e.Kind, e.ID, e.Label)
}

func field(value string) string {
	return "[" + runewidth.FillRight(runewidth.Truncate(value, FieldWidth, ""), FieldWidth) + "]"
}

func mark(on, off string, checked bool) string {
	if checked {
		return on
	}
	return off
}

// ParseKind returns the kind named s, as printed by ElementKind.String
func ParseKind(s string) (ElementKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return ElementKind(i), true
		}
	}
	return 0, false
}

// AllKinds returns every element kind in declaration order
func AllKinds() []ElementKind {
	kinds := make([]ElementKind, len(kindNames))
	for i := range kindNames {
		kinds[i] = ElementKind(i)
	}
	return kinds
}
