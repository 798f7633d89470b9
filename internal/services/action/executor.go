// Package action performs a pending hint action on a resolved element
package action

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/keynav/internal/domain"
	"github.com/riordanpawley/keynav/internal/types"
)

// Copier writes text to the clipboard
type Copier interface {
	Write(text string) tea.Cmd
}

// Launcher opens a reference in a new browsing context
type Launcher interface {
	Open(url string) tea.Cmd
}

// Result tells the host what to do after an action
type Result struct {
	Cmd     tea.Cmd           // async work (clipboard, browser)
	Follow  string            // reference to load in place, if any
	Focus   bool              // element keeps focus afterwards
	Edit    bool              // focus captures typed text; open an editor
	Changed []*domain.Element // elements whose display must be redrawn
	Message string            // status feedback
}

// Executor dispatches actions by element kind. Only links honor the
// pending action; other elements always get their default activation.
type Executor struct {
	copier   Copier
	launcher Launcher
	logger   *slog.Logger
}

// NewExecutor creates an executor
func NewExecutor(copier Copier, launcher Launcher, logger *slog.Logger) *Executor {
	return &Executor{copier: copier, launcher: launcher, logger: logger}
}

// Execute performs action on el, which belongs to doc
func (e *Executor) Execute(action types.Action, el *domain.Element, doc *domain.Document) Result {
	if el == nil {
		return Result{}
	}
	e.logger.Debug("executing action", "action", action, "element", el)

	switch {
	case el.Kind == domain.KindLink:
		return e.link(action, el, doc)
	case el.IsPushButton():
		return Result{Focus: true, Message: fmt.Sprintf("Pressed %s", el.Label)}
	case el.IsToggle():
		return Result{Changed: toggle(el, doc)}
	case el.Kind == domain.KindSelect:
		changed := advance(el)
		return Result{Focus: true, Changed: changed, Message: el.SelectedOption()}
	case el.InputLike():
		return Result{Focus: true, Edit: true}
	default:
		return Result{Focus: true}
	}
}

func (e *Executor) link(action types.Action, el *domain.Element, doc *domain.Document) Result {
	ref := doc.Resolve(el.Href)
	switch action {
	case types.ActionActivateNew:
		return Result{Cmd: e.launcher.Open(ref), Message: "Opening " + ref}
	case types.ActionCopyReference:
		return Result{Cmd: e.copier.Write(ref), Message: "Copied " + ref}
	default:
		return Result{Follow: ref}
	}
}

// toggle flips a checkbox, or checks a radio and unchecks its group
func toggle(el *domain.Element, doc *domain.Document) []*domain.Element {
	if el.InputType() == "checkbox" {
		el.Checked = !el.Checked
		return []*domain.Element{el}
	}

	changed := []*domain.Element{el}
	el.Checked = true
	if el.Name == "" {
		return changed
	}
	for _, other := range doc.Elements {
		if other != el && other.Checked && other.InputType() == "radio" && other.Name == el.Name {
			other.Checked = false
			changed = append(changed, other)
		}
	}
	return changed
}

// advance moves a select to its next option, wrapping at the end
func advance(el *domain.Element) []*domain.Element {
	if len(el.Options) == 0 {
		return nil
	}
	el.Selected = (el.Selected + 1) % len(el.Options)
	return []*domain.Element{el}
}
