package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the page bindings. Hint and scroll commands are routed by the
// gate before these are consulted; their bindings here only feed the help view.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Back     key.Binding
	Reload   key.Binding
	Open     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	HalfDown key.Binding
	HalfUp   key.Binding

	Follow       key.Binding
	FollowNew    key.Binding
	CopyLink     key.Binding
	Scroll       key.Binding
	Count        key.Binding
	Top          key.Binding
	Bottom       key.Binding
	CopyLocation key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:     key.NewBinding(key.WithKeys("backspace", "H"), key.WithHelp("H", "back")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open location")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		HalfDown: key.NewBinding(key.WithKeys("ctrl+d", "d"), key.WithHelp("ctrl+d", "half page down")),
		HalfUp:   key.NewBinding(key.WithKeys("ctrl+u", "u"), key.WithHelp("ctrl+u", "half page up")),

		Follow:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow hint")),
		FollowNew:    key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "open hint in browser")),
		CopyLink:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy hint link")),
		Scroll:       key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll")),
		Count:        key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("5j", "scroll 5 steps")),
		Top:          key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "top")),
		Bottom:       key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		CopyLocation: key.NewBinding(key.WithKeys("y"), key.WithHelp("yy", "copy location")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Follow, k.Scroll, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Follow, k.FollowNew, k.CopyLink, k.CopyLocation},
		{k.Scroll, k.Count, k.Top, k.Bottom, k.PageDown, k.PageUp, k.HalfDown, k.HalfUp},
		{k.Back, k.Reload, k.Open, k.Help, k.Quit},
	}
}
