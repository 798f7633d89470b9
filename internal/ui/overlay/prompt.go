package overlay

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptSubmittedMsg is sent when Enter is pressed in a prompt
type PromptSubmittedMsg struct {
	ID    string
	Value string
}

// Prompt is a single-line text field used for form fields and
// the open-location prompt
type Prompt struct {
	id     string
	title  string
	input  textinput.Model
	styles *Styles
}

// NewPrompt creates a focused prompt holding value.
// Password prompts echo a mask instead of the text.
func NewPrompt(id, title, value string, password bool) *Prompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 2048
	ti.Width = 50
	ti.SetValue(value)
	ti.CursorEnd()
	if password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}
	ti.Focus()

	return &Prompt{
		id:     id,
		title:  title,
		input:  ti,
		styles: New(),
	}
}

// ID returns the identifier given at creation
func (p *Prompt) ID() string {
	return p.id
}

// Value returns the current text
func (p *Prompt) Value() string {
	return p.input.Value()
}

// Init implements tea.Model
func (p *Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (p *Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			id, value := p.id, p.input.Value()
			return p, func() tea.Msg { return PromptSubmittedMsg{ID: id, Value: value} }
		case tea.KeyEsc:
			return p, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model
func (p *Prompt) View() string {
	return p.styles.Field.Render(p.input.View())
}

// Title implements Overlay
func (p *Prompt) Title() string {
	return p.title
}

// Size implements Overlay
func (p *Prompt) Size() (width, height int) {
	return 60, 5
}

// CapturesInput implements Overlay
func (p *Prompt) CapturesInput() bool {
	return true
}
