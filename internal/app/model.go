// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/keynav/internal/config"
	"github.com/riordanpawley/keynav/internal/core/command"
	"github.com/riordanpawley/keynav/internal/core/gate"
	"github.com/riordanpawley/keynav/internal/core/hint"
	"github.com/riordanpawley/keynav/internal/domain"
	"github.com/riordanpawley/keynav/internal/services/action"
	"github.com/riordanpawley/keynav/internal/services/clipboard"
	"github.com/riordanpawley/keynav/internal/services/navigation"
	"github.com/riordanpawley/keynav/internal/services/opener"
	"github.com/riordanpawley/keynav/internal/types"
	"github.com/riordanpawley/keynav/internal/ui/badge"
	"github.com/riordanpawley/keynav/internal/ui/overlay"
	"github.com/riordanpawley/keynav/internal/ui/page"
	"github.com/riordanpawley/keynav/internal/ui/statusbar"
	"github.com/riordanpawley/keynav/internal/ui/styles"
	"github.com/riordanpawley/keynav/internal/ui/toast"
)

// Prompt identifiers
const (
	promptField = "field"
	promptOpen  = "open"
)

const toastTTL = 4 * time.Second

// Loader loads a document by reference
type Loader interface {
	Load(ctx context.Context, ref string) (*domain.Document, error)
}

// Options wires the model's collaborators
type Options struct {
	Config   *config.Config
	Loader   Loader
	Copier   action.Copier
	Launcher action.Launcher
	Logger   *slog.Logger
	Ref      string // document shown at startup
}

// Model is the main application state
type Model struct {
	cfg    *config.Config
	keys   KeyMap
	logger *slog.Logger

	loader   Loader
	copier   action.Copier
	executor *action.Executor

	nav     *navigation.Service
	gate    *gate.Gate
	badges  *badge.Layer
	page    *page.Renderer
	styles  *styles.Styles
	overlay *overlay.Stack
	frames  *overlay.Styles
	toasts  *toast.Queue

	// focused is the element holding focus, editing the one in the prompt
	focused      *domain.Element
	editing      *domain.Element
	toastTicking bool

	initialRef string
	loading    bool
	info       string

	width  int
	height int
}

// New creates the application model
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	kinds, err := cfg.Hints.Kinds()
	if err != nil {
		logger.Warn("ignoring hints.enabled", "error", err)
		kinds, _ = config.DefaultConfig().Hints.Kinds()
	}

	nav := navigation.NewService(cfg.Scroll.UnitsPerLine)
	badges := badge.NewLayer()
	acc := command.New(command.Options{Step: cfg.Scroll.Step, MaxCount: cfg.Scroll.MaxCount}, logger)
	session := hint.NewSession(badges, logger)
	g := gate.New(acc, session, hintPage{nav: nav, kinds: kinds}, logger)

	s := styles.New()
	return Model{
		cfg:        cfg,
		keys:       DefaultKeyMap(),
		logger:     logger,
		loader:     opts.Loader,
		copier:     opts.Copier,
		executor:   action.NewExecutor(opts.Copier, opts.Launcher, logger),
		nav:        nav,
		gate:       g,
		badges:     badges,
		page:       page.New(s),
		styles:     s,
		overlay:    overlay.NewStack(),
		frames:     overlay.New(),
		toasts:     toast.NewQueue(toastTTL),
		initialRef: opts.Ref,
		loading:    opts.Ref != "",
	}
}

// hintPage restricts hint candidates to the enabled element kinds
type hintPage struct {
	nav   *navigation.Service
	kinds map[domain.ElementKind]bool
}

func (p hintPage) Candidates() []hint.Candidate {
	all := p.nav.Candidates()
	result := all[:0]
	for _, c := range all {
		if p.kinds[c.Element.Kind] {
			result = append(result, c)
		}
	}
	return result
}

func (p hintPage) Visible(rect domain.Rect) bool {
	return p.nav.Visible(rect)
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	if m.initialRef == "" {
		return nil
	}
	return m.loadCmd(m.initialRef, loadInitial)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The status bar takes the last row
		m.nav.Resize(msg.Width, max(msg.Height-1, 0))
		return m, nil

	case tea.KeyMsg:
		var cmds []tea.Cmd
		for _, k := range splitRunes(msg) {
			var cmd tea.Cmd
			m, cmd = m.handleKey(k)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.FocusMsg:
		cmd := m.perform(m.gate.VisibilityChanged(true).Effects)
		return m, cmd

	case tea.BlurMsg:
		cmd := m.perform(m.gate.VisibilityChanged(false).Effects)
		return m, cmd

	case bufferTimeoutMsg:
		if m.gate.Timeout(msg.generation) {
			m.logger.Debug("command buffer expired", "generation", msg.generation)
		}
		return m, nil

	case docLoadedMsg:
		return m.handleLoaded(msg)

	case docErrorMsg:
		m.loading = false
		m.logger.Error("document load failed", "ref", msg.ref, "error", msg.err)
		cmd := m.addToast(types.ToastError, msg.err.Error())
		return m, cmd

	case overlay.CloseOverlayMsg:
		m.closePrompt()
		return m, nil

	case overlay.PromptSubmittedMsg:
		return m.handlePrompt(msg)

	case clipboard.CopiedMsg, opener.OpenedMsg:
		// Failures were logged by the service
		return m, nil

	case toastTickMsg:
		m.toastTicking = m.toasts.Prune(time.Time(msg))
		if m.toastTicking {
			return m, toastTick()
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes one key press through the gate, then to the overlay or
// the page bindings if the gate did not consume it
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Global keys, ahead of overlays and the gate
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	// Non-capturing overlays such as help own the keyboard outright
	if !m.overlay.IsEmpty() && !m.overlay.CapturesInput() {
		cmd := m.overlay.Update(msg)
		return m, cmd
	}

	handled := false
	var cmds []tea.Cmd
	for _, ev := range keyEvents(msg) {
		res := m.gate.Dispatch(ev)
		handled = handled || res.Handled
		cmds = append(cmds, m.perform(res.Effects))
	}
	if handled {
		return m, tea.Batch(cmds...)
	}

	if !m.overlay.IsEmpty() {
		cmds = append(cmds, m.overlay.Update(msg))
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, m.pageKey(msg))
	return m, tea.Batch(cmds...)
}

// pageKey handles keys that reached the page itself
func (m *Model) pageKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.overlay.Push(overlay.NewHelpOverlay(m.keys))

	case key.Matches(msg, m.keys.Back):
		if !m.nav.Back() {
			return m.addToast(types.ToastInfo, "No previous document")
		}
		return m.pageChanged()

	case key.Matches(msg, m.keys.Reload):
		if m.nav.Location() == "" {
			return nil
		}
		return m.loadCmd(m.nav.Location(), loadReload)

	case key.Matches(msg, m.keys.Open):
		m.gate.FocusElement(true)
		return m.overlay.Push(overlay.NewPrompt(promptOpen, "Open", m.nav.Location(), false))
	}

	// Paging keys and the mouse wheel go to the viewport
	return m.nav.Update(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		cmd := m.perform(m.gate.Click().Effects)
		return m, cmd
	}
	if m.gate.IsHintSelecting() {
		return m, nil
	}
	cmd := m.nav.Update(msg)
	return m, cmd
}

// perform carries out gate effects in order
func (m *Model) perform(effects []gate.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case gate.ScrollBy:
			m.nav.ScrollBy(e.Delta)

		case gate.ScrollTo:
			if e.Edge == gate.EdgeTop {
				m.nav.Top()
			} else {
				m.nav.Bottom()
			}

		case gate.CopyLocation:
			loc := m.nav.Location()
			if loc == "" {
				continue
			}
			m.info = "Copied " + loc
			cmds = append(cmds, m.copier.Write(loc))

		case gate.StartTimer:
			cmds = append(cmds, bufferTimeout(m.cfg.CommandTimeout(), e.Generation))

		case gate.FocusProxy:
			m.focused = nil

		case gate.ReleaseProxy:
			m.logger.Debug("proxy focus released")

		case gate.BlurElement:
			m.closePrompt()

		case gate.Execute:
			cmds = append(cmds, m.execute(e.Action, e.Element))

		case gate.HintsShown:
			m.info = fmt.Sprintf("%d hints (%s)", e.Count, e.Action)

		case gate.HintsCancelled:
			m.info = ""

		case gate.NoHints:
			cmds = append(cmds, m.addToast(types.ToastWarning, "No visible elements to hint"))
		}
	}
	return tea.Batch(cmds...)
}

// execute runs a resolved hint action and applies its result
func (m *Model) execute(act types.Action, el *domain.Element) tea.Cmd {
	res := m.executor.Execute(act, el, m.nav.Document())
	cmds := []tea.Cmd{res.Cmd}

	for _, changed := range res.Changed {
		m.nav.Redraw(changed)
	}
	m.info = res.Message

	switch {
	case res.Follow != "":
		m.focused = nil
		cmds = append(cmds, m.loadCmd(res.Follow, loadFollow))
	case res.Edit:
		m.focused = el
		m.editing = el
		m.gate.FocusElement(true)
		cmds = append(cmds, m.overlay.Push(promptFor(el)))
	case res.Focus:
		m.focused = el
		m.gate.FocusElement(false)
	default:
		m.focused = nil
		m.gate.Blur()
	}
	return tea.Batch(cmds...)
}

// promptFor creates the editor for an input-like element
func promptFor(el *domain.Element) *overlay.Prompt {
	title := "Edit"
	if el.Name != "" {
		title = "Edit " + el.Name
	}
	value := el.Value
	if el.Kind == domain.KindEditable {
		value = el.Label
	}
	return overlay.NewPrompt(promptField, title, value, el.InputType() == "password")
}

func (m Model) handlePrompt(msg overlay.PromptSubmittedMsg) (tea.Model, tea.Cmd) {
	switch msg.ID {
	case promptField:
		if el := m.editing; el != nil {
			if el.Kind == domain.KindEditable {
				el.Label = msg.Value
			} else {
				el.Value = msg.Value
			}
			m.nav.Redraw(el)
		}
		m.closePrompt()
		return m, nil

	case promptOpen:
		m.closePrompt()
		ref := strings.TrimSpace(msg.Value)
		if ref == "" {
			return m, nil
		}
		cmd := m.loadCmd(ref, loadFollow)
		return m, cmd
	}
	return m, nil
}

// closePrompt ends editing and blurs the element
func (m *Model) closePrompt() {
	if !m.overlay.IsEmpty() {
		m.overlay.Pop()
	}
	m.editing = nil
	m.focused = nil
	m.gate.Blur()
}

type loadMode int

const (
	loadInitial loadMode = iota
	loadFollow
	loadReload
)

type docLoadedMsg struct {
	doc  *domain.Document
	mode loadMode
}

type docErrorMsg struct {
	ref string
	err error
}

type bufferTimeoutMsg struct {
	generation uint64
}

type toastTickMsg time.Time

// loadCmd returns a command that loads ref in the background
func (m *Model) loadCmd(ref string, mode loadMode) tea.Cmd {
	m.loading = true
	loader := m.loader
	timeout := m.cfg.FetchTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		doc, err := loader.Load(ctx, ref)
		if err != nil {
			return docErrorMsg{ref: ref, err: err}
		}
		return docLoadedMsg{doc: doc, mode: mode}
	}
}

func (m Model) handleLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	switch msg.mode {
	case loadFollow:
		m.nav.Follow(msg.doc)
	case loadReload:
		m.nav.Replace(msg.doc)
	default:
		m.nav.Show(msg.doc)
	}
	m.logger.Info("document shown", "ref", msg.doc.Ref, "elements", len(msg.doc.Elements))
	cmd := m.pageChanged()
	return m, cmd
}

// pageChanged drops session, focus and pending keys tied to the old page
func (m *Model) pageChanged() tea.Cmd {
	m.overlay.Clear()
	m.editing = nil
	m.focused = nil
	m.info = ""
	return m.perform(m.gate.Reset().Effects)
}

func bufferTimeout(d time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return bufferTimeoutMsg{generation: generation}
	})
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// addToast queues a toast and starts the expiry ticker if it is idle
func (m *Model) addToast(level types.ToastLevel, message string) tea.Cmd {
	m.toasts.Push(level, message, time.Now())
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return toastTick()
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	bodyHeight := max(m.height-1, 0)

	var body string
	if !m.overlay.IsEmpty() {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.frames.Frame(m.overlay.Current()))
	} else {
		body = m.renderPage(bodyHeight)
	}

	body = lipgloss.NewStyle().MaxHeight(bodyHeight).MaxWidth(m.width).Render(body)

	if t := toast.New(m.styles).Render(m.toasts.Toasts(), m.width); t != "" {
		body = stackBottom(body, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, t), bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m Model) renderPage(height int) string {
	title := m.nav.Document().Title
	if m.loading && title == "" {
		title = "Loading " + m.initialRef
	}
	var typed string
	if m.gate.IsHintSelecting() {
		typed = m.gate.Typed()
	}
	return m.page.Render(page.View{
		Title:    title,
		Location: m.nav.Location(),
		Percent:  m.nav.ScrollPercent(),
		Doc:      m.nav.Document(),
		Offset:   m.nav.Offset(),
		Focused:  m.focused,
		Badges:   m.badges.Visible(),
		Typed:    typed,
		Width:    m.width,
		Height:   height,
	})
}

func (m Model) renderStatusBar() string {
	pending := m.gate.Buffer()
	if m.gate.IsHintSelecting() {
		pending = m.gate.Typed()
	}
	info := m.info
	if m.loading {
		info = "loading…"
	}
	return statusbar.New(m.gate.Mode(), m.width, m.styles).
		WithPending(pending).
		WithInfo(info).
		WithEditing(m.gate.Focus() == gate.FocusInput).
		Render()
}

// stackBottom replaces the last rows of base with bottom, keeping height rows
func stackBottom(base, bottom string, height int) string {
	baseLines := strings.Split(base, "\n")
	bottomLines := strings.Split(bottom, "\n")
	keep := max(height-len(bottomLines), 0)
	if keep < len(baseLines) {
		baseLines = baseLines[:keep]
	}
	for len(baseLines) < keep {
		baseLines = append(baseLines, "")
	}
	return strings.Join(append(baseLines, bottomLines...), "\n")
}
