package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"swmterm/internal/content"
	"swmterm/internal/log"
	"swmterm/internal/session"
	"swmterm/internal/terminal"
	"swmterm/internal/tui/components"
	"swmterm/internal/tui/messages"
	"swmterm/internal/tui/styles"
	"swmterm/internal/tui/views"
	"swmterm/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// border, status and help lines around the viewport
	chromeHeight = 5
)

// Option configures a Model.
type Option func(*Model)

// WithBoot plays boot on the first open.
func WithBoot(boot *session.Boot) Option {
	return func(m *Model) { m.boot = boot }
}

// WithStyles sets the colours.
func WithStyles(st styles.Styles) Option {
	return func(m *Model) { m.styles = st }
}

// WithStartOpen opens the terminal as soon as the program starts.
func WithStartOpen(open bool) Option {
	return func(m *Model) { m.startOpen = open }
}

type Model struct {
	// Core state
	mode      types.Mode
	session   *session.Session
	store     *content.Store
	boot      *session.Boot
	startOpen bool
	lines     []string
	width     int
	height    int

	// Components
	keys     types.KeyMap
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	status   *components.StatusBar
	styles   styles.Styles
}

// New creates a closed terminal for sess. Content comes from store, which
// Init loads in the background.
func New(sess *session.Session, store *content.Store, opts ...Option) *Model {
	m := &Model{
		mode:    types.Closed,
		session: sess,
		store:   store,
		keys:    types.DefaultKeyMap(),
		help:    help.New(),
		styles:  styles.Default(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.input = textinput.New()
	m.input.Prompt = sess.Prompt()
	m.input.PromptStyle = m.styles.Prompt
	m.input.CharLimit = 1024

	m.viewport = viewport.New(m.width-4, m.height-chromeHeight)
	m.status = components.NewStatusBar(m.styles.Status)
	if store != nil && !store.Loaded() {
		m.status.SetLoading(true)
		m.status.SetText("loading content")
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadContent()}
	if m.status.Loading() {
		cmds = append(cmds, m.status.Tick)
	}
	if m.startOpen {
		cmds = append(cmds, m.open())
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadContent() tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		err := store.LoadOnce(context.Background())
		return messages.ContentLoadedMsg{Stats: store.Snapshot().Stats(), Err: err}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m, m.styles)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case messages.BootTickMsg:
		return m, m.handleBootTick(msg)
	case messages.ContentLoadedMsg:
		m.status.SetLoading(false)
		m.status.SetText(describeLoad("content", msg.Stats, msg.Err))
		return m, nil
	case messages.ContentReloadedMsg:
		m.status.SetText(describeLoad("reloaded "+msg.Path, msg.Stats, msg.Err))
		return m, nil
	}

	if cmd := m.status.Update(msg); cmd != nil {
		return m, cmd
	}
	if m.mode == types.Ready {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func describeLoad(what string, stats content.Stats, err error) string {
	if err != nil {
		return fmt.Sprintf("%s unavailable: %v", what, err)
	}
	return fmt.Sprintf("%s: %d files, %d entries", what, stats.Files, stats.Entries)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	switch m.mode {
	case types.Closed:
		if key.Matches(msg, m.keys.Open) {
			return m.open()
		}
		if msg.String() == "q" {
			return tea.Quit
		}
	case types.Booting:
		if key.Matches(msg, m.keys.Close) {
			m.close()
		}
	case types.Ready:
		return m.handleReadyKeys(msg)
	}
	return nil
}

func (m *Model) handleReadyKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.close()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Prev):
		if line, ok := m.session.Prev(); ok {
			m.setInput(line)
		}
	case key.Matches(msg, m.keys.Next):
		m.setInput(m.session.Next())
	case key.Matches(msg, m.keys.Clear):
		m.clearScreen()
	case key.Matches(msg, m.keys.Complete):
		m.complete()
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// open shows the terminal. The boot sequence plays on the first open only.
func (m *Model) open() tea.Cmd {
	if m.mode != types.Closed {
		return nil
	}
	if m.boot != nil && m.boot.Phase() == session.BootIdle {
		gen, _ := m.boot.Start()
		if d, ok := m.boot.Delay(); ok {
			m.mode = types.Booting
			m.input.Blur()
			log.Debug("Boot sequence started")
			return bootTick(gen, d)
		}
	}
	if len(m.lines) == 0 {
		m.appendLines(m.styles.Output.Render(terminal.WelcomeText))
	}
	return m.ready()
}

func (m *Model) ready() tea.Cmd {
	m.mode = types.Ready
	m.input.Prompt = m.session.Prompt()
	return m.input.Focus()
}

// close hides the terminal, skipping whatever is left of the boot.
func (m *Model) close() {
	if m.mode == types.Booting {
		m.boot.Cancel()
	}
	m.mode = types.Closed
	m.input.Blur()
}

func bootTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return messages.BootTickMsg{Gen: gen}
	})
}

func (m *Model) handleBootTick(msg messages.BootTickMsg) tea.Cmd {
	if m.boot == nil {
		return nil
	}
	line, ok := m.boot.Advance(msg.Gen)
	if !ok {
		return nil
	}
	m.appendLines(m.styles.Muted.Render(line.Text))

	if d, ok := m.boot.Delay(); ok {
		return bootTick(msg.Gen, d)
	}
	if m.mode != types.Booting {
		return nil
	}
	return m.ready()
}

func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return nil
	}
	m.appendLines(m.styles.Prompt.Render(m.session.Prompt()) + line)

	res, ok := m.session.Submit(line)
	m.input.Prompt = m.session.Prompt()
	if !ok {
		return nil
	}

	switch res.Kind {
	case types.ResultClear:
		m.clearScreen()
	case types.ResultClose:
		m.close()
	case types.ResultImage:
		m.appendLines(m.styles.Image.Render("[image] "+res.Image), m.renderOutput(res.Text))
	default:
		if res.Text != "" {
			m.appendLines(m.renderOutput(res.Text))
		}
	}
	return nil
}

// IsErrorText reports whether command output reads as a failure.
func IsErrorText(s string) bool {
	return strings.Contains(s, "not found") || strings.Contains(s, "No such")
}

func (m *Model) renderOutput(s string) string {
	if IsErrorText(s) {
		return m.styles.Error.Render(s)
	}
	return m.styles.Output.Render(s)
}

func (m *Model) clearScreen() {
	m.lines = nil
	m.appendLines(m.styles.Output.Render(terminal.WelcomeText))
}

func (m *Model) complete() {
	value, candidates := m.session.Complete(m.input.Value())
	if len(candidates) > 1 {
		m.appendLines(m.styles.Prompt.Render(m.session.Prompt())+m.input.Value(), strings.Join(candidates, "  "))
	}
	m.setInput(value)
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

func (m *Model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-chromeHeight, 3)
	m.input.Width = max(width-len(m.input.Prompt)-6, 10)
	m.help.Width = width
	m.viewport.GotoBottom()
}

// Getters

func (m *Model) Mode() types.Mode {
	return m.mode
}

// Lines returns the transcript, one rendered entry per element.
func (m *Model) Lines() []string {
	return append([]string(nil), m.lines...)
}

// Input returns the text being edited.
func (m *Model) Input() string {
	return m.input.Value()
}

func (m *Model) Transcript() string {
	return m.viewport.View()
}

func (m *Model) InputView() string {
	return m.input.View()
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

func (m *Model) StatusView() string {
	return m.status.View()
}

func (m *Model) Width() int {
	return m.width
}

// Session returns the session the model drives.
func (m *Model) Session() *session.Session {
	return m.session
}
