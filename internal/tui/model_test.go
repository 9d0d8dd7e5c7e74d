package tui

import (
	"strings"
	"testing"
	"time"

	"swmterm/internal/content"
	"swmterm/internal/session"
	"swmterm/internal/terminal"
	"swmterm/internal/tui/messages"
	"swmterm/internal/vfs"
	"swmterm/pkg/testutils"
	"swmterm/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *vfs.Tree {
	return vfs.NewTree(
		vfs.NewFile("about.md", "About"),
		vfs.NewDir("projects",
			vfs.NewFile("jotter.md", "Bookmark manager"),
		),
	)
}

func newModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	store := content.NewStore(nil)
	store.Swap(&content.Snapshot{FS: testTree(), Loaded: true})
	sess := session.New(terminal.NewExecutor(store))
	return New(sess, store, opts...)
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeLine(m *Model, s string) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func run(m *Model, line string) {
	typeLine(m, line)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func transcript(m *Model) string {
	return testutils.StripANSI(strings.Join(m.Lines(), "\n"))
}

func TestModelInitialization(t *testing.T) {
	m := newModel(t)
	assert.NotNil(t, m)
	assert.Equal(t, types.Closed, m.Mode())
	assert.Empty(t, m.Lines())
	assert.Contains(t, m.View(), "ctrl+t")
}

func TestOpenPlaysBootOnce(t *testing.T) {
	boot := session.NewBoot([]session.BootLine{{Text: "one"}, {Text: "two", Delay: time.Millisecond}}, 1)
	m := newModel(t, WithBoot(boot))

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	assert.Equal(t, types.Booting, m.Mode())

	// Input is ignored while booting
	typeLine(m, "pwd")
	assert.Empty(t, m.Input())

	gen := boot.Generation()
	_, cmd = m.Update(messages.BootTickMsg{Gen: gen})
	require.NotNil(t, cmd)
	assert.Equal(t, types.Booting, m.Mode())
	m.Update(messages.BootTickMsg{Gen: gen})
	assert.Equal(t, types.Ready, m.Mode())
	assert.Equal(t, []string{"one", "two"}, m.Lines())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, types.Closed, m.Mode())

	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, types.Ready, m.Mode(), "the second open skips the boot")
	assert.Len(t, m.Lines(), 2)
}

func TestCloseDuringBootCancelsRemainingLines(t *testing.T) {
	boot := session.NewBoot([]session.BootLine{{Text: "one"}, {Text: "two"}, {Text: "three"}}, 1)
	m := newModel(t, WithBoot(boot))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	gen := boot.Generation()
	m.Update(messages.BootTickMsg{Gen: gen})

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, types.Closed, m.Mode())
	assert.Equal(t, session.BootDone, boot.Phase())

	_, cmd := m.Update(messages.BootTickMsg{Gen: gen})
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"one"}, m.Lines(), "stale ticks print nothing")

	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, types.Ready, m.Mode())
}

func TestSubmitRendersResults(t *testing.T) {
	m := newModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, types.Ready, m.Mode())
	assert.Contains(t, transcript(m), terminal.WelcomeText)

	run(m, "cd projects")
	assert.Equal(t, "/projects", m.Session().CurrentPath())
	assert.Contains(t, m.InputView(), "visitor@swm.cc:projects$ ")
	assert.Contains(t, transcript(m), "visitor@swm.cc:~$ cd projects")

	run(m, "cat jotter.md")
	assert.Equal(t, "Bookmark manager", m.Lines()[len(m.Lines())-1])

	run(m, "cat nope.md")
	assert.Contains(t, m.Lines()[len(m.Lines())-1], "No such file or directory")

	run(m, "whoami")
	assert.Contains(t, transcript(m), "[image] "+terminal.DefaultProfileImage)

	assert.Empty(t, m.Input())
}

func TestBlankLineIsNotEchoed(t *testing.T) {
	m := newModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	before := m.Lines()

	run(m, "   ")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, before, m.Lines())
	assert.Empty(t, m.Session().History())
}

func TestClearAndExit(t *testing.T) {
	m := newModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	run(m, "pwd")
	run(m, "clear")
	assert.Equal(t, []string{terminal.WelcomeText}, m.Lines())

	run(m, "ls")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, []string{terminal.WelcomeText}, m.Lines())

	run(m, "exit")
	assert.Equal(t, types.Closed, m.Mode())
}

func TestHistoryKeys(t *testing.T) {
	m := newModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	run(m, "pwd")
	run(m, "ls")

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ls", m.Input())
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", m.Input())
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "pwd", m.Input(), "stays on the oldest entry")
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "ls", m.Input())
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", m.Input())
}

func TestTabCompletion(t *testing.T) {
	m := newModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	typeLine(m, "wh")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "whoami ", m.Input())

	m.setInput("")
	typeLine(m, "c")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "c", m.Input())
	assert.Equal(t, "cat  cd  clear  cls", m.Lines()[len(m.Lines())-1])

	m.setInput("cat projects/jo")
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "cat projects/jotter.md", m.Input())
}

func TestCtrlCQuits(t *testing.T) {
	for _, mode := range []string{"closed", "ready"} {
		t.Run(mode, func(t *testing.T) {
			m := newModel(t)
			if mode == "ready" {
				press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
			}
			cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok)
		})
	}
}

func TestContentLoading(t *testing.T) {
	path := testutils.WriteIndex(t, testTree(), nil)

	store := content.NewStore(content.FileSource{Path: path})
	m := New(session.New(terminal.NewExecutor(store)), store)
	assert.Contains(t, m.StatusView(), "loading content")
	require.NotNil(t, m.Init())

	msg := m.loadContent()()
	loaded, ok := msg.(messages.ContentLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.True(t, store.Loaded())

	m.Update(loaded)
	assert.Equal(t, "content: 2 files, 0 entries", m.StatusView())

	m.Update(messages.ContentReloadedMsg{Path: "terminal-index.json", Err: assert.AnError})
	assert.Contains(t, m.StatusView(), "unavailable")
}

func TestWindowResize(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 40-chromeHeight, m.viewport.Height)
}

func TestIsErrorText(t *testing.T) {
	assert.True(t, IsErrorText("Command not found: rm"))
	assert.True(t, IsErrorText("cat: x: No such file or directory"))
	assert.False(t, IsErrorText("Bookmark manager"))
}
