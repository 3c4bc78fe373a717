package tui

import (
	"errors"
	"testing"
	"time"

	"mergelist/internal/config"
	"mergelist/internal/screen"
	"mergelist/internal/tui/components"
	"mergelist/internal/tui/listview"
	"mergelist/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, logChannel <-chan logging.LogEntry) *Model {
	t.Helper()
	s, err := screen.Build(config.GetDefaultConfig().Screen)
	require.NoError(t, err)
	m := NewModel(Config{Screen: s, DarkMode: true, LogChannel: logChannel})
	t.Cleanup(m.list.Close)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, nil)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Same(t, m, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.list.List.Width())
	assert.Equal(t, 40-chromeHeight, m.list.List.Height())
}

func TestModel_ToggleBlocks(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.screen.Adapter.Count()

	m.Update(runes("4"))
	assert.True(t, m.screen.IsActive("footer"))
	assert.Equal(t, `Block "footer" shown`, m.status)
	assert.Len(t, m.list.List.Items(), before+1, "list is re-queried in the same update")

	m.Update(runes("2"))
	assert.False(t, m.screen.IsActive("characters"))
	assert.Len(t, m.list.List.Items(), before+1-11)
	assert.Equal(t, components.MessageInfo, m.statusType)

	m.Update(runes("9"))
	assert.Equal(t, "no block at index 8", m.status)
	assert.Equal(t, components.MessageError, m.statusType)
}

func TestModel_SectionJumpKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(runes("]"))
	m.Update(runes("]"))
	pos, _ := m.list.Cursor()
	assert.Equal(t, 2, pos)
	assert.Equal(t, "H", m.list.SectionLabel())

	m.Update(runes("["))
	pos, _ = m.list.Cursor()
	assert.Equal(t, 1, pos)
}

func TestModel_Copy(t *testing.T) {
	original := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = original })

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(runes("y"))

	assert.Equal(t, "Gustavo Fring", copied)
	assert.Contains(t, m.status, `Copied "Gustavo Fring"`)
	assert.Equal(t, components.MessageSuccess, m.statusType)

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	m.Update(runes("y"))
	assert.Equal(t, "Copy failed: no clipboard", m.status)
	assert.Equal(t, components.MessageError, m.statusType)
}

func TestModel_SelectionMessages(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(listview.SelectedMsg{Position: 1, Item: "Gustavo Fring"})
	assert.Equal(t, `Selected "Gustavo Fring"`, m.status)

	m.Update(listview.RejectedMsg{Position: 0})
	assert.Equal(t, "Row 0 is not selectable", m.status)
	assert.Equal(t, components.MessageError, m.statusType)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_LogEntries(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	m := newTestModel(t, ch)

	cmd := m.Init()
	require.NotNil(t, cmd)

	entry := logging.LogEntry{
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:     logging.LevelInfo,
		Subsystem: "Screen",
		Message:   `Block "footer" active=true`,
	}
	ch <- entry
	msg := cmd()
	require.Equal(t, logEntryMsg{entry: entry}, msg)

	_, next := m.Update(msg)
	assert.NotNil(t, next, "listener re-arms")
	assert.Equal(t, entry.String(), m.lastLog)
	assert.Contains(t, m.View(), "Screen")

	close(ch)
	assert.Nil(t, listenForLogs(ch)())
	assert.Nil(t, listenForLogs(nil))
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	assert.Contains(t, out, "MergeList Sample")
	assert.Contains(t, out, "12 rows")
	assert.Contains(t, out, "Breaking Bad (Main Characters)")
	assert.Contains(t, out, "1:header")
	assert.Contains(t, out, "quit")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "§ G")
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(runes("h"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "next section")

	m.Update(runes("h"))
	assert.False(t, m.help.ShowAll)
}

func TestNewProgram(t *testing.T) {
	_, err := NewProgram(Config{})
	assert.Error(t, err)

	s, err := screen.Build(config.GetDefaultConfig().Screen)
	require.NoError(t, err)
	p, err := NewProgram(Config{Screen: s})
	require.NoError(t, err)
	assert.NotNil(t, p)
}
