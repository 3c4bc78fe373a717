package tui

import (
	"fmt"
	"strings"

	"mergelist/internal/rows"
	"mergelist/internal/screen"
	"mergelist/internal/tui/components"
	"mergelist/internal/tui/design"
	"mergelist/internal/tui/listview"
	"mergelist/internal/tui/utils"
	"mergelist/pkg/logging"
	"mergelist/pkg/merge"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	subsystem = "TUI"

	defaultWidth  = 80
	defaultHeight = 24

	// header, status bar and footer line
	chromeHeight = 3
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

// Config holds everything the TUI needs to start.
type Config struct {
	Screen     *screen.Screen
	DarkMode   bool
	DebugMode  bool
	LogChannel <-chan logging.LogEntry
}

// logEntryMsg carries one entry from the logging channel.
type logEntryMsg struct {
	entry logging.LogEntry
}

// Model is the top-level Bubble Tea model.
type Model struct {
	screen *screen.Screen
	list   *listview.Model
	keys   KeyMap
	help   help.Model

	width    int
	height   int
	darkMode bool
	debug    bool
	quitting bool

	status     string
	statusType components.MessageType
	lastLog    string
	logChannel <-chan logging.LogEntry
}

// NewModel creates the model for cfg.Screen.
func NewModel(cfg Config) *Model {
	return &Model{
		screen:     cfg.Screen,
		list:       listview.New(cfg.Screen.Adapter, "", defaultWidth, defaultHeight-chromeHeight),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      defaultWidth,
		height:     defaultHeight,
		darkMode:   cfg.DarkMode,
		debug:      cfg.DebugMode,
		logChannel: cfg.LogChannel,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return listenForLogs(m.logChannel)
}

// listenForLogs waits for the next log entry. It returns nil once the channel
// is closed so the listener stops re-arming.
func listenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, msg.Height-m.chrome())

	case logEntryMsg:
		m.lastLog = msg.entry.String()
		cmds = append(cmds, listenForLogs(m.logChannel))

	case listview.SelectedMsg:
		m.setStatus(fmt.Sprintf("Selected %q", rows.Plain(msg.Item)), components.MessageInfo)
		logging.Debug(subsystem, "Selected row %d", msg.Position)

	case listview.RejectedMsg:
		m.setStatus(fmt.Sprintf("Row %d is not selectable", msg.Position), components.MessageError)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.quitting {
		cmds = append(cmds, m.list.Sync())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) chrome() int {
	if m.debug {
		return chromeHeight + 1
	}
	return chromeHeight
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.list.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.NextSection):
		m.list.JumpSection(1)

	case key.Matches(msg, m.keys.PrevSection):
		m.list.JumpSection(-1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggleBlock(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Copy):
		m.copyCurrent()

	case key.Matches(msg, m.keys.ToggleDark):
		m.darkMode = !m.darkMode
		design.Initialize(m.darkMode)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) toggleBlock(n int) {
	name, active, err := m.screen.ToggleIndex(n)
	if err != nil {
		m.setStatus(err.Error(), components.MessageError)
		return
	}
	state := "hidden"
	if active {
		state = "shown"
	}
	m.setStatus(fmt.Sprintf("Block %q %s", name, state), components.MessageInfo)
}

func (m *Model) copyCurrent() {
	pos, ok := m.list.Cursor()
	if !ok {
		return
	}
	text := rows.Plain(m.screen.Adapter.View(pos, nil, merge.Parent{Width: m.width, Height: 1}))
	if err := clipboardWriteAll(text); err != nil {
		logging.Error(subsystem, err, "Failed to copy row %d", pos)
		m.setStatus("Copy failed: "+err.Error(), components.MessageError)
		return
	}
	m.setStatus(fmt.Sprintf("%s Copied %q", design.SafeIcon(design.IconClipboard), text), components.MessageSuccess)
}

func (m *Model) setStatus(text string, kind components.MessageType) {
	m.status = text
	m.statusType = kind
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := components.NewHeader(m.screen.Title).
		WithRightContent(fmt.Sprintf("%d rows", m.screen.Adapter.Count())).
		WithWidth(m.width).
		Render()

	right := ""
	if section := m.list.SectionLabel(); section != "" {
		right = design.IconSection + " " + section
	}
	statusBar := components.NewStatusBar(m.width).
		WithLeftText(components.FormatBlocks(m.screen.Names(), m.screen.IsActive)).
		WithRightText(right).
		WithMessage(m.status, m.statusType).
		Render()

	parts := []string{header, m.list.View(), statusBar}
	switch {
	case m.help.ShowAll:
		parts = append(parts, m.help.View(m.keys))
	case m.lastLog != "":
		parts = append(parts, design.DimStyle.Render(utils.TruncateString(m.lastLog, m.width)))
	default:
		parts = append(parts, m.help.View(m.keys))
	}
	if m.debug {
		parts = append(parts, design.DimStyle.Render(m.debugLine()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) debugLine() string {
	var b strings.Builder
	pos, _ := m.list.Cursor()
	fmt.Fprintf(&b, "pos=%d", pos)
	if p, local, ok := m.screen.Adapter.Locate(pos); ok {
		fmt.Fprintf(&b, " block=%s local=%d type=%d id=%d",
			m.screen.NameOf(p), local, m.screen.Adapter.ItemViewType(pos), m.screen.Adapter.ItemID(pos))
	}
	fmt.Fprintf(&b, " types=%d dropped-logs=%d", m.screen.Adapter.ViewTypeCount(), logging.Dropped())
	return b.String()
}
