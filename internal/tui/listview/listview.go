// Package listview binds a merge.Adapter to a bubbles list.
//
// The bubbles list only renders the rows on the visible page, so rows are
// materialized lazily through the adapter as the user scrolls. Each list item
// is just a global position; everything else is asked of the adapter at render
// time.
package listview

import (
	"fmt"
	"io"

	"mergelist/internal/tui/design"
	"mergelist/pkg/logging"
	"mergelist/pkg/merge"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const subsystem = "ListView"

// row is a list item standing for one global position.
type row struct {
	pos int
}

func (r row) FilterValue() string { return "" }

// SelectedMsg is emitted when enter is pressed on a selectable row.
type SelectedMsg struct {
	Position int
	Item     any
}

// RejectedMsg is emitted when enter is pressed on a row that is not selectable.
type RejectedMsg struct {
	Position int
}

// recyclePool keeps the last view handed out per view type so the next row of
// that type can rebind it.
type recyclePool struct {
	views []merge.View
}

func (p *recyclePool) resize(n int) {
	if n == len(p.views) {
		return
	}
	views := make([]merge.View, n)
	copy(views, p.views)
	p.views = views
}

func (p *recyclePool) get(viewType int) merge.View {
	if viewType < 0 || viewType >= len(p.views) {
		return nil
	}
	return p.views[viewType]
}

func (p *recyclePool) put(viewType int, v merge.View) {
	if viewType < 0 || viewType >= len(p.views) {
		return
	}
	p.views[viewType] = v
}

func (p *recyclePool) reset() {
	clear(p.views)
}

// rowDelegate renders rows by asking the adapter for their views.
type rowDelegate struct {
	adapter *merge.Adapter
	pool    *recyclePool
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	r, ok := listItem.(row)
	if !ok {
		return
	}

	cursor := design.SafeIcon(design.IconCursor)
	gutter := lipgloss.Width(cursor)
	width := max(m.Width()-gutter, 1)

	viewType := d.adapter.ItemViewType(r.pos)
	v := d.adapter.View(r.pos, d.pool.get(viewType), merge.Parent{Width: width, Height: d.Height()})
	if v == nil {
		return
	}
	d.pool.put(viewType, v)

	line := v.Render(width)
	switch {
	case index == m.Index():
		line = design.ListItemSelectedStyle.Render(cursor) + line
	case !d.adapter.IsEnabled(r.pos):
		line = fmt.Sprintf("%*s", gutter, "") + design.ListItemDisabledStyle.Render(line)
	default:
		line = fmt.Sprintf("%*s", gutter, "") + line
	}
	fmt.Fprint(w, line)
}

// Model is the host list widget for a merge.Adapter.
type Model struct {
	List list.Model

	adapter     *merge.Adapter
	pool        *recyclePool
	dirty       bool
	invalidated bool
	unregister  func()
}

// New creates a list over adapter and subscribes to its change notifications.
func New(adapter *merge.Adapter, title string, width, height int) *Model {
	m := &Model{
		adapter: adapter,
		pool:    &recyclePool{},
	}
	m.pool.resize(adapter.ViewTypeCount())

	l := list.New(m.items(), rowDelegate{adapter: adapter, pool: m.pool}, max(width, design.MinListWidth), max(height, design.MinListHeight))
	l.Title = title
	l.SetShowTitle(title != "")
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = design.TitleStyle
	m.List = l

	m.unregister = adapter.RegisterObserver(func(kind merge.ChangeKind) {
		m.dirty = true
		if kind == merge.Invalidated {
			m.invalidated = true
		}
	})
	return m
}

func (m *Model) items() []list.Item {
	n := m.adapter.Count()
	items := make([]list.Item, n)
	for i := range items {
		items[i] = row{pos: i}
	}
	return items
}

// Dirty reports whether the adapter changed since the last Sync.
func (m *Model) Dirty() bool { return m.dirty }

// Sync re-queries the adapter if it reported a change. On invalidation the
// recycle pool is emptied as well.
func (m *Model) Sync() tea.Cmd {
	if !m.dirty {
		return nil
	}
	if m.invalidated {
		m.pool.reset()
	}
	m.pool.resize(m.adapter.ViewTypeCount())
	m.dirty = false
	m.invalidated = false

	index := m.List.Index()
	cmd := m.List.SetItems(m.items())
	if n := len(m.List.Items()); n > 0 {
		m.List.Select(min(index, n-1))
	}
	logging.Debug(subsystem, "Re-queried adapter: %d rows, %d view types", m.adapter.Count(), m.adapter.ViewTypeCount())
	return cmd
}

// Update forwards navigation to the list and turns enter into a selection.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		return m, m.selectCurrent()
	}
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m *Model) selectCurrent() tea.Cmd {
	pos, ok := m.Cursor()
	if !ok {
		return nil
	}
	if !m.adapter.IsEnabled(pos) {
		return func() tea.Msg { return RejectedMsg{Position: pos} }
	}
	item := m.adapter.Item(pos)
	return func() tea.Msg { return SelectedMsg{Position: pos, Item: item} }
}

// View renders the list.
func (m *Model) View() string {
	return m.List.View()
}

// SetSize updates the list dimensions
func (m *Model) SetSize(width, height int) {
	m.List.SetSize(max(width, design.MinListWidth), max(height, design.MinListHeight))
}

// Cursor returns the global position under the cursor.
func (m *Model) Cursor() (int, bool) {
	r, ok := m.List.SelectedItem().(row)
	if !ok {
		return -1, false
	}
	return r.pos, true
}

// Select moves the cursor to a global position.
func (m *Model) Select(pos int) {
	if pos < 0 || pos >= len(m.List.Items()) {
		return
	}
	m.List.Select(pos)
}

// SectionLabel returns the section of the row under the cursor, or "" when its
// provider has no sections.
func (m *Model) SectionLabel() string {
	pos, ok := m.Cursor()
	if !ok {
		return ""
	}
	if _, indexed := m.adapter.ProviderAt(pos).(merge.SectionIndexer); !indexed {
		return ""
	}
	sections := m.adapter.Sections()
	s := m.adapter.SectionForPosition(pos)
	if s < 0 || s >= len(sections) {
		return ""
	}
	return sections[s]
}

// JumpSection moves the cursor to the start of the next section (delta > 0) or
// the previous one (delta < 0), once per unit of delta. Section starts are
// compared with the cursor position, so rows outside any section jump to the
// nearest section in that direction.
func (m *Model) JumpSection(delta int) {
	pos, ok := m.Cursor()
	if !ok {
		return
	}
	sections := len(m.adapter.Sections())
	for ; delta > 0; delta-- {
		for s := 0; s < sections; s++ {
			if start := m.adapter.PositionForSection(s); start > pos {
				pos = start
				break
			}
		}
	}
	for ; delta < 0; delta++ {
		for s := sections - 1; s >= 0; s-- {
			if start := m.adapter.PositionForSection(s); start < pos {
				pos = start
				break
			}
		}
	}
	m.Select(pos)
}

// Close stops listening to the adapter.
func (m *Model) Close() {
	if m.unregister != nil {
		m.unregister()
		m.unregister = nil
	}
}
