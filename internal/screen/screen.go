// Package screen turns a configured screen into a merge.Adapter and keeps track
// of which provider came from which block.
package screen

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"mergelist/internal/config"
	"mergelist/internal/rows"
	"mergelist/pkg/logging"
	"mergelist/pkg/merge"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const subsystem = "Screen"

// Block is a built block: its name and the provider serving it.
type Block struct {
	Name     string
	Type     config.BlockType
	Provider merge.Provider
}

// Screen owns the adapter for one configured screen.
type Screen struct {
	Title   string
	Adapter *merge.Adapter

	blocks []Block
	byName map[string]int
}

// Build creates providers for every block of cfg in order, registers them and
// applies their initial activation state.
func Build(cfg config.Screen) (*Screen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build screen: %w", err)
	}

	s := &Screen{
		Title:   cfg.Title,
		Adapter: merge.New(),
		byName:  make(map[string]int, len(cfg.Blocks)),
	}

	for _, b := range cfg.Blocks {
		p := newProvider(b)
		s.Adapter.AddProvider(p)
		s.byName[b.Name] = len(s.blocks)
		s.blocks = append(s.blocks, Block{Name: b.Name, Type: b.Type, Provider: p})
		if b.IsActive() {
			s.Adapter.SetActive(p, true)
		}
		logging.Debug(subsystem, "Built block %q (%s, %d rows, active=%t)", b.Name, b.Type, p.Count(), b.IsActive())
	}

	return s, nil
}

func newProvider(b config.Block) merge.Provider {
	switch b.Type {
	case config.BlockTypeHeader, config.BlockTypeFooter:
		views := make([]merge.View, 0, len(b.Lines))
		for _, line := range b.Lines {
			if b.Type == config.BlockTypeHeader {
				views = append(views, rows.NewHeader(line))
			} else {
				views = append(views, rows.NewFooter(line))
			}
		}
		if b.Selectable {
			return merge.NewEnabledStaticProvider(views...)
		}
		return merge.NewStaticProvider(views...)

	case config.BlockTypeSeparator:
		return merge.NewStaticProviderCount(1, func(int, merge.Parent) merge.View {
			return rows.NewSeparator()
		})

	default:
		items := slices.Clone(b.Items)
		if b.Sorted {
			collate.New(language.English, collate.IgnoreCase).SortStrings(items)
		}
		bind := rows.TextBinder(func(s string) string { return s })
		if b.Sectioned {
			return merge.NewSectionedArrayProvider(bind, SectionLabel, items...)
		}
		return merge.NewArrayProvider(bind, items...)
	}
}

// SectionLabel groups items by their upper-cased first letter.
func SectionLabel(item string) string {
	r, size := utf8.DecodeRuneInString(item)
	if size == 0 || r == utf8.RuneError {
		return "#"
	}
	return cases.Upper(language.Und).String(string(r))
}

// Blocks returns the built blocks in display order.
func (s *Screen) Blocks() []Block {
	return slices.Clone(s.blocks)
}

// Names returns the block names in display order.
func (s *Screen) Names() []string {
	names := make([]string, len(s.blocks))
	for i, b := range s.blocks {
		names[i] = b.Name
	}
	return names
}

// Lookup returns the block called name.
func (s *Screen) Lookup(name string) (Block, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Block{}, false
	}
	return s.blocks[i], true
}

// NameOf returns the block name serving p, or "" when p is not one of ours.
func (s *Screen) NameOf(p merge.Provider) string {
	for _, b := range s.blocks {
		if b.Provider == p {
			return b.Name
		}
	}
	return ""
}

// SetActive switches the named block on or off.
func (s *Screen) SetActive(name string, active bool) error {
	b, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown block %q", name)
	}
	s.Adapter.SetActive(b.Provider, active)
	logging.Info(subsystem, "Block %q active=%t", name, active)
	return nil
}

// Toggle flips the named block and returns its new state.
func (s *Screen) Toggle(name string) (bool, error) {
	b, ok := s.Lookup(name)
	if !ok {
		return false, fmt.Errorf("unknown block %q", name)
	}
	active := !s.Adapter.IsActive(b.Provider)
	return active, s.SetActive(name, active)
}

// ToggleIndex flips the n-th block (0-based).
func (s *Screen) ToggleIndex(n int) (string, bool, error) {
	if n < 0 || n >= len(s.blocks) {
		return "", false, fmt.Errorf("no block at index %d", n)
	}
	name := s.blocks[n].Name
	active, err := s.Toggle(name)
	return name, active, err
}

// IsActive reports whether the named block is active.
func (s *Screen) IsActive(name string) bool {
	b, ok := s.Lookup(name)
	return ok && s.Adapter.IsActive(b.Provider)
}

// Row is one resolved global position, used for dumps and tests.
type Row struct {
	Position int    `json:"position" yaml:"position"`
	Block    string `json:"block" yaml:"block"`
	Local    int    `json:"local" yaml:"local"`
	ViewType int    `json:"viewType" yaml:"viewType"`
	ID       int64  `json:"id" yaml:"id"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Text     string `json:"text" yaml:"text"`
}

// Rows resolves every global position of the adapter.
func (s *Screen) Rows(parent merge.Parent) []Row {
	out := make([]Row, 0, s.Adapter.Count())
	for pos := 0; pos < s.Adapter.Count(); pos++ {
		p, local, _ := s.Adapter.Locate(pos)
		out = append(out, Row{
			Position: pos,
			Block:    s.NameOf(p),
			Local:    local,
			ViewType: s.Adapter.ItemViewType(pos),
			ID:       s.Adapter.ItemID(pos),
			Enabled:  s.Adapter.IsEnabled(pos),
			Text:     rows.Plain(s.Adapter.View(pos, nil, parent)),
		})
	}
	return out
}
