// Package rows provides terminal row views for merge providers.
package rows

import (
	"fmt"
	"strings"

	"mergelist/internal/tui/design"
	"mergelist/internal/tui/utils"
	"mergelist/pkg/merge"

	"github.com/charmbracelet/lipgloss"
)

// Kind selects how a Text row is styled.
type Kind int

const (
	KindItem Kind = iota
	KindHeader
	KindFooter
	KindSection
)

// Text is a single-line row. Its content is fitted to the render width before
// styling so every row lines up.
type Text struct {
	Text string
	Kind Kind
	// Icon, when set, is drawn before the text.
	Icon string
}

// NewText returns an item row.
func NewText(text string) *Text {
	return &Text{Text: text}
}

// NewHeader returns a header row.
func NewHeader(text string) *Text {
	return &Text{Text: text, Kind: KindHeader}
}

// NewFooter returns a footer row.
func NewFooter(text string) *Text {
	return &Text{Text: text, Kind: KindFooter}
}

// String returns the plain row text.
func (t *Text) String() string { return t.Text }

func (t *Text) Render(width int) string {
	content := t.Text
	if t.Icon != "" {
		content = design.SafeIcon(t.Icon) + content
	}
	return t.style().Render(utils.FitString(content, width))
}

func (t *Text) style() lipgloss.Style {
	switch t.Kind {
	case KindHeader:
		return design.HeaderRowStyle
	case KindFooter:
		return design.FooterRowStyle
	case KindSection:
		return design.SectionRowStyle
	default:
		return design.ListItemStyle
	}
}

// Separator is a horizontal rule row.
type Separator struct {
	Rune rune
}

// NewSeparator returns a rule drawn with '─'.
func NewSeparator() *Separator {
	return &Separator{Rune: '─'}
}

func (s *Separator) Render(width int) string {
	if width <= 0 {
		return ""
	}
	r := s.Rune
	if r == 0 {
		r = '─'
	}
	return design.SeparatorStyle.Render(strings.Repeat(string(r), width))
}

// TextBinder renders items as item rows through format, rebinding a recycled
// *Text instead of allocating when one is offered.
func TextBinder[T any](format func(T) string) merge.Binder[T] {
	if format == nil {
		format = func(item T) string { return fmt.Sprint(item) }
	}
	return func(item T, recycled merge.View, _ merge.Parent) merge.View {
		if t, ok := recycled.(*Text); ok && t.Kind == KindItem {
			t.Text = format(item)
			t.Icon = ""
			return t
		}
		return NewText(format(item))
	}
}

// Plain returns the unstyled text of a row view or item for clipboard and dump
// output.
func Plain(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case *Text:
		return x.Text
	case *Separator:
		return "---"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
