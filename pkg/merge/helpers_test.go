package merge

import "fmt"

// textView is a minimal View for tests.
type textView struct {
	text  string
	binds int
}

func (v *textView) Render(width int) string { return v.text }

func newTextView(text string) *textView { return &textView{text: text} }

// bindText renders strings into textViews, reusing the recycled one when possible.
func bindText(item string, recycled View, _ Parent) View {
	if tv, ok := recycled.(*textView); ok {
		tv.text = item
		tv.binds++
		return tv
	}
	return &textView{text: item, binds: 1}
}

var characterNames = []string{
	"Walter White", "Skyler White", "Jesse Pinkman", "Hank Schrader", "Marie Schrader",
	"Walter White Jr.", "Saul Goodman", "Gustavo Fring", "Mike Ehrmantraut", "Lydia Rodarte-Quayle",
	"Todd Alquist",
}

func firstLetter(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

// changeRecorder records notifications in arrival order.
type changeRecorder struct {
	kinds []ChangeKind
}

func (r *changeRecorder) observe(kind ChangeKind) { r.kinds = append(r.kinds, kind) }

// countingProvider is a section-less provider with fixed rows and configurable
// view types, used to exercise the offset walk.
type countingProvider struct {
	Notifier
	name      string
	rows      int
	viewTypes int
	enabled   bool
}

func (p *countingProvider) Count() int                { return p.rows }
func (p *countingProvider) Item(position int) any     { return fmt.Sprintf("%s-%d", p.name, position) }
func (p *countingProvider) ItemID(position int) int64 { return int64(100 + position) }
func (p *countingProvider) ItemViewType(position int) int {
	return position % p.viewTypes
}
func (p *countingProvider) ViewTypeCount() int           { return p.viewTypes }
func (p *countingProvider) IsEnabled(int) bool           { return p.enabled }
func (p *countingProvider) AreAllItemsEnabled() bool     { return p.enabled }
func (p *countingProvider) View(position int, _ View, _ Parent) View {
	return newTextView(fmt.Sprintf("%s-%d", p.name, position))
}

// fixedSections is a section-capable provider with explicit section labels
// where each section is sectionSize rows long.
type fixedSections struct {
	countingProvider
	labels      []string
	sectionSize int
}

func (p *fixedSections) Sections() []string { return p.labels }
func (p *fixedSections) PositionForSection(section int) int {
	return section * p.sectionSize
}
func (p *fixedSections) SectionForPosition(position int) int {
	return position / p.sectionSize
}

func newFixedSections(name string, labels []string, sectionSize int) *fixedSections {
	return &fixedSections{
		countingProvider: countingProvider{name: name, rows: len(labels) * sectionSize, viewTypes: 1, enabled: true},
		labels:           labels,
		sectionSize:      sectionSize,
	}
}
