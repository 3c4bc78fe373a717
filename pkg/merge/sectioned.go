package merge

// SectionFunc returns the section label an item belongs to.
type SectionFunc[T any] func(item T) string

// SectionedArrayProvider is an ArrayProvider that groups consecutive items with
// the same label into sections. Items are expected to be sorted by label; a label
// that reappears later starts a new section.
type SectionedArrayProvider[T any] struct {
	*ArrayProvider[T]

	label SectionFunc[T]
}

// NewSectionedArrayProvider creates a sectioned provider over items.
func NewSectionedArrayProvider[T any](bind Binder[T], label SectionFunc[T], items ...T) *SectionedArrayProvider[T] {
	return &SectionedArrayProvider[T]{
		ArrayProvider: NewArrayProvider(bind, items...),
		label:         label,
	}
}

// index returns the section labels and the position each section starts at.
func (p *SectionedArrayProvider[T]) index() ([]string, []int) {
	var labels []string
	var starts []int
	for i, item := range p.items {
		l := p.label(item)
		if len(labels) == 0 || labels[len(labels)-1] != l {
			labels = append(labels, l)
			starts = append(starts, i)
		}
	}
	return labels, starts
}

// Sections returns the section labels in order. It is never nil.
func (p *SectionedArrayProvider[T]) Sections() []string {
	labels, _ := p.index()
	if labels == nil {
		return []string{}
	}
	return labels
}

// PositionForSection returns the first position of section, clamped to the
// valid section range.
func (p *SectionedArrayProvider[T]) PositionForSection(section int) int {
	_, starts := p.index()
	if len(starts) == 0 {
		return 0
	}
	switch {
	case section < 0:
		section = 0
	case section >= len(starts):
		section = len(starts) - 1
	}
	return starts[section]
}

// SectionForPosition returns the section containing position, clamped to the
// first and last section.
func (p *SectionedArrayProvider[T]) SectionForPosition(position int) int {
	_, starts := p.index()
	section := 0
	for i, start := range starts {
		if start > position {
			break
		}
		section = i
	}
	return section
}
