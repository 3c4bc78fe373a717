package merge

import "fmt"

// MaterializeFunc builds the view for an empty slot of a StaticProvider.
type MaterializeFunc func(position int, parent Parent) View

// StaticProvider serves a fixed list of views, one row each. Slots may start
// empty and are filled once, on first request, by the materializer.
//
// Every slot is its own view type, and rows are not selectable.
type StaticProvider struct {
	Notifier

	views       []View
	materialize MaterializeFunc
}

// NewStaticProvider wraps views. Nil entries are allowed if a materializer is set
// with WithMaterializer before the slot is requested.
func NewStaticProvider(views ...View) *StaticProvider {
	slots := make([]View, len(views))
	copy(slots, views)
	return &StaticProvider{views: slots}
}

// NewStaticProviderCount creates count empty slots filled on demand by materialize.
func NewStaticProviderCount(count int, materialize MaterializeFunc) *StaticProvider {
	if count < 0 {
		count = 0
	}
	return &StaticProvider{
		views:       make([]View, count),
		materialize: materialize,
	}
}

// WithMaterializer sets the function used to fill empty slots.
func (p *StaticProvider) WithMaterializer(fn MaterializeFunc) *StaticProvider {
	p.materialize = fn
	return p
}

func (p *StaticProvider) Count() int { return len(p.views) }

// Item returns the view in slot position, nil while the slot is still empty.
func (p *StaticProvider) Item(position int) any {
	v := p.views[position]
	if v == nil {
		return nil
	}
	return v
}

func (p *StaticProvider) ItemID(position int) int64 { return int64(position) }

func (p *StaticProvider) ItemViewType(position int) int { return position }

func (p *StaticProvider) ViewTypeCount() int { return len(p.views) }

func (p *StaticProvider) IsEnabled(position int) bool { return false }

func (p *StaticProvider) AreAllItemsEnabled() bool { return false }

// View returns the view in slot position, materializing it the first time. The
// recycled hint is ignored: every slot has its own view. It panics with an error
// wrapping ErrNoMaterializer when the slot is empty and no materializer is set.
func (p *StaticProvider) View(position int, _ View, parent Parent) View {
	v := p.views[position]
	if v != nil {
		return v
	}
	if p.materialize == nil {
		panic(fmt.Errorf("slot %d of %d: %w", position, len(p.views), ErrNoMaterializer))
	}
	v = p.materialize(position, parent)
	p.views[position] = v
	return v
}

// HasView reports whether v is one of this provider's views.
func (p *StaticProvider) HasView(v View) bool {
	for _, held := range p.views {
		if held != nil && sameHandle(held, v) {
			return true
		}
	}
	return false
}

// EnabledStaticProvider is a StaticProvider whose rows are selectable.
type EnabledStaticProvider struct {
	*StaticProvider
}

// NewEnabledStaticProvider wraps views as selectable rows.
func NewEnabledStaticProvider(views ...View) *EnabledStaticProvider {
	return &EnabledStaticProvider{StaticProvider: NewStaticProvider(views...)}
}

// NewEnabledStaticProviderCount creates count selectable slots filled on demand.
func NewEnabledStaticProviderCount(count int, materialize MaterializeFunc) *EnabledStaticProvider {
	return &EnabledStaticProvider{StaticProvider: NewStaticProviderCount(count, materialize)}
}

func (p *EnabledStaticProvider) IsEnabled(position int) bool { return true }

func (p *EnabledStaticProvider) AreAllItemsEnabled() bool { return true }
