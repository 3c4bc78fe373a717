package merge

import (
	"mergelist/pkg/logging"

	"github.com/google/uuid"
)

const subsystem = "MergeAdapter"

// Adapter presents a roster of providers as one list. Providers are added
// inactive and contribute rows only once switched on with SetActive.
//
// Adapter implements Provider and SectionIndexer, so it can be bound directly to
// a host widget or registered inside another Adapter.
type Adapter struct {
	Notifier

	pieces       *registry
	unsubscribes []func()
}

// New returns an empty Adapter.
func New() *Adapter {
	return &Adapter{pieces: newRegistry()}
}

// ProviderState is a snapshot of one registered provider.
type ProviderState struct {
	ID            uuid.UUID
	Provider      Provider
	Active        bool
	Count         int
	ViewTypeCount int
}

// AddProvider registers p (inactive) and forwards its change notifications to
// the adapter's observers. It returns the registration ID.
func (a *Adapter) AddProvider(p Provider) uuid.UUID {
	id := a.pieces.add(p)
	a.unsubscribes = append(a.unsubscribes, p.RegisterObserver(func(kind ChangeKind) {
		a.notify(kind)
	}))
	logging.Debug(subsystem, "registered provider %s (%T, %d rows)", id, p, p.Count())
	return id
}

// AddView registers a single inert view.
func (a *Adapter) AddView(v View) Provider {
	return a.AddViewsEnabled([]View{v}, false)
}

// AddViewEnabled registers a single view, selectable when enabled is true.
func (a *Adapter) AddViewEnabled(v View, enabled bool) Provider {
	return a.AddViewsEnabled([]View{v}, enabled)
}

// AddViews registers views as one block of inert rows.
func (a *Adapter) AddViews(views []View) Provider {
	return a.AddViewsEnabled(views, false)
}

// AddViewsEnabled registers views as one block, selectable when enabled is true.
// The created provider is returned so callers can toggle it.
func (a *Adapter) AddViewsEnabled(views []View, enabled bool) Provider {
	var p Provider
	if enabled {
		p = NewEnabledStaticProvider(views...)
	} else {
		p = NewStaticProvider(views...)
	}
	a.AddProvider(p)
	return p
}

// SetActive switches provider p on or off and notifies observers.
func (a *Adapter) SetActive(p Provider, active bool) {
	if !a.pieces.setActive(p, active) {
		logging.Debug(subsystem, "SetActive: provider %T is not registered", p)
	}
	a.NotifyChanged()
}

// SetActiveView switches on or off the static provider holding v.
func (a *Adapter) SetActiveView(v View, active bool) {
	if !a.pieces.setActiveView(v, active) {
		logging.Debug(subsystem, "SetActiveView: no static provider holds %T", v)
	}
	a.NotifyChanged()
}

// SetActiveID switches on or off the provider registered under id.
func (a *Adapter) SetActiveID(id uuid.UUID, active bool) {
	if !a.pieces.setActiveID(id, active) {
		logging.Debug(subsystem, "SetActiveID: unknown provider %s", id)
	}
	a.NotifyChanged()
}

// IsActive reports whether p is registered and active.
func (a *Adapter) IsActive(p Provider) bool {
	for _, st := range a.pieces.raw() {
		if sameHandle(st.provider, p) {
			return st.active
		}
	}
	return false
}

// States returns a snapshot of every registered provider in display order.
func (a *Adapter) States() []ProviderState {
	raw := a.pieces.raw()
	out := make([]ProviderState, 0, len(raw))
	for _, st := range raw {
		out = append(out, ProviderState{
			ID:            st.id,
			Provider:      st.provider,
			Active:        st.active,
			Count:         st.provider.Count(),
			ViewTypeCount: st.provider.ViewTypeCount(),
		})
	}
	return out
}

// ActiveProviders returns the active providers in display order.
func (a *Adapter) ActiveProviders() []Provider {
	active := a.pieces.active()
	out := make([]Provider, len(active))
	copy(out, active)
	return out
}

// Close unsubscribes from every provider and drops the roster and observers.
// The adapter behaves as empty afterwards.
func (a *Adapter) Close() {
	for _, unsubscribe := range a.unsubscribes {
		unsubscribe()
	}
	a.unsubscribes = nil
	a.pieces = newRegistry()
	a.Notifier.reset()
}

// Locate returns the provider owning position and the position inside it.
func (a *Adapter) Locate(position int) (Provider, int, bool) {
	if position < 0 {
		return nil, -1, false
	}
	for _, piece := range a.pieces.active() {
		size := piece.Count()
		if position < size {
			return piece, position, true
		}
		position -= size
	}
	return nil, -1, false
}

// ProviderAt returns the provider owning position, or nil.
func (a *Adapter) ProviderAt(position int) Provider {
	p, _, _ := a.Locate(position)
	return p
}

// Count is the total number of rows across active providers.
func (a *Adapter) Count() int {
	total := 0
	for _, piece := range a.pieces.active() {
		total += piece.Count()
	}
	return total
}

// Item returns the owning provider's item, or nil when out of range.
func (a *Adapter) Item(position int) any {
	p, local, ok := a.Locate(position)
	if !ok {
		return nil
	}
	return p.Item(local)
}

// ItemID returns the owning provider's row id, or NoID when out of range.
func (a *Adapter) ItemID(position int) int64 {
	p, local, ok := a.Locate(position)
	if !ok {
		return NoID
	}
	return p.ItemID(local)
}

// IsEnabled returns the owning provider's enablement, false when out of range.
func (a *Adapter) IsEnabled(position int) bool {
	p, local, ok := a.Locate(position)
	if !ok {
		return false
	}
	return p.IsEnabled(local)
}

// AreAllItemsEnabled is always false: the children may disagree.
func (a *Adapter) AreAllItemsEnabled() bool { return false }

// View returns the owning provider's view, or nil when out of range. Whether
// recycled can be reused is up to the owning provider.
func (a *Adapter) View(position int, recycled View, parent Parent) View {
	p, local, ok := a.Locate(position)
	if !ok {
		return nil
	}
	return p.View(local, recycled, parent)
}

// ViewTypeCount sums the view types of every registered provider, active or
// not, and is at least 1.
func (a *Adapter) ViewTypeCount() int {
	total := 0
	for _, st := range a.pieces.raw() {
		total += st.provider.ViewTypeCount()
	}
	return max(total, 1)
}

// ItemViewType returns the view type at position, offset into the owning
// provider's band. Bands are assigned over all registered providers so they stay
// stable across toggles; only active providers own positions. It returns -1 when
// no provider owns position.
func (a *Adapter) ItemViewType(position int) int {
	if position < 0 {
		return -1
	}
	typeOffset := 0
	for _, st := range a.pieces.raw() {
		if st.active {
			size := st.provider.Count()
			if position < size {
				return typeOffset + st.provider.ItemViewType(position)
			}
			position -= size
		}
		typeOffset += st.provider.ViewTypeCount()
	}
	return -1
}

// PositionForSection returns the global position where section starts. Sections
// are numbered across active section-capable providers in order. It returns 0
// when no provider holds section.
func (a *Adapter) PositionForSection(section int) int {
	position := 0
	for _, piece := range a.pieces.active() {
		if indexer, ok := piece.(SectionIndexer); ok {
			numSections := len(indexer.Sections())
			if section < numSections {
				return position + indexer.PositionForSection(section)
			}
			section -= numSections
		}
		position += piece.Count()
	}
	return 0
}

// SectionForPosition returns the global section index of the row at position,
// or 0 when its provider has no sections or position is out of range.
func (a *Adapter) SectionForPosition(position int) int {
	if position < 0 {
		return 0
	}
	section := 0
	for _, piece := range a.pieces.active() {
		size := piece.Count()
		indexer, isIndexer := piece.(SectionIndexer)
		if position < size {
			if isIndexer {
				return section + indexer.SectionForPosition(position)
			}
			return 0
		}
		if isIndexer {
			section += len(indexer.Sections())
		}
		position -= size
	}
	return 0
}

// Sections concatenates the sections of active section-capable providers. The
// result is never nil.
func (a *Adapter) Sections() []string {
	sections := []string{}
	for _, piece := range a.pieces.active() {
		if indexer, ok := piece.(SectionIndexer); ok {
			sections = append(sections, indexer.Sections()...)
		}
	}
	return sections
}
