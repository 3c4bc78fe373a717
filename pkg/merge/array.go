package merge

// Binder turns an item into a row view. recycled is a view previously returned
// for the same view type, or nil; binders should rebind and return it when they
// can instead of allocating a new one.
type Binder[T any] func(item T, recycled View, parent Parent) View

// ArrayProvider serves a slice of items through a Binder. All rows share one view
// type and are selectable. Mutators notify observers.
type ArrayProvider[T any] struct {
	Notifier

	items []T
	bind  Binder[T]
}

// NewArrayProvider copies items and renders them with bind.
func NewArrayProvider[T any](bind Binder[T], items ...T) *ArrayProvider[T] {
	p := &ArrayProvider[T]{bind: bind}
	p.items = append(p.items, items...)
	return p
}

func (p *ArrayProvider[T]) Count() int { return len(p.items) }

// Item returns the item at position, or nil when position is out of range.
func (p *ArrayProvider[T]) Item(position int) any {
	item, ok := p.ItemAt(position)
	if !ok {
		return nil
	}
	return item
}

// ItemAt is the typed form of Item.
func (p *ArrayProvider[T]) ItemAt(position int) (T, bool) {
	var zero T
	if position < 0 || position >= len(p.items) {
		return zero, false
	}
	return p.items[position], true
}

// Items returns a copy of the backing items.
func (p *ArrayProvider[T]) Items() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

func (p *ArrayProvider[T]) ItemID(position int) int64 { return int64(position) }

func (p *ArrayProvider[T]) ItemViewType(int) int { return 0 }

func (p *ArrayProvider[T]) ViewTypeCount() int { return 1 }

func (p *ArrayProvider[T]) IsEnabled(int) bool { return true }

func (p *ArrayProvider[T]) AreAllItemsEnabled() bool { return true }

func (p *ArrayProvider[T]) View(position int, recycled View, parent Parent) View {
	item, ok := p.ItemAt(position)
	if !ok || p.bind == nil {
		return nil
	}
	return p.bind(item, recycled, parent)
}

// Set replaces all items.
func (p *ArrayProvider[T]) Set(items []T) {
	p.items = append(p.items[:0:0], items...)
	p.NotifyChanged()
}

// Append adds items at the end.
func (p *ArrayProvider[T]) Append(items ...T) {
	p.items = append(p.items, items...)
	p.NotifyChanged()
}

// Clear removes all items.
func (p *ArrayProvider[T]) Clear() {
	p.items = nil
	p.NotifyChanged()
}

// Invalidate tells observers the current rows must not be reused.
func (p *ArrayProvider[T]) Invalidate() {
	p.NotifyInvalidated()
}
