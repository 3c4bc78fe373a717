package merge

import (
	"errors"
	"reflect"
)

// NoID is the row id reported for positions no provider owns.
const NoID int64 = -1

// ErrNoMaterializer is the panic value (wrapped) raised when a static provider is
// asked for an empty slot and has no way to build a view for it.
var ErrNoMaterializer = errors.New("static provider has no materializer for an empty slot")

// View is a renderable row. Implementations must be pointer types: views are
// matched by identity, never by value.
type View interface {
	Render(width int) string
}

// Parent describes the container a view is built for.
type Parent struct {
	Width  int
	Height int
}

// ChangeKind distinguishes the two data-set notifications.
type ChangeKind int

const (
	// Changed means the data changed; hosts re-query counts and rows.
	Changed ChangeKind = iota
	// Invalidated means the data is no longer valid; hosts also drop cached views.
	Invalidated
)

// String makes ChangeKind satisfy fmt.Stringer.
func (k ChangeKind) String() string {
	switch k {
	case Changed:
		return "changed"
	case Invalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Observer receives change notifications.
type Observer func(kind ChangeKind)

// Provider is the capability contract between a list host and a source of rows.
// Positions are local to the provider and valid in [0, Count()).
type Provider interface {
	Count() int
	Item(position int) any
	ItemID(position int) int64
	ItemViewType(position int) int
	ViewTypeCount() int
	View(position int, recycled View, parent Parent) View
	IsEnabled(position int) bool
	AreAllItemsEnabled() bool
	// RegisterObserver subscribes o and returns a function that unsubscribes it.
	RegisterObserver(o Observer) func()
}

// SectionIndexer is the optional section capability of a Provider.
type SectionIndexer interface {
	Sections() []string
	PositionForSection(section int) int
	SectionForPosition(position int) int
}

// sameHandle reports whether a and b are the same handle. Handles whose dynamic
// type cannot be compared are never equal to anything.
func sameHandle(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}
