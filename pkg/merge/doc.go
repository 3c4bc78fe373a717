// Package merge composes several list providers into one contiguous list.
//
// A host list widget (a terminal list in this repository, but anything that can
// ask for a count and a row view works) binds to a single *Adapter. The adapter
// owns an ordered roster of providers, each of which can be switched on or off at
// runtime. Positions the host asks about are global: the adapter translates them
// to the provider that owns the row and to the row's position inside that
// provider.
//
// # Providers
//
// Anything implementing Provider can be registered:
//
//   - StaticProvider wraps a fixed set of pre-built views (headers, footers,
//     separators). Its rows are inert.
//   - EnabledStaticProvider is the same, but its rows are selectable.
//   - ArrayProvider and SectionedArrayProvider expose a slice of items through
//     a Binder that turns an item into a View.
//   - *Adapter itself is a Provider, so adapters nest.
//
// A provider that also implements SectionIndexer takes part in section
// navigation (fast-scroll letters, jump-to-group keys).
//
// # Position space
//
// Global positions are never stored. Every query walks the active providers in
// registration order, subtracting each provider's count until the owner is found:
//
//	providers:  [header:1] [names:11] [footer:1]
//	positions:   0          1..11      12
//
// Deactivating "header" shifts names to 0..10 and footer to 11. Reactivating it
// restores the original layout. Out-of-range positions never fail; they yield
// zero values (nil item, NoID, -1 view type, false).
//
// # View types
//
// Each registered provider owns a disjoint band of view-type integers, computed
// over all registered providers whether active or not. Toggling a provider
// therefore never renumbers the view types of the others, and ViewTypeCount never
// shrinks, which keeps a host's recycle pool consistent.
//
// # Change notification
//
// Providers report data changes through RegisterObserver. The adapter subscribes
// to every provider it registers and re-broadcasts Changed and Invalidated to its
// own observers synchronously. Activation toggles notify Changed.
//
// # Concurrency
//
// None of the types in this package are safe for concurrent use. They are meant
// to be driven from a single UI goroutine (for example a bubbletea Update loop).
package merge
