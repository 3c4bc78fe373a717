package merge

import "github.com/google/uuid"

// pieceState pairs a registered provider with its activation flag.
type pieceState struct {
	id       uuid.UUID
	provider Provider
	active   bool
}

// viewHolder is implemented by providers that wrap concrete views.
type viewHolder interface {
	HasView(v View) bool
}

// registry is the ordered roster of providers. The active subsequence is cached
// and rebuilt lazily after any activation change.
type registry struct {
	pieces     []*pieceState
	activeList []Provider
	stale      bool
}

func newRegistry() *registry {
	return &registry{stale: true}
}

// add appends p as an inactive piece.
func (r *registry) add(p Provider) uuid.UUID {
	st := &pieceState{id: uuid.New(), provider: p}
	r.pieces = append(r.pieces, st)
	return st.id
}

// setActive flips the piece whose provider is p. It reports whether p was found.
func (r *registry) setActive(p Provider, active bool) bool {
	for _, st := range r.pieces {
		if sameHandle(st.provider, p) {
			r.mark(st, active)
			return true
		}
	}
	return false
}

// setActiveView flips the first static piece holding v.
func (r *registry) setActiveView(v View, active bool) bool {
	if v == nil {
		return false
	}
	for _, st := range r.pieces {
		if h, ok := st.provider.(viewHolder); ok && h.HasView(v) {
			r.mark(st, active)
			return true
		}
	}
	return false
}

// setActiveID flips the piece registered under id.
func (r *registry) setActiveID(id uuid.UUID, active bool) bool {
	for _, st := range r.pieces {
		if st.id == id {
			r.mark(st, active)
			return true
		}
	}
	return false
}

func (r *registry) mark(st *pieceState, active bool) {
	st.active = active
	r.stale = true
}

// active returns the active providers in registration order.
func (r *registry) active() []Provider {
	if r.stale {
		list := make([]Provider, 0, len(r.pieces))
		for _, st := range r.pieces {
			if st.active {
				list = append(list, st.provider)
			}
		}
		r.activeList = list
		r.stale = false
	}
	return r.activeList
}

// raw returns every piece, active or not.
func (r *registry) raw() []*pieceState {
	return r.pieces
}
