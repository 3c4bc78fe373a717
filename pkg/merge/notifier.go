package merge

// Notifier keeps a set of observers and fans notifications out to them. The zero
// value is ready to use; embed it to get RegisterObserver for free.
type Notifier struct {
	observers []registeredObserver
	nextID    int
}

type registeredObserver struct {
	id int
	fn Observer
}

// RegisterObserver subscribes o. The returned function removes it again and is
// safe to call more than once.
func (n *Notifier) RegisterObserver(o Observer) func() {
	if o == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.observers = append(n.observers, registeredObserver{id: id, fn: o})

	return func() {
		for i, ro := range n.observers {
			if ro.id == id {
				n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
				return
			}
		}
	}
}

// NotifyChanged tells every observer the data changed.
func (n *Notifier) NotifyChanged() {
	n.notify(Changed)
}

// NotifyInvalidated tells every observer the data is no longer valid.
func (n *Notifier) NotifyInvalidated() {
	n.notify(Invalidated)
}

// ObserverCount returns the number of subscribed observers.
func (n *Notifier) ObserverCount() int {
	return len(n.observers)
}

func (n *Notifier) notify(kind ChangeKind) {
	// Observers may unsubscribe while being notified.
	snapshot := make([]registeredObserver, len(n.observers))
	copy(snapshot, n.observers)
	for _, ro := range snapshot {
		ro.fn(kind)
	}
}

func (n *Notifier) reset() {
	n.observers = nil
}
