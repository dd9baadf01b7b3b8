package loom

// Model is an observable, 0-indexed sequence of Values backing a UI
// collection property. The backing storage may live in host code or inside
// the engine; either way every mutation must be followed by exactly one
// matching notification on the model's ModelNotifier before any observer
// re-reads row data. An omitted or mismatched notification leaves observers
// stale; that is a programming error on the mutating side, not a condition
// the engine detects.
//
// Models are confined to the UI goroutine together with the instances that
// display them. Worker goroutines may prepare data, but must apply it via
// PostEvent.
type Model interface {
	// RowCount returns the current number of rows.
	RowCount() int

	// RowData returns a copy of the data of the given row, or false when
	// row is out of range.
	RowData(row int) (Value, bool)

	// SetRowData replaces the data of the given row. Implementations that
	// are read-only, and any call with an out-of-range row, silently do
	// nothing.
	SetRowData(row int, data Value)

	// ModelTracker returns the notifier paired with this model. The engine
	// attaches its observers here; mutating code reports changes here.
	ModelTracker() *ModelNotifier
}

// ModelObserver receives synchronous row-level change notifications from a
// Model. The rendering/reactivity engine attaches one per bound collection;
// hosts may attach their own.
type ModelObserver interface {
	// RowAdded signals that count rows were inserted starting at index.
	RowAdded(index, count int)
	// RowChanged signals that the row at index was replaced.
	RowChanged(index int)
	// RowRemoved signals that count rows were deleted starting at index.
	RowRemoved(index, count int)
	// Reset signals that previously observed indices are meaningless and
	// all rows must be re-read.
	Reset()
}

// ModelNotifier fans row-level change notifications out to the observers
// attached to a Model. Each Model is paired with exactly one notifier for
// its whole lifetime; the pair is jointly referenced by the host-side model
// and the engine and goes away when the last reference does.
//
// Delivery is synchronous and in attach order. The zero ModelNotifier is
// ready to use.
type ModelNotifier struct {
	observers []ModelObserver
}

// Attach registers an observer. Attaching the same observer twice delivers
// notifications twice.
func (n *ModelNotifier) Attach(o ModelObserver) {
	n.observers = append(n.observers, o)
}

// Detach removes a previously attached observer. Unknown observers are
// ignored.
func (n *ModelNotifier) Detach(o ModelObserver) {
	for i, existing := range n.observers {
		if existing == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// RowAdded notifies all observers that count rows were inserted at index.
func (n *ModelNotifier) RowAdded(index, count int) {
	for _, o := range n.observers {
		o.RowAdded(index, count)
	}
}

// RowChanged notifies all observers that the row at index changed.
func (n *ModelNotifier) RowChanged(index int) {
	for _, o := range n.observers {
		o.RowChanged(index)
	}
}

// RowRemoved notifies all observers that count rows were deleted at index.
func (n *ModelNotifier) RowRemoved(index, count int) {
	for _, o := range n.observers {
		o.RowRemoved(index, count)
	}
}

// Reset notifies all observers that all rows must be re-read.
func (n *ModelNotifier) Reset() {
	for _, o := range n.observers {
		o.Reset()
	}
}
