package loom

// VecModel is the slice-backed Model provided by the engine. Every mutating
// method emits the matching notification itself, so hosts that go through
// this API never violate the change protocol.
type VecModel struct {
	rows     []Value
	notifier ModelNotifier
}

var _ Model = (*VecModel)(nil)

// NewVecModel returns a VecModel seeded with deep copies of rows.
func NewVecModel(rows ...Value) *VecModel {
	m := &VecModel{rows: make([]Value, 0, len(rows))}
	for _, v := range rows {
		m.rows = append(m.rows, v.Clone())
	}
	return m
}

// RowCount returns the number of rows.
func (m *VecModel) RowCount() int {
	return len(m.rows)
}

// RowData returns a copy of the row at the given index, or false when the
// index is out of range.
func (m *VecModel) RowData(row int) (Value, bool) {
	if row < 0 || row >= len(m.rows) {
		return Value{}, false
	}
	return m.rows[row].Clone(), true
}

// SetRowData replaces the row at the given index and emits RowChanged.
// Out-of-range indices are silently ignored.
func (m *VecModel) SetRowData(row int, data Value) {
	if row < 0 || row >= len(m.rows) {
		return
	}
	m.rows[row] = data.Clone()
	m.notifier.RowChanged(row)
}

// ModelTracker returns the notifier paired with this model.
func (m *VecModel) ModelTracker() *ModelNotifier {
	return &m.notifier
}

// PushRow appends a row and emits RowAdded.
func (m *VecModel) PushRow(data Value) {
	m.rows = append(m.rows, data.Clone())
	m.notifier.RowAdded(len(m.rows)-1, 1)
}

// InsertRow inserts a row before the given index and emits RowAdded.
// Out-of-range indices are silently ignored; index may equal RowCount to
// append.
func (m *VecModel) InsertRow(row int, data Value) {
	if row < 0 || row > len(m.rows) {
		return
	}
	m.rows = append(m.rows, Value{})
	copy(m.rows[row+1:], m.rows[row:])
	m.rows[row] = data.Clone()
	m.notifier.RowAdded(row, 1)
}

// RemoveRow deletes the row at the given index and emits RowRemoved.
// Out-of-range indices are silently ignored.
func (m *VecModel) RemoveRow(row int) {
	if row < 0 || row >= len(m.rows) {
		return
	}
	m.rows = append(m.rows[:row], m.rows[row+1:]...)
	m.notifier.RowRemoved(row, 1)
}

// SetVec replaces the whole backing sequence and emits Reset.
func (m *VecModel) SetVec(rows []Value) {
	m.rows = make([]Value, 0, len(rows))
	for _, v := range rows {
		m.rows = append(m.rows, v.Clone())
	}
	m.notifier.Reset()
}
