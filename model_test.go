package loom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures the notification stream for assertions.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) RowAdded(index, count int) {
	r.events = append(r.events, fmt.Sprintf("added(%d,%d)", index, count))
}

func (r *recordingObserver) RowChanged(index int) {
	r.events = append(r.events, fmt.Sprintf("changed(%d)", index))
}

func (r *recordingObserver) RowRemoved(index, count int) {
	r.events = append(r.events, fmt.Sprintf("removed(%d,%d)", index, count))
}

func (r *recordingObserver) Reset() {
	r.events = append(r.events, "reset")
}

func TestVecModelRowAccess(t *testing.T) {
	m := NewVecModel(NewNumber(1), NewNumber(2), NewNumber(3))

	assert.Equal(t, 3, m.RowCount())

	v, ok := m.RowData(1)
	require.True(t, ok)
	assert.True(t, v.Equal(NewNumber(2)))

	_, ok = m.RowData(-1)
	assert.False(t, ok)
	_, ok = m.RowData(3)
	assert.False(t, ok)
}

func TestVecModelSetRowData(t *testing.T) {
	m := NewVecModel(NewNumber(1), NewNumber(2), NewNumber(3))
	obs := &recordingObserver{}
	m.ModelTracker().Attach(obs)

	m.SetRowData(1, NewNumber(99))

	v, ok := m.RowData(1)
	require.True(t, ok)
	assert.True(t, v.Equal(NewNumber(99)))
	assert.Equal(t, 3, m.RowCount())
	assert.Equal(t, []string{"changed(1)"}, obs.events)

	// Out of range is a silent no-op: no notification, no change.
	m.SetRowData(17, NewNumber(5))
	assert.Equal(t, []string{"changed(1)"}, obs.events)
	assert.Equal(t, 3, m.RowCount())
}

func TestVecModelMutations(t *testing.T) {
	m := NewVecModel()
	obs := &recordingObserver{}
	m.ModelTracker().Attach(obs)

	m.PushRow(NewString("a"))
	m.PushRow(NewString("c"))
	m.InsertRow(1, NewString("b"))
	require.Equal(t, 3, m.RowCount())

	v, _ := m.RowData(1)
	assert.True(t, v.Equal(NewString("b")))

	m.RemoveRow(0)
	require.Equal(t, 2, m.RowCount())
	v, _ = m.RowData(0)
	assert.True(t, v.Equal(NewString("b")))

	m.SetVec([]Value{NewString("x")})
	require.Equal(t, 1, m.RowCount())

	assert.Equal(t, []string{
		"added(0,1)",
		"added(1,1)",
		"added(1,1)",
		"removed(0,1)",
		"reset",
	}, obs.events)
}

func TestVecModelIgnoresOutOfRangeMutations(t *testing.T) {
	m := NewVecModel(NewNumber(1))
	obs := &recordingObserver{}
	m.ModelTracker().Attach(obs)

	m.InsertRow(5, NewNumber(2))
	m.RemoveRow(5)
	m.RemoveRow(-1)

	assert.Equal(t, 1, m.RowCount())
	assert.Empty(t, obs.events)
}

func TestModelNotifierFanOut(t *testing.T) {
	var n ModelNotifier
	first := &recordingObserver{}
	second := &recordingObserver{}
	n.Attach(first)
	n.Attach(second)

	n.RowAdded(0, 2)
	assert.Equal(t, []string{"added(0,2)"}, first.events)
	assert.Equal(t, []string{"added(0,2)"}, second.events)

	n.Detach(first)
	n.RowChanged(1)
	assert.Equal(t, []string{"added(0,2)"}, first.events)
	assert.Equal(t, []string{"added(0,2)", "changed(1)"}, second.events)
}

func TestModelNotifierDetachUnknownIsIgnored(t *testing.T) {
	var n ModelNotifier
	n.Detach(&recordingObserver{})
	n.Reset() // no observers, must not panic
}
