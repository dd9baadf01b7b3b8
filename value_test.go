package loom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRoundTrips(t *testing.T) {
	t.Run("void", func(t *testing.T) {
		v := VoidValue()
		assert.Equal(t, KindVoid, v.Kind())
		assert.True(t, v.IsVoid())
		_, ok := v.AsNumber()
		assert.False(t, ok)
	})

	t.Run("number", func(t *testing.T) {
		v := NewNumber(42.5)
		require.Equal(t, KindNumber, v.Kind())
		n, ok := v.AsNumber()
		require.True(t, ok)
		assert.Equal(t, 42.5, n)
	})

	t.Run("string", func(t *testing.T) {
		v := NewString("hello")
		s, ok := v.AsString()
		require.True(t, ok)
		assert.Equal(t, "hello", s)
	})

	t.Run("bool", func(t *testing.T) {
		v := NewBool(true)
		b, ok := v.AsBool()
		require.True(t, ok)
		assert.True(t, b)
	})

	t.Run("brush", func(t *testing.T) {
		v := NewBrush(SolidColorBrush(RGB(10, 20, 30)))
		b, ok := v.AsBrush()
		require.True(t, ok)
		assert.Equal(t, RGB(10, 20, 30), b.Color())
	})

	t.Run("image", func(t *testing.T) {
		img := NewImageRef("logo.png")
		v := NewImage(img)
		got, ok := v.AsImage()
		require.True(t, ok)
		assert.Same(t, img, got)
	})

	t.Run("struct", func(t *testing.T) {
		var s Struct
		s.SetField("x", NewNumber(1))
		v := NewStruct(s)
		got, ok := v.AsStruct()
		require.True(t, ok)
		x, ok := got.Field("x")
		require.True(t, ok)
		assert.True(t, x.Equal(NewNumber(1)))
	})

	t.Run("model", func(t *testing.T) {
		m := NewVecModel(NewNumber(1), NewNumber(2))
		v := NewModel(m)
		got, ok := v.AsModel()
		require.True(t, ok)
		assert.Equal(t, Model(m), got)
	})
}

func TestValueExtractorsRejectOtherKinds(t *testing.T) {
	v := NewString("not a number")

	_, ok := v.AsNumber()
	assert.False(t, ok)
	_, ok = v.AsBool()
	assert.False(t, ok)
	_, ok = v.AsBrush()
	assert.False(t, ok)
	_, ok = v.AsImage()
	assert.False(t, ok)
	_, ok = v.AsStruct()
	assert.False(t, ok)
	_, ok = v.AsModel()
	assert.False(t, ok)
	_, ok = v.AsArray()
	assert.False(t, ok)
}

func TestValueEquality(t *testing.T) {
	t.Run("same kind", func(t *testing.T) {
		assert.True(t, NewNumber(1).Equal(NewNumber(1)))
		assert.False(t, NewNumber(1).Equal(NewNumber(2)))
		assert.True(t, NewString("a").Equal(NewString("a")))
		assert.True(t, VoidValue().Equal(VoidValue()))
	})

	t.Run("cross kind is never equal", func(t *testing.T) {
		assert.False(t, NewNumber(1).Equal(NewString("1")))
		assert.False(t, NewBool(false).Equal(VoidValue()))
		assert.False(t, NewNumber(0).Equal(NewBool(false)))
	})

	t.Run("images compare by handle", func(t *testing.T) {
		a := NewImageRef("a.png")
		b := NewImageRef("a.png")
		assert.True(t, NewImage(a).Equal(NewImage(a)))
		assert.False(t, NewImage(a).Equal(NewImage(b)))
	})

	t.Run("models compare by handle", func(t *testing.T) {
		m1 := NewVecModel(NewNumber(1))
		m2 := NewVecModel(NewNumber(1))
		assert.True(t, NewModel(m1).Equal(NewModel(m1)))
		assert.False(t, NewModel(m1).Equal(NewModel(m2)))
	})

	t.Run("structs compare deeply", func(t *testing.T) {
		var a, b Struct
		a.SetField("x", NewNumber(1))
		b.SetField("x", NewNumber(1))
		assert.True(t, NewStruct(a).Equal(NewStruct(b)))
		b.SetField("y", NewBool(true))
		assert.False(t, NewStruct(a).Equal(NewStruct(b)))
	})
}

func TestValueStructCopySemantics(t *testing.T) {
	var s Struct
	s.SetField("x", NewNumber(1))
	v := NewStruct(s)

	// Mutating the source struct after construction must not leak into the
	// value.
	s.SetField("x", NewNumber(99))
	got, ok := v.AsStruct()
	require.True(t, ok)
	x, _ := got.Field("x")
	assert.True(t, x.Equal(NewNumber(1)))

	// Mutating an extracted struct must not leak back either.
	got.SetField("x", NewNumber(7))
	again, _ := v.AsStruct()
	x, _ = again.Field("x")
	assert.True(t, x.Equal(NewNumber(1)))
}

func TestValueAsArraySnapshots(t *testing.T) {
	m := NewVecModel(NewNumber(1), NewNumber(2), NewNumber(3))
	v := NewModel(m)

	rows, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, rows, 3)
	assert.True(t, rows[1].Equal(NewNumber(2)))

	// The snapshot is one-shot: later model mutations do not show up.
	m.SetRowData(1, NewNumber(99))
	assert.True(t, rows[1].Equal(NewNumber(2)))

	fresh, ok := v.AsArray()
	require.True(t, ok)
	assert.True(t, fresh[1].Equal(NewNumber(99)))
}

func TestNewArrayBuildsDetachedModel(t *testing.T) {
	rows := []Value{NewString("a"), NewString("b")}
	v := NewArray(rows)

	m, ok := v.AsModel()
	require.True(t, ok)
	assert.Equal(t, 2, m.RowCount())

	rows[0] = NewString("mutated")
	got, ok := m.RowData(0)
	require.True(t, ok)
	assert.True(t, got.Equal(NewString("a")))
}
