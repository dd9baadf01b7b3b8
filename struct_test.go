package loom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructSetAndGet(t *testing.T) {
	var s Struct

	_, ok := s.Field("missing")
	assert.False(t, ok)

	s.SetField("hello", NewString("world"))
	v, ok := s.Field("hello")
	require.True(t, ok)
	assert.True(t, v.Equal(NewString("world")))

	// Overwrite replaces in place.
	s.SetField("hello", NewNumber(5))
	v, ok = s.Field("hello")
	require.True(t, ok)
	assert.True(t, v.Equal(NewNumber(5)))
	assert.Equal(t, 1, s.Len())
}

func TestStructFieldNamesAreCaseSensitive(t *testing.T) {
	var s Struct
	s.SetField("Name", NewString("x"))

	_, ok := s.Field("name")
	assert.False(t, ok)
	_, ok = s.Field("Name")
	assert.True(t, ok)
}

func TestStructAll(t *testing.T) {
	s := StructOf(map[string]Value{
		"a": NewNumber(1),
		"b": NewNumber(2),
		"c": NewNumber(3),
	})

	seen := make(map[string]Value)
	for name, v := range s.All() {
		seen[name] = v
	}
	require.Len(t, seen, 3)
	assert.True(t, seen["b"].Equal(NewNumber(2)))
}

func TestStructCloneIsIndependent(t *testing.T) {
	var s Struct
	s.SetField("x", NewNumber(1))

	c := s.Clone()
	c.SetField("x", NewNumber(2))
	c.SetField("y", NewBool(true))

	v, _ := s.Field("x")
	assert.True(t, v.Equal(NewNumber(1)))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}

func TestStructNesting(t *testing.T) {
	var inner Struct
	inner.SetField("deep", NewString("value"))

	var outer Struct
	outer.SetField("inner", NewStruct(inner))

	v, ok := outer.Field("inner")
	require.True(t, ok)
	got, ok := v.AsStruct()
	require.True(t, ok)
	deep, ok := got.Field("deep")
	require.True(t, ok)
	assert.True(t, deep.Equal(NewString("value")))
}
