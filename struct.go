package loom

import "iter"

// Struct is a mutable collection of named Values, the record variant of
// Value. Field names are unique and matched case-sensitively. Insertion
// order carries no meaning; iteration order is unspecified but consistent
// within a single traversal.
//
// A Struct behaves like a handle: copying the Go value shares the underlying
// fields. Use Clone for an independent deep copy. The zero Struct is an
// empty struct, ready for SetField; StructOf builds one from a map.
type Struct struct {
	fields map[string]Value
}

// StructOf returns a new struct seeded with deep copies of the given fields.
func StructOf(fields map[string]Value) Struct {
	s := Struct{fields: make(map[string]Value, len(fields))}
	for name, v := range fields {
		s.fields[name] = v.Clone()
	}
	return s
}

// Field returns a copy of the value of the named field. It returns false,
// never a fabricated default, when no field with that exact name exists.
func (s Struct) Field(name string) (Value, bool) {
	v, ok := s.fields[name]
	if !ok {
		return Value{}, false
	}
	return v.Clone(), true
}

// SetField stores a copy of v under name, creating the field if it does not
// exist yet and replacing the previous value otherwise.
func (s *Struct) SetField(name string, v Value) {
	if s.fields == nil {
		s.fields = make(map[string]Value)
	}
	s.fields[name] = v.Clone()
}

// Len returns the number of fields.
func (s Struct) Len() int {
	return len(s.fields)
}

// All returns an iterator over the fields. The order is unspecified.
func (s Struct) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for name, v := range s.fields {
			if !yield(name, v.Clone()) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy of the struct.
func (s Struct) Clone() Struct {
	return StructOf(s.fields)
}

// Equal reports deep field-wise equality.
func (s Struct) Equal(o Struct) bool {
	if len(s.fields) != len(o.fields) {
		return false
	}
	for name, v := range s.fields {
		ov, ok := o.fields[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
