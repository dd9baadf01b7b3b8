// Package codec serializes loom Values with msgpack so hosts can persist
// property state across runs or move it between processes.
//
// Serialization is a value snapshot: a model reference is written as its
// rows at call time and read back as a fresh VecModel, and an image is
// written as its source path and read back as an unloaded reference. Every
// other kind round-trips exactly.
package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/loomui/loom"
)

// wire is the msgpack envelope for one Value node.
type wire struct {
	Kind   uint8           `msgpack:"k"`
	Num    float64         `msgpack:"n,omitempty"`
	Str    string          `msgpack:"s,omitempty"`
	Bool   bool            `msgpack:"b,omitempty"`
	Color  [4]uint8        `msgpack:"c,omitempty"`
	Path   string          `msgpack:"p,omitempty"`
	Fields map[string]wire `msgpack:"f,omitempty"`
	Rows   []wire          `msgpack:"r,omitempty"`
}

// Marshal encodes a Value snapshot.
func Marshal(v loom.Value) ([]byte, error) {
	w, err := toWire(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(w)
}

// Unmarshal decodes a Value previously encoded with Marshal.
func Unmarshal(data []byte) (loom.Value, error) {
	var w wire
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return loom.VoidValue(), fmt.Errorf("failed to decode value: %w", err)
	}
	return fromWire(w)
}

func toWire(v loom.Value) (wire, error) {
	w := wire{Kind: uint8(v.Kind())}
	switch v.Kind() {
	case loom.KindVoid:
	case loom.KindNumber:
		w.Num, _ = v.AsNumber()
	case loom.KindString:
		w.Str, _ = v.AsString()
	case loom.KindBool:
		w.Bool, _ = v.AsBool()
	case loom.KindBrush:
		b, _ := v.AsBrush()
		c := b.Color()
		w.Color = [4]uint8{c.R, c.G, c.B, c.A}
	case loom.KindImage:
		img, _ := v.AsImage()
		if img.Path() == "" {
			return wire{}, fmt.Errorf("cannot serialize an image without a source path")
		}
		w.Path = img.Path()
	case loom.KindStruct:
		s, _ := v.AsStruct()
		w.Fields = make(map[string]wire, s.Len())
		for name, field := range s.All() {
			fw, err := toWire(field)
			if err != nil {
				return wire{}, fmt.Errorf("field %q: %w", name, err)
			}
			w.Fields[name] = fw
		}
	case loom.KindModel:
		rows, _ := v.AsArray()
		w.Rows = make([]wire, 0, len(rows))
		for i, row := range rows {
			rw, err := toWire(row)
			if err != nil {
				return wire{}, fmt.Errorf("row %d: %w", i, err)
			}
			w.Rows = append(w.Rows, rw)
		}
	default:
		return wire{}, fmt.Errorf("cannot serialize value of kind %s", v.Kind())
	}
	return w, nil
}

func fromWire(w wire) (loom.Value, error) {
	switch loom.Kind(w.Kind) {
	case loom.KindVoid:
		return loom.VoidValue(), nil
	case loom.KindNumber:
		return loom.NewNumber(w.Num), nil
	case loom.KindString:
		return loom.NewString(w.Str), nil
	case loom.KindBool:
		return loom.NewBool(w.Bool), nil
	case loom.KindBrush:
		return loom.NewColor(loom.RGBA(w.Color[0], w.Color[1], w.Color[2], w.Color[3])), nil
	case loom.KindImage:
		return loom.NewImage(loom.NewImageRef(w.Path)), nil
	case loom.KindStruct:
		var s loom.Struct
		for name, fw := range w.Fields {
			field, err := fromWire(fw)
			if err != nil {
				return loom.VoidValue(), fmt.Errorf("field %q: %w", name, err)
			}
			s.SetField(name, field)
		}
		return loom.NewStruct(s), nil
	case loom.KindModel:
		rows := make([]loom.Value, 0, len(w.Rows))
		for i, rw := range w.Rows {
			row, err := fromWire(rw)
			if err != nil {
				return loom.VoidValue(), fmt.Errorf("row %d: %w", i, err)
			}
			rows = append(rows, row)
		}
		return loom.NewArray(rows), nil
	default:
		return loom.VoidValue(), fmt.Errorf("unknown value kind tag %d", w.Kind)
	}
}
