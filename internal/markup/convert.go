// This file bridges the two value worlds: evaluated HCL expressions
// (cty.Value) on one side, the engine's dynamically typed loom.Value on the
// other, plus the compatibility check between a Value kind and a declared
// type.

package markup

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/loomui/loom"
)

// CtyToValue converts an evaluated constant expression into a loom.Value,
// steered by the declared type: a string constant against a color or brush
// declaration is parsed as a color literal, list-ish values become VecModels
// and object-ish values become Structs.
func CtyToValue(v cty.Value, declared cty.Type) (loom.Value, error) {
	if v.IsNull() {
		return loom.VoidValue(), nil
	}
	if !v.IsKnown() {
		return loom.VoidValue(), fmt.Errorf("default values must be constant expressions")
	}

	if declared.Equals(ColorType) || declared.Equals(BrushType) {
		if v.Type() != cty.String {
			return loom.VoidValue(), fmt.Errorf("a %s default must be a color literal string", FriendlyTypeName(declared))
		}
		c, err := loom.ParseColor(v.AsString())
		if err != nil {
			return loom.VoidValue(), err
		}
		return loom.NewColor(c), nil
	}

	t := v.Type()
	switch {
	case t == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return loom.NewNumber(f), nil
	case t == cty.String:
		return loom.NewString(v.AsString()), nil
	case t == cty.Bool:
		return loom.NewBool(v.True()), nil
	case t.IsTupleType(), t.IsListType(), t.IsSetType():
		elemDeclared := cty.DynamicPseudoType
		if declared.IsListType() {
			elemDeclared = declared.ElementType()
		}
		var rows []loom.Value
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			row, err := CtyToValue(ev, elemDeclared)
			if err != nil {
				return loom.VoidValue(), err
			}
			rows = append(rows, row)
		}
		return loom.NewArray(rows), nil
	case t.IsObjectType(), t.IsMapType():
		var s loom.Struct
		for it := v.ElementIterator(); it.Next(); {
			ek, ev := it.Element()
			field, err := CtyToValue(ev, cty.DynamicPseudoType)
			if err != nil {
				return loom.VoidValue(), err
			}
			s.SetField(ek.AsString(), field)
		}
		return loom.NewStruct(s), nil
	default:
		return loom.VoidValue(), fmt.Errorf("unsupported constant of type %s", t.FriendlyName())
	}
}

// KindMatchesType reports whether a Value of the given kind is acceptable
// for a property or argument declared with type t. `any` accepts every kind,
// including void.
func KindMatchesType(k loom.Kind, t cty.Type) bool {
	if t.Equals(cty.DynamicPseudoType) {
		return true
	}
	switch {
	case t == cty.Number:
		return k == loom.KindNumber
	case t == cty.String:
		return k == loom.KindString
	case t == cty.Bool:
		return k == loom.KindBool
	case t.Equals(ColorType), t.Equals(BrushType):
		return k == loom.KindBrush
	case t.Equals(ImageType):
		return k == loom.KindImage
	case t.IsListType(), t.IsTupleType():
		return k == loom.KindModel
	case t.IsObjectType(), t.IsMapType():
		return k == loom.KindStruct
	default:
		return false
	}
}

// ZeroValueOf returns the engine default for a declared type: what an
// unhandled callback returns and what an initialized property without an
// explicit default holds. The nil type stands for a void return.
func ZeroValueOf(t cty.Type) loom.Value {
	if t == cty.NilType {
		return loom.VoidValue()
	}
	switch {
	case t == cty.Number:
		return loom.NewNumber(0)
	case t == cty.String:
		return loom.NewString("")
	case t == cty.Bool:
		return loom.NewBool(false)
	case t.Equals(ColorType), t.Equals(BrushType):
		return loom.NewBrush(loom.Brush{})
	case t.IsListType(), t.IsTupleType():
		return loom.NewArray(nil)
	case t.IsObjectType(), t.IsMapType():
		return loom.NewStruct(loom.Struct{})
	default:
		// image, any: no meaningful default exists.
		return loom.VoidValue()
	}
}
