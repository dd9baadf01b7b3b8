// This file contains the declared-type language of loom markup: parsing type
// expressions such as `string` or `list(number)` into cty.Type objects.

package markup

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/loomui/loom"
)

// Capsule types for the Value variants that have no cty primitive. Identity
// of the package-level variables is what makes two declared `brush` types
// compare equal.
var (
	// ColorType is the declared type of `color` properties.
	ColorType = cty.Capsule("color", reflect.TypeOf(loom.Color{}))
	// BrushType is the declared type of `brush` properties.
	BrushType = cty.Capsule("brush", reflect.TypeOf(loom.Brush{}))
	// ImageType is the declared type of `image` properties.
	ImageType = cty.Capsule("image", reflect.TypeOf(loom.Image{}))
)

// TypeExpr converts a markup type expression into its cty.Type equivalent.
// A nil expression means the type was omitted and defaults to any.
func TypeExpr(expr hcl.Expression) (cty.Type, hcl.Diagnostics) {
	if expr == nil {
		return cty.DynamicPseudoType, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		// Primitive type keywords: `string`, `number`, ...
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, typeDiag(expr, "a type keyword must be a single identifier")
		}
		switch name := v.Traversal.RootName(); name {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		case "color":
			return ColorType, nil
		case "brush":
			return BrushType, nil
		case "image":
			return ImageType, nil
		case "any":
			return cty.DynamicPseudoType, nil
		default:
			return cty.DynamicPseudoType, typeDiag(expr, fmt.Sprintf("unknown type keyword %q", name))
		}

	case *hclsyntax.FunctionCallExpr:
		// The only type constructor is `list(T)`.
		if v.Name != "list" {
			return cty.DynamicPseudoType, typeDiag(expr, fmt.Sprintf("unknown type constructor %q", v.Name))
		}
		if len(v.Args) != 1 {
			return cty.DynamicPseudoType, typeDiag(expr,
				fmt.Sprintf("the list type constructor requires exactly one argument, got %d", len(v.Args)))
		}
		elem, diags := TypeExpr(v.Args[0])
		if diags.HasErrors() {
			return cty.DynamicPseudoType, diags
		}
		return cty.List(elem), nil

	default:
		return cty.DynamicPseudoType, typeDiag(expr, "expected a type keyword or list(...) constructor")
	}
}

// TypeExprList converts an `args = [T, ...]` expression into the list of
// declared argument types. A nil expression means an empty signature.
func TypeExprList(expr hcl.Expression) ([]cty.Type, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	items, listDiags := hcl.ExprList(expr)
	if listDiags.HasErrors() {
		return nil, typeDiag(expr, "callback argument types must be written as a list, e.g. args = [string, number]")
	}
	var diags hcl.Diagnostics
	types := make([]cty.Type, 0, len(items))
	for _, item := range items {
		t, d := TypeExpr(item)
		diags = append(diags, d...)
		types = append(types, t)
	}
	return types, diags
}

// FriendlyTypeName renders a declared type the way markup spells it, for
// diagnostics and introspection output.
func FriendlyTypeName(t cty.Type) string {
	if t == cty.NilType {
		return "void"
	}
	switch {
	case t.Equals(cty.DynamicPseudoType):
		return "any"
	case t.Equals(ColorType):
		return "color"
	case t.Equals(BrushType):
		return "brush"
	case t.Equals(ImageType):
		return "image"
	case t.IsListType():
		return "list(" + FriendlyTypeName(t.ElementType()) + ")"
	default:
		return t.FriendlyName()
	}
}

func typeDiag(expr hcl.Expression, detail string) hcl.Diagnostics {
	rng := expr.Range()
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid type expression",
		Detail:   detail,
		Subject:  &rng,
	}}
}
