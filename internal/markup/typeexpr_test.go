package markup

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/loomui/loom"
)

func parseTypeExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.loom", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func TestTypeExprKeywords(t *testing.T) {
	cases := map[string]cty.Type{
		"string":       cty.String,
		"number":       cty.Number,
		"bool":         cty.Bool,
		"color":        ColorType,
		"brush":        BrushType,
		"image":        ImageType,
		"any":          cty.DynamicPseudoType,
		"list(number)": cty.List(cty.Number),
		"list(list(string))": cty.List(cty.List(cty.String)),
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			got, diags := TypeExpr(parseTypeExpr(t, src))
			require.False(t, diags.HasErrors(), diags.Error())
			assert.True(t, got.Equals(want), "got %s", got.FriendlyName())
		})
	}
}

func TestTypeExprNilMeansAny(t *testing.T) {
	got, diags := TypeExpr(nil)
	require.False(t, diags.HasErrors())
	assert.True(t, got.Equals(cty.DynamicPseudoType))
}

func TestTypeExprErrors(t *testing.T) {
	cases := map[string]string{
		"velocity":             "unknown type keyword",
		"set(number)":          "unknown type constructor",
		"list(string, number)": "exactly one argument",
		"list(frobnicator)":    "unknown type keyword",
		"42":                   "expected a type keyword",
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			_, diags := TypeExpr(parseTypeExpr(t, src))
			require.True(t, diags.HasErrors())
			assert.Contains(t, diags.Error(), want)
		})
	}
}

func TestTypeExprList(t *testing.T) {
	types, diags := TypeExprList(parseTypeExpr(t, "[string, number, list(bool)]"))
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, types, 3)
	assert.True(t, types[0].Equals(cty.String))
	assert.True(t, types[1].Equals(cty.Number))
	assert.True(t, types[2].Equals(cty.List(cty.Bool)))
}

func TestTypeExprListNilMeansEmpty(t *testing.T) {
	types, diags := TypeExprList(nil)
	require.False(t, diags.HasErrors())
	assert.Empty(t, types)
}

func TestTypeExprListRejectsNonList(t *testing.T) {
	_, diags := TypeExprList(parseTypeExpr(t, "string"))
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error(), "must be written as a list")
}

func TestFriendlyTypeName(t *testing.T) {
	assert.Equal(t, "void", FriendlyTypeName(cty.NilType))
	assert.Equal(t, "any", FriendlyTypeName(cty.DynamicPseudoType))
	assert.Equal(t, "color", FriendlyTypeName(ColorType))
	assert.Equal(t, "brush", FriendlyTypeName(BrushType))
	assert.Equal(t, "image", FriendlyTypeName(ImageType))
	assert.Equal(t, "list(number)", FriendlyTypeName(cty.List(cty.Number)))
	assert.Equal(t, "string", FriendlyTypeName(cty.String))
}

func TestZeroValueOf(t *testing.T) {
	assert.Equal(t, loom.KindVoid, ZeroValueOf(cty.NilType).Kind())
	assert.True(t, ZeroValueOf(cty.Number).Equal(loom.NewNumber(0)))
	assert.True(t, ZeroValueOf(cty.String).Equal(loom.NewString("")))
	assert.True(t, ZeroValueOf(cty.Bool).Equal(loom.NewBool(false)))
	assert.Equal(t, loom.KindBrush, ZeroValueOf(BrushType).Kind())
	assert.Equal(t, loom.KindModel, ZeroValueOf(cty.List(cty.String)).Kind())
	assert.Equal(t, loom.KindStruct, ZeroValueOf(cty.EmptyObject).Kind())
	assert.Equal(t, loom.KindVoid, ZeroValueOf(ImageType).Kind())
	assert.Equal(t, loom.KindVoid, ZeroValueOf(cty.DynamicPseudoType).Kind())
}

func TestKindMatchesType(t *testing.T) {
	assert.True(t, KindMatchesType(loom.KindNumber, cty.Number))
	assert.True(t, KindMatchesType(loom.KindString, cty.String))
	assert.True(t, KindMatchesType(loom.KindBool, cty.Bool))
	assert.True(t, KindMatchesType(loom.KindBrush, ColorType))
	assert.True(t, KindMatchesType(loom.KindBrush, BrushType))
	assert.True(t, KindMatchesType(loom.KindImage, ImageType))
	assert.True(t, KindMatchesType(loom.KindModel, cty.List(cty.Number)))
	assert.True(t, KindMatchesType(loom.KindVoid, cty.DynamicPseudoType))

	assert.False(t, KindMatchesType(loom.KindString, cty.Number))
	assert.False(t, KindMatchesType(loom.KindNumber, BrushType))
	assert.False(t, KindMatchesType(loom.KindStruct, cty.List(cty.Number)))
}
