// Package markup parses loom markup documents into the definition model the
// interpreter instantiates from. Syntax is delegated to HCL; this package
// owns the block schemas, the declared-type language and the semantic checks,
// and reports every problem as an hcl.Diagnostic carrying a source range.
package markup

import (
	"github.com/loomui/loom"
	"github.com/zclconf/go-cty/cty"
)

// Document is the fully analyzed form of one markup document plus everything
// it imports.
type Document struct {
	// Path is the (possibly virtual) path of the top-level file, used in
	// diagnostics.
	Path string

	// Root is the root component: the last component block of the top-level
	// file.
	Root *Component

	// Components indexes every component in the document by name, imports
	// included.
	Components map[string]*Component

	// Globals indexes every global singleton by name, exported or not. Only
	// exported globals are reachable through the public instance surface.
	Globals map[string]*Global
}

// ExportedGlobal resolves name against the exported globals only.
func (d *Document) ExportedGlobal(name string) (*Global, bool) {
	g, ok := d.Globals[name]
	if !ok || !g.Exported {
		return nil, false
	}
	return g, true
}

// Component is one component declaration: its public properties and
// callbacks plus the element tree under it.
type Component struct {
	Name       string
	Properties []*PropertySpec
	Callbacks  []*CallbackSpec
	Elements   []*Element

	propIndex map[string]*PropertySpec
	cbIndex   map[string]*CallbackSpec
}

// Property resolves a declared property by exact name.
func (c *Component) Property(name string) (*PropertySpec, bool) {
	p, ok := c.propIndex[name]
	return p, ok
}

// Callback resolves a declared callback by exact name.
func (c *Component) Callback(name string) (*CallbackSpec, bool) {
	cb, ok := c.cbIndex[name]
	return cb, ok
}

// Global is a named singleton of properties and callbacks, declared at the
// top level of a document.
type Global struct {
	Name       string
	Exported   bool
	Properties []*PropertySpec
	Callbacks  []*CallbackSpec

	propIndex map[string]*PropertySpec
	cbIndex   map[string]*CallbackSpec
}

// Property resolves a declared property by exact name.
func (g *Global) Property(name string) (*PropertySpec, bool) {
	p, ok := g.propIndex[name]
	return p, ok
}

// Callback resolves a declared callback by exact name.
func (g *Global) Callback(name string) (*CallbackSpec, bool) {
	cb, ok := g.cbIndex[name]
	return cb, ok
}

// PropertySpec is one declared public property.
type PropertySpec struct {
	Name string
	Type cty.Type

	// Default is the evaluated default value. HasDefault distinguishes an
	// explicit void default from no default at all.
	Default    loom.Value
	HasDefault bool
}

// CallbackSpec is one declared callback signature.
type CallbackSpec struct {
	Name    string
	Args    []cty.Type
	Returns cty.Type
}

// Element is one node of the declarative element tree. Attribute expressions
// are reactive bindings evaluated by the rendering engine and stay opaque
// here; the compiler only validates the element types against the style's
// registry.
type Element struct {
	Type     string
	ID       string
	Children []*Element
}
