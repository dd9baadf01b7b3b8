package markup

import "github.com/hashicorp/hcl/v2"

// The gohcl schemas for the raw block structure of a markup file. Semantic
// checks happen after decoding, in parse.go, where ranges from the kept
// expressions feed the diagnostics.

// fileRoot is the top-level structure of any .loom file.
type fileRoot struct {
	Imports    []*importBlock    `hcl:"import,block"`
	Components []*componentBlock `hcl:"component,block"`
	Globals    []*globalBlock    `hcl:"global,block"`
}

// importBlock pulls the components and globals of another file into the
// document. The path is resolved relative to the importing file first, then
// against the compiler's include paths.
type importBlock struct {
	Path hcl.Expression `hcl:"path"`
}

// componentBlock is a `component "Name" { ... }` declaration.
type componentBlock struct {
	Name       string           `hcl:"name,label"`
	Properties []*propertyBlock `hcl:"property,block"`
	Callbacks  []*callbackBlock `hcl:"callback,block"`
	Elements   []*elementBlock  `hcl:"element,block"`
	Remain     hcl.Body         `hcl:",remain"`
}

// globalBlock is a `global "Name" { ... }` singleton declaration. Only
// globals with `export = true` are reachable through the instance surface.
type globalBlock struct {
	Name       string           `hcl:"name,label"`
	Export     bool             `hcl:"export,optional"`
	Properties []*propertyBlock `hcl:"property,block"`
	Callbacks  []*callbackBlock `hcl:"callback,block"`
	Remain     hcl.Body         `hcl:",remain"`
}

// propertyBlock is a `property "name" { type = ...; default = ... }` block.
// Both attributes stay expressions: the type uses the declared-type language
// of typeexpr.go and the default is evaluated against the declared type.
type propertyBlock struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type"`
	Default hcl.Expression `hcl:"default,optional"`
}

// callbackBlock is a `callback "name" { args = [...]; returns = ... }`
// block. Args must be a list construction expression of type expressions.
type callbackBlock struct {
	Name    string         `hcl:"name,label"`
	Args    hcl.Expression `hcl:"args,optional"`
	Returns hcl.Expression `hcl:"returns,optional"`
}

// elementBlock is one node of the `element "Type" { ... }` tree. Attribute
// bindings inside the body belong to the rendering engine and are left
// undecoded in Remain.
type elementBlock struct {
	Type     string          `hcl:"type,label"`
	ID       string          `hcl:"id,optional"`
	Children []*elementBlock `hcl:"element,block"`
	Remain   hcl.Body        `hcl:",remain"`
}
