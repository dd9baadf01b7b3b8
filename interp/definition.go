package interp

import (
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/loomui/loom/internal/markup"
)

// PropertyDescriptor describes one public property: its name and declared
// type. TypeName holds the type as markup spells it (`string`,
// `list(number)`, ...).
type PropertyDescriptor struct {
	Name string
	Type cty.Type
}

// TypeName returns the declared type the way markup spells it.
func (p PropertyDescriptor) TypeName() string {
	return markup.FriendlyTypeName(p.Type)
}

// ComponentDefinition is an immutable compiled component: a factory for
// instances plus the introspection surface over its public declarations.
// Definitions are cheap to share between goroutines and outlive none or
// many instances; destroying a definition never invalidates instances
// created from it.
type ComponentDefinition struct {
	doc   *markup.Document
	style string
}

// Name returns the component name as written in the markup.
func (d *ComponentDefinition) Name() string {
	return d.doc.Root.Name
}

// Style returns the widget style the definition was compiled with.
func (d *ComponentDefinition) Style() string {
	return d.style
}

// Properties lists the public properties readable and writable through
// ComponentInstance, in declaration order.
func (d *ComponentDefinition) Properties() []PropertyDescriptor {
	return describeProperties(d.doc.Root.Properties)
}

// Callbacks lists the names of the public callbacks, in declaration order.
func (d *ComponentDefinition) Callbacks() []string {
	return describeCallbacks(d.doc.Root.Callbacks)
}

// Globals lists the names of the global singletons exported by the
// document. Globals that are declared but not exported are not reachable
// and not listed.
func (d *ComponentDefinition) Globals() []string {
	names := make([]string, 0, len(d.doc.Globals))
	for name, g := range d.doc.Globals {
		if g.Exported {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// GlobalProperties lists the properties of the named exported global. It
// returns false when no exported global has that name.
func (d *ComponentDefinition) GlobalProperties(global string) ([]PropertyDescriptor, bool) {
	g, ok := d.doc.ExportedGlobal(global)
	if !ok {
		return nil, false
	}
	return describeProperties(g.Properties), true
}

// GlobalCallbacks lists the callbacks of the named exported global. It
// returns false when no exported global has that name.
func (d *ComponentDefinition) GlobalCallbacks(global string) ([]string, bool) {
	g, ok := d.doc.ExportedGlobal(global)
	if !ok {
		return nil, false
	}
	return describeCallbacks(g.Callbacks), true
}

func describeProperties(specs []*markup.PropertySpec) []PropertyDescriptor {
	out := make([]PropertyDescriptor, 0, len(specs))
	for _, spec := range specs {
		out = append(out, PropertyDescriptor{Name: spec.Name, Type: spec.Type})
	}
	return out
}

func describeCallbacks(specs []*markup.CallbackSpec) []string {
	out := make([]string, 0, len(specs))
	for _, spec := range specs {
		out = append(out, spec.Name)
	}
	return out
}
