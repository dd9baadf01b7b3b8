package markup

// The element registry: which element types a document may use, per widget
// style. Base elements are always available; each style contributes its own
// widget set on top.

// DefaultStyle is used when the host configures no style or an unknown one.
const DefaultStyle = "fluent"

var baseElements = []string{
	"Window",
	"Rectangle",
	"Text",
	"Image",
	"TouchArea",
	"Flickable",
	"VerticalLayout",
	"HorizontalLayout",
	"GridLayout",
	"Repeater",
}

var styleWidgets = map[string][]string{
	"fluent": {
		"Button", "CheckBox", "ComboBox", "LineEdit", "ListView",
		"ScrollView", "Slider", "SpinBox", "TabWidget",
	},
	"material": {
		"Button", "CheckBox", "ComboBox", "LineEdit", "ListView",
		"ScrollView", "Slider", "Switch", "TabWidget",
	},
	"native": {
		"Button", "CheckBox", "ComboBox", "LineEdit", "ListView",
		"ScrollView", "Slider", "SpinBox",
	},
}

// ElementRegistry answers which element types are legal for one compile,
// given the selected widget style.
type ElementRegistry struct {
	style string
	types map[string]struct{}
}

// KnownStyle reports whether a widget set exists for the given style name.
func KnownStyle(style string) bool {
	_, ok := styleWidgets[style]
	return ok
}

// NewElementRegistry builds the registry for a style. Unknown styles fall
// back to the default widget set; the compiler is responsible for warning
// about them.
func NewElementRegistry(style string) *ElementRegistry {
	widgets, ok := styleWidgets[style]
	if !ok {
		style = DefaultStyle
		widgets = styleWidgets[style]
	}
	r := &ElementRegistry{style: style, types: make(map[string]struct{}, len(baseElements)+len(widgets))}
	for _, name := range baseElements {
		r.types[name] = struct{}{}
	}
	for _, name := range widgets {
		r.types[name] = struct{}{}
	}
	return r
}

// Style returns the effective style of this registry.
func (r *ElementRegistry) Style() string {
	return r.style
}

// Lookup reports whether the element type is available. Component names from
// the same document are resolved by the parser before it consults the
// registry.
func (r *ElementRegistry) Lookup(elementType string) bool {
	_, ok := r.types[elementType]
	return ok
}
