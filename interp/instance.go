package interp

import (
	"github.com/loomui/loom"
	"github.com/loomui/loom/internal/markup"
	"github.com/loomui/loom/internal/platform"
)

// Callback is a host-side handler for a markup-declared callback. It runs
// synchronously, and possibly reentrantly, on the instance's goroutine.
//
// A handler stored on an instance must not capture an owning reference back
// to that instance (for example a closure that keeps the instance alive in
// a global); that creates a cycle the engine cannot see. Capture what the
// handler needs, or a weak handle, instead.
type Callback func(args []loom.Value) loom.Value

// ComponentInstance is a live instantiation of a ComponentDefinition. Its
// lifetime is independent of the definition; the definition may be dropped
// while instances keep running.
//
// All methods must be called on the goroutine that created the instance.
// Violations panic.
type ComponentInstance struct {
	def      *ComponentDefinition
	guard    platform.ThreadGuard
	window   *platform.Window
	props    map[string]loom.Value
	handlers map[string]Callback
	globals  map[string]*globalState
}

// globalState is the per-instance state of one exported global singleton.
type globalState struct {
	spec     *markup.Global
	props    map[string]loom.Value
	handlers map[string]Callback
}

// Create instantiates the definition. Properties start at their declared
// defaults, or at the zero value of their declared type without one. The
// calling goroutine becomes the owning goroutine of the new instance.
func (d *ComponentDefinition) Create() *ComponentInstance {
	inst := &ComponentInstance{
		def:      d,
		guard:    platform.NewThreadGuard(),
		window:   platform.NewWindow(d.doc.Root.Name),
		props:    initialProperties(d.doc.Root.Properties),
		handlers: make(map[string]Callback),
		globals:  make(map[string]*globalState),
	}
	for name, g := range d.doc.Globals {
		if !g.Exported {
			continue
		}
		inst.globals[name] = &globalState{
			spec:     g,
			props:    initialProperties(g.Properties),
			handlers: make(map[string]Callback),
		}
	}
	return inst
}

func initialProperties(specs []*markup.PropertySpec) map[string]loom.Value {
	props := make(map[string]loom.Value, len(specs))
	for _, spec := range specs {
		if spec.HasDefault {
			props[spec.Name] = spec.Default.Clone()
		} else {
			props[spec.Name] = markup.ZeroValueOf(spec.Type)
		}
	}
	return props
}

// Definition returns the definition this instance was created from.
func (inst *ComponentInstance) Definition() *ComponentDefinition {
	return inst.def
}

// SetProperty sets the value of a declared public property. It returns
// false, leaving the property untouched, when no property with that name is
// declared or the value's kind is incompatible with the declared type.
// A successful set invalidates dependent UI state.
func (inst *ComponentInstance) SetProperty(name string, v loom.Value) bool {
	inst.guard.Check()
	spec, ok := inst.def.doc.Root.Property(name)
	if !ok {
		return false
	}
	if !markup.KindMatchesType(v.Kind(), spec.Type) {
		return false
	}
	inst.props[name] = v.Clone()
	inst.window.RequestRedraw()
	return true
}

// Property returns the current value of a declared public property, by
// copy: the result does not track later changes. It returns false when no
// property with that name is declared.
func (inst *ComponentInstance) Property(name string) (loom.Value, bool) {
	inst.guard.Check()
	v, ok := inst.props[name]
	if !ok {
		return loom.Value{}, false
	}
	return v.Clone(), true
}

// InvokeCallback invokes a declared callback with the given arguments. It
// returns false when the callback does not exist or the argument count or
// kinds do not match the declared signature. Without a registered handler
// the engine default for the declared return type is returned.
func (inst *ComponentInstance) InvokeCallback(name string, args []loom.Value) (loom.Value, bool) {
	inst.guard.Check()
	return invokeCallback(inst.def.doc.Root.Callback, inst.handlers, name, args)
}

// SetCallback registers handler for a declared callback, replacing any
// previous handler. It returns false when no callback with that name is
// declared. The handler runs synchronously on the instance's goroutine
// whenever the UI, or InvokeCallback, triggers the callback.
func (inst *ComponentInstance) SetCallback(name string, handler Callback) bool {
	inst.guard.Check()
	if _, ok := inst.def.doc.Root.Callback(name); !ok {
		return false
	}
	inst.handlers[name] = handler
	return true
}

// SetGlobalProperty sets a property of an exported global singleton. The
// contract matches SetProperty, additionally failing when the global does
// not resolve.
func (inst *ComponentInstance) SetGlobalProperty(global, name string, v loom.Value) bool {
	inst.guard.Check()
	g, ok := inst.globals[global]
	if !ok {
		return false
	}
	spec, ok := g.spec.Property(name)
	if !ok {
		return false
	}
	if !markup.KindMatchesType(v.Kind(), spec.Type) {
		return false
	}
	g.props[name] = v.Clone()
	inst.window.RequestRedraw()
	return true
}

// GlobalProperty returns a property of an exported global singleton, by
// copy. It returns false when either the global or the property does not
// resolve.
func (inst *ComponentInstance) GlobalProperty(global, name string) (loom.Value, bool) {
	inst.guard.Check()
	g, ok := inst.globals[global]
	if !ok {
		return loom.Value{}, false
	}
	v, ok := g.props[name]
	if !ok {
		return loom.Value{}, false
	}
	return v.Clone(), true
}

// SetGlobalCallback registers a handler for a callback of an exported
// global singleton. The contract matches SetCallback.
func (inst *ComponentInstance) SetGlobalCallback(global, name string, handler Callback) bool {
	inst.guard.Check()
	g, ok := inst.globals[global]
	if !ok {
		return false
	}
	if _, ok := g.spec.Callback(name); !ok {
		return false
	}
	g.handlers[name] = handler
	return true
}

// InvokeGlobalCallback invokes a callback of an exported global singleton.
// The contract matches InvokeCallback.
func (inst *ComponentInstance) InvokeGlobalCallback(global, name string, args []loom.Value) (loom.Value, bool) {
	inst.guard.Check()
	g, ok := inst.globals[global]
	if !ok {
		return loom.Value{}, false
	}
	return invokeCallback(g.spec.Callback, g.handlers, name, args)
}

func invokeCallback(
	lookup func(string) (*markup.CallbackSpec, bool),
	handlers map[string]Callback,
	name string,
	args []loom.Value,
) (loom.Value, bool) {
	spec, ok := lookup(name)
	if !ok {
		return loom.Value{}, false
	}
	if len(args) != len(spec.Args) {
		return loom.Value{}, false
	}
	for i, arg := range args {
		if !markup.KindMatchesType(arg.Kind(), spec.Args[i]) {
			return loom.Value{}, false
		}
	}
	handler, ok := handlers[name]
	if !ok {
		return markup.ZeroValueOf(spec.Returns), true
	}
	return handler(args), true
}

// Show registers the instance's window with the windowing system. The event
// loop must still be running for the window to process anything.
func (inst *ComponentInstance) Show() {
	inst.guard.Check()
	inst.window.Show()
}

// Hide de-registers the instance's window from the windowing system.
func (inst *ComponentInstance) Hide() {
	inst.guard.Check()
	inst.window.Hide()
}

// Run shows the instance, runs the event loop until loom.QuitEventLoop is
// called, then hides the instance again.
func (inst *ComponentInstance) Run() {
	inst.Show()
	platform.RunEventLoop()
	inst.Hide()
}

// Window returns the window associated with this instance.
func (inst *ComponentInstance) Window() *loom.Window {
	inst.guard.Check()
	return inst.window
}
