// Package loom is the runtime bridge of the loom declarative-UI engine.
//
// It lets a host application compile loom markup into an in-memory component
// definition at run time (see the interp package), instantiate that
// definition into a live component tree, and exchange data with it through
// the dynamically typed Value system defined here.
//
// The package is built around three pieces:
//
//   - Value and Struct, the dynamically typed data exchanged across the
//     host/UI boundary.
//   - Model and ModelNotifier, the observable sequence abstraction backing
//     UI collection properties.
//   - The cooperative event loop driving shown component instances.
//
// Component instances and the event loop are confined to a single goroutine.
// See the interp package documentation for the exact contract.
package loom

import "github.com/loomui/loom/internal/platform"

// Window is the windowing-system registration of a shown component
// instance. With no rendering backend compiled in, it is a headless
// registration tracking visibility and redraw requests.
type Window = platform.Window

// RunEventLoop enters the cooperative event loop and blocks until
// QuitEventLoop is called. Events posted from other goroutines via
// PostEvent are applied here, on the loop's goroutine.
func RunEventLoop() {
	platform.RunEventLoop()
}

// QuitEventLoop asks a running event loop to return. It is safe to call
// from any goroutine.
func QuitEventLoop() {
	platform.QuitEventLoop()
}

// PostEvent schedules fn to run on the event loop goroutine. It is the
// supported way for worker goroutines to hand prepared data to code that
// must run on the UI goroutine.
func PostEvent(fn func()) {
	platform.PostEvent(fn)
}
