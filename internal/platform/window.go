package platform

// Window is the backend-side state of one component instance's window. With
// no rendering backend compiled in it is a headless registration: visibility
// and the redraw flag are tracked so the rest of the engine (and tests) can
// observe show/hide and invalidation.
//
// Windows are confined to the goroutine that created them.
type Window struct {
	guard       ThreadGuard
	title       string
	visible     bool
	needsRedraw bool
}

// visibleWindows is the process-wide registry of shown windows. Confinement
// of every Window to the UI goroutine keeps access to it single-threaded.
var visibleWindows = make(map[*Window]struct{})

// NewWindow returns a hidden window owned by the calling goroutine.
func NewWindow(title string) *Window {
	return &Window{guard: NewThreadGuard(), title: title}
}

// Show registers the window with the windowing registry. Showing a shown
// window is a no-op.
func (w *Window) Show() {
	w.guard.Check()
	if w.visible {
		return
	}
	w.visible = true
	visibleWindows[w] = struct{}{}
}

// Hide removes the window from the windowing registry. Hiding a hidden
// window is a no-op.
func (w *Window) Hide() {
	w.guard.Check()
	if !w.visible {
		return
	}
	w.visible = false
	delete(visibleWindows, w)
}

// Visible reports whether the window is currently registered as shown.
func (w *Window) Visible() bool {
	w.guard.Check()
	return w.visible
}

// Title returns the window title.
func (w *Window) Title() string {
	w.guard.Check()
	return w.title
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.guard.Check()
	w.title = title
}

// RequestRedraw marks the window content as stale. A rendering backend
// would schedule a frame here; the headless backend just records the flag.
func (w *Window) RequestRedraw() {
	w.guard.Check()
	w.needsRedraw = true
}

// TakeRedrawRequest reports and clears the redraw flag. Called by whatever
// pumps frames; exposed so tests can observe invalidation.
func (w *Window) TakeRedrawRequest() bool {
	w.guard.Check()
	dirty := w.needsRedraw
	w.needsRedraw = false
	return dirty
}
