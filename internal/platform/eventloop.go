package platform

// The event loop is cooperative and single-threaded: RunEventLoop pumps
// posted events on the calling goroutine until QuitEventLoop is called.
// Nothing here spins a frame clock; rendering backends integrate by posting
// events.

var (
	events = make(chan func(), 128)
	quit   = make(chan struct{}, 1)
)

// PostEvent schedules fn to run on the goroutine that is (or will be)
// running the event loop. Safe to call from any goroutine. Events posted
// while no loop is running are delivered by the next RunEventLoop call.
func PostEvent(fn func()) {
	events <- fn
}

// RunEventLoop processes posted events on the calling goroutine until
// QuitEventLoop is called. A quit requested before the loop starts makes it
// return as soon as it is entered.
func RunEventLoop() {
	for {
		select {
		case fn := <-events:
			fn()
		case <-quit:
			return
		}
	}
}

// QuitEventLoop asks a running event loop to return after the event it is
// currently processing. Safe to call from any goroutine; redundant calls
// collapse into one request.
func QuitEventLoop() {
	select {
	case quit <- struct{}{}:
	default:
	}
}
