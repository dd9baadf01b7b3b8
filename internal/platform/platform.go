// Package platform holds the narrow seam between the interpreter core and a
// windowing backend. The core only needs show/hide registration, a redraw
// request flag, a cooperative event loop and a way to assert UI-goroutine
// confinement; real rendering integration lives behind this seam and out of
// this repository.
package platform

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// ThreadGuard pins an object to the goroutine that created it. All
// goroutine-confined entry points call Check, which panics on a violation
// instead of letting state silently corrupt.
type ThreadGuard struct {
	id uint64
}

// NewThreadGuard captures the calling goroutine as the owner.
func NewThreadGuard() ThreadGuard {
	return ThreadGuard{id: goid()}
}

// Check panics when called from a goroutine other than the owning one.
func (g ThreadGuard) Check() {
	if id := goid(); id != g.id {
		panic(fmt.Sprintf(
			"loom: goroutine-confined object accessed from goroutine %d, owned by goroutine %d; "+
				"use loom.PostEvent to hand work to the UI goroutine", id, g.id))
	}
}

// goid parses the current goroutine id out of the runtime stack header
// ("goroutine N [running]:"). There is no supported API for this; the same
// approach is used by other Go UI toolkits for their debug assertions.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]
	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i > 0 {
		if id, err := strconv.ParseUint(string(header[:i]), 10, 64); err == nil {
			return id
		}
	}
	return 0
}
