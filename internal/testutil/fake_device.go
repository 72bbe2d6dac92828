// Package testutil provides fakes shared by tests.
package testutil

import (
	"sync"

	"github.com/frudas24/edgewrap/internal/pointer"
)

// Call records a single injected action.
type Call struct {
	Name string
	X    int
	Y    int
}

// FakeDevice implements pointer.Device. CursorPos replays Positions in order and
// then keeps reporting the last position, which MoveAbs also updates.
type FakeDevice struct {
	mu        sync.Mutex
	Calls     []Call
	Positions [][2]int
	MoveErr   error
	x, y      int
	hasPos    bool
	closed    bool
}

// Ensure FakeDevice implements the interface.
var _ pointer.Device = (*FakeDevice)(nil)

// MoveAbs records an absolute move.
func (f *FakeDevice) MoveAbs(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "MoveAbs", X: x, Y: y})
	if f.MoveErr != nil {
		return f.MoveErr
	}
	f.x, f.y, f.hasPos = x, y, true
	return nil
}

// CursorPos returns the next scripted position.
func (f *FakeDevice) CursorPos() (int, int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Positions) > 0 {
		p := f.Positions[0]
		f.Positions = f.Positions[1:]
		f.x, f.y, f.hasPos = p[0], p[1], true
	}
	return f.x, f.y, f.hasPos
}

// Close marks the device closed.
func (f *FakeDevice) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Moves returns a copy of the recorded calls.
func (f *FakeDevice) Moves() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.Calls...)
}

// Closed reports whether Close was called.
func (f *FakeDevice) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
