// Package pointer reads and moves the OS cursor.
package pointer

import "errors"

// ErrUnsupported indicates cursor control is not available on this platform.
var ErrUnsupported = errors.New("cursor control is not supported on this platform")

// Injector moves the cursor to an absolute virtual-desktop coordinate.
type Injector interface {
	MoveAbs(x, y int) error
}

// CursorSource reports the current cursor position.
type CursorSource interface {
	CursorPos() (x, y int, ok bool)
}

// Device is a platform cursor backend.
type Device interface {
	Injector
	CursorSource
	Close() error
}
