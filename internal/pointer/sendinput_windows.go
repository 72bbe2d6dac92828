//go:build windows

package pointer

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// WinDevice moves and samples the cursor using WinAPI.
type WinDevice struct{}

// Open returns the Windows cursor backend.
func Open() (Device, error) {
	return &WinDevice{}, nil
}

// Close is a no-op on Windows.
func (w *WinDevice) Close() error {
	return nil
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32) error {
	input := win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:      dx,
			Dy:      dy,
			DwFlags: flags,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), int32(unsafe.Sizeof(input))) != 1 {
		return fmt.Errorf("SendInput failed: %w", syscall.Errno(win.GetLastError()))
	}
	return nil
}
