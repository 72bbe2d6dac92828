//go:build windows

package pointer

import (
	"fmt"

	"github.com/lxn/win"
)

// MoveAbs moves the cursor to an absolute virtual-desktop coordinate.
func (w *WinDevice) MoveAbs(x, y int) error {
	dx, dy := mapAbsolute(x, y)
	flags := uint32(win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK)
	if err := sendMouseInput(flags, dx, dy); err != nil {
		if win.SetCursorPos(int32(x), int32(y)) {
			return nil
		}
		return fmt.Errorf("move cursor to (%d,%d): %w", x, y, err)
	}
	// SendInput rounds through the 0..65535 range; pin the exact pixel.
	win.SetCursorPos(int32(x), int32(y))
	return nil
}

// CursorPos returns the current cursor position.
func (w *WinDevice) CursorPos() (int, int, bool) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, false
	}
	return int(pt.X), int(pt.Y), true
}

// mapAbsolute converts screen coordinates to the WinAPI absolute range.
func mapAbsolute(x, y int) (int32, int32) {
	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	if vw <= 1 {
		vw = 2
	}
	if vh <= 1 {
		vh = 2
	}
	dx := (int64(x) - int64(vx)) * 65535 / int64(vw-1)
	dy := (int64(y) - int64(vy)) * 65535 / int64(vh-1)
	return int32(dx), int32(dy)
}
