//go:build linux

package pointer

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// X11Device moves and samples the cursor through the X server.
type X11Device struct {
	xu *xgbutil.XUtil
}

// Open connects to the X server named by $DISPLAY.
func Open() (Device, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connect failed: %w", err)
	}
	return &X11Device{xu: xu}, nil
}

// Close disconnects from the X server.
func (d *X11Device) Close() error {
	d.xu.Conn().Close()
	return nil
}

// MoveAbs warps the pointer to an absolute root-window coordinate.
func (d *X11Device) MoveAbs(x, y int) error {
	err := xproto.WarpPointerChecked(d.xu.Conn(), xproto.WindowNone, d.xu.RootWin(),
		0, 0, 0, 0, int16(x), int16(y)).Check()
	if err != nil {
		return fmt.Errorf("warp pointer to (%d,%d): %w", x, y, err)
	}
	return nil
}

// CursorPos returns the pointer position relative to the root window.
func (d *X11Device) CursorPos() (int, int, bool) {
	reply, err := xproto.QueryPointer(d.xu.Conn(), d.xu.RootWin()).Reply()
	if err != nil {
		return 0, 0, false
	}
	return int(reply.RootX), int(reply.RootY), true
}
