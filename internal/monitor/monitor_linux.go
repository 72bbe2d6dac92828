//go:build linux

// Package monitor describes display geometry and enumeration.
package monitor

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// ListMonitors returns the active CRTCs reported by XRandR.
func ListMonitors() ([]Info, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connect failed: %w", err)
	}
	defer xu.Conn().Close()

	list, err := listCrtcs(xu.Conn(), xu.RootWin())
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return list, nil
}

// listCrtcs converts enabled CRTCs into monitors, numbered in CRTC order.
func listCrtcs(conn *xgb.Conn, root xproto.Window) ([]Info, error) {
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}
	resources, err := randr.GetScreenResources(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(conn, root).Reply(); err == nil {
		primary = reply.Output
	}

	var list []Info
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTCs report no size or no outputs.
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		x := int(crtcInfo.X)
		y := int(crtcInfo.Y)
		m := New(len(list), fmt.Sprintf("Monitor%d", i), x, y, x+int(crtcInfo.Width), y+int(crtcInfo.Height))
		outputInfo, err := randr.GetOutputInfo(conn, crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			m.DeviceName = string(outputInfo.Name)
			if outputInfo.MmWidth > 0 {
				m.DPI = DPIFromPhysical(m.Width, int(outputInfo.MmWidth))
				m.ScalingPercent = ScalingFromDPI(m.DPI)
			}
		}
		for _, out := range crtcInfo.Outputs {
			if primary != 0 && out == primary {
				m.Primary = true
			}
		}
		list = append(list, m)
	}
	return list, nil
}
