//go:build windows

// Package monitor describes display geometry and enumeration.
package monitor

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	shcore               = windows.NewLazySystemDLL("shcore.dll")
	procGetDpiForMonitor = shcore.NewProc("GetDpiForMonitor")

	user32                            = windows.NewLazySystemDLL("user32.dll")
	procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")

	dpiAwareOnce sync.Once
	dpiAwareErr  error
)

const (
	// mdtEffectiveDPI is MDT_EFFECTIVE_DPI for GetDpiForMonitor.
	mdtEffectiveDPI          = 0
	// dpiAwarenessPerMonitorV2 is DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 (-4).
	dpiAwarenessPerMonitorV2 = ^uintptr(3)
)

// ensurePerMonitorDPI makes the process per-monitor DPI aware once. Without it
// GetDpiForMonitor reports 96 everywhere and monitor rectangles are virtualized.
// Failure is logged and enumeration continues with whatever Windows reports.
func ensurePerMonitorDPI() error {
	dpiAwareOnce.Do(func() {
		dpiAwareErr = enablePerMonitorDPI()
		if dpiAwareErr != nil {
			log.Printf("monitor: %v", dpiAwareErr)
		}
	})
	return dpiAwareErr
}

// enablePerMonitorDPI calls SetProcessDpiAwarenessContext(PER_MONITOR_AWARE_V2).
func enablePerMonitorDPI() error {
	if procSetProcessDpiAwarenessContext.Find() != nil {
		return errors.New("SetProcessDpiAwarenessContext not available")
	}
	r, _, err := procSetProcessDpiAwarenessContext.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext failed: %w", err)
	}
	return nil
}

// monitorInfoEx mirrors MONITORINFOEXW.
type monitorInfoEx struct {
	win.MONITORINFO
	DeviceName [32]uint16
}

// ListMonitors returns the list of available displays using WinAPI.
func ListMonitors() ([]Info, error) {
	_ = ensurePerMonitorDPI()
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

// enumState collects monitors during EnumDisplayMonitors.
type enumState struct {
	list []Info
}

// enumProc records one monitor and continues the enumeration.
func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info monitorInfoEx
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info.MONITORINFO) {
		return 1
	}

	r := info.RcMonitor
	name := windows.UTF16ToString(info.DeviceName[:])
	if name == "" {
		name = fmt.Sprintf("DISPLAY%d", len(s.list)+1)
	}
	m := New(len(s.list), name, int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
	m.Primary = info.DwFlags&win.MONITORINFOF_PRIMARY != 0
	m.DPI = monitorDPI(hMonitor)
	m.ScalingPercent = ScalingFromDPI(m.DPI)
	s.list = append(s.list, m)
	return 1
}

// monitorDPI returns the effective DPI, falling back to 96 before Windows 8.1.
func monitorDPI(hMonitor win.HMONITOR) int {
	if procGetDpiForMonitor.Find() != nil {
		return DefaultDPI
	}
	var dpiX, dpiY uint32
	r, _, _ := procGetDpiForMonitor.Call(
		uintptr(hMonitor),
		mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if r != 0 || dpiX == 0 {
		return DefaultDPI
	}
	return int(dpiX)
}
