// Package monitor describes display geometry and enumeration.
package monitor

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultDPI is the logical DPI of a monitor at 100% scaling.
	DefaultDPI = 96
	// DefaultScaling is the OS display-scaling percent when none is reported.
	DefaultScaling = 100
)

// ErrInconsistentSize reports a Width/Height that disagrees with the bounds.
var ErrInconsistentSize = errors.New("monitor size does not match bounds")

// Info describes one display in virtual-desktop pixel coordinates.
type Info struct {
	MonitorID      int    `json:"monitor_id" yaml:"id"`
	DeviceName     string `json:"device_name" yaml:"name"`
	Left           int    `json:"left" yaml:"left"`
	Top            int    `json:"top" yaml:"top"`
	Right          int    `json:"right" yaml:"right"`
	Bottom         int    `json:"bottom" yaml:"bottom"`
	Width          int    `json:"width" yaml:"width"`
	Height         int    `json:"height" yaml:"height"`
	DPI            int    `json:"dpi" yaml:"dpi"`
	ScalingPercent int    `json:"scaling_percent" yaml:"scaling"`
	Primary        bool   `json:"primary" yaml:"primary"`
}

// New builds an Info with consistent size fields and default DPI/scaling.
func New(id int, name string, left, top, right, bottom int) Info {
	return Info{
		MonitorID:      id,
		DeviceName:     name,
		Left:           left,
		Top:            top,
		Right:          right,
		Bottom:         bottom,
		Width:          right - left,
		Height:         bottom - top,
		DPI:            DefaultDPI,
		ScalingPercent: DefaultScaling,
	}
}

// Validate checks that the redundant size fields agree with the bounds.
func (m Info) Validate() error {
	if m.Width != m.Right-m.Left || m.Height != m.Bottom-m.Top {
		return fmt.Errorf("monitor %d: %w (bounds %dx%d, size %dx%d)",
			m.MonitorID, ErrInconsistentSize, m.Right-m.Left, m.Bottom-m.Top, m.Width, m.Height)
	}
	return nil
}

// Degenerate reports whether the rectangle has no area.
func (m Info) Degenerate() bool {
	return m.Right <= m.Left || m.Bottom <= m.Top
}

// Contains reports whether a pixel lies inside the monitor (right/bottom exclusive).
func (m Info) Contains(x, y int) bool {
	return x >= m.Left && x < m.Right && y >= m.Top && y < m.Bottom
}

// EffectiveDPI returns the DPI, defaulting unset values.
func (m Info) EffectiveDPI() int {
	if m.DPI <= 0 {
		return DefaultDPI
	}
	return m.DPI
}

// EffectiveScaling returns the scaling percent, defaulting unset values.
func (m Info) EffectiveScaling() int {
	if m.ScalingPercent <= 0 {
		return DefaultScaling
	}
	return m.ScalingPercent
}

// SameScale reports whether two monitors share DPI and scaling.
func SameScale(a, b Info) bool {
	return a.EffectiveDPI() == b.EffectiveDPI() && a.EffectiveScaling() == b.EffectiveScaling()
}

// ScalingFromDPI converts a logical DPI into an OS scaling percent.
func ScalingFromDPI(dpi int) int {
	if dpi <= 0 {
		return DefaultScaling
	}
	return dpi * 100 / DefaultDPI
}

// DPIFromPhysical derives a DPI from a pixel width and the physical width in
// millimetres. Outputs that do not report a physical size get DefaultDPI.
func DPIFromPhysical(widthPx, widthMM int) int {
	if widthPx <= 0 || widthMM <= 0 {
		return DefaultDPI
	}
	return int(math.Round(float64(widthPx) * 25.4 / float64(widthMM)))
}

// FindByID returns the monitor matching the given id.
func FindByID(list []Info, id int) (Info, bool) {
	for _, m := range list {
		if m.MonitorID == id {
			return m, true
		}
	}
	return Info{}, false
}

// Equal reports whether two monitor lists describe the same layout in order.
func Equal(a, b []Info) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
