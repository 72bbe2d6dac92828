//go:build !windows && !linux

// Package monitor describes display geometry and enumeration.
package monitor

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// ListMonitors returns the active display bounds. The first display is treated as primary.
func ListMonitors() ([]Info, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	list := make([]Info, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		m := New(i, fmt.Sprintf("display-%d", i), b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
		m.Primary = i == 0
		list = append(list, m)
	}
	return list, nil
}
