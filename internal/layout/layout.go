// Package layout reads and writes monitor layouts used for simulation and comparison runs.
package layout

import (
	"fmt"

	"github.com/frudas24/edgewrap/internal/monitor"
)

// Monitor is one display as written in a layout file.
type Monitor struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name,omitempty"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	DPI     int    `yaml:"dpi,omitempty"`
	Scaling int    `yaml:"scaling,omitempty"`
	Primary bool   `yaml:"primary,omitempty"`
}

// Layout is a named monitor arrangement.
type Layout struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Monitors    []Monitor `yaml:"monitors"`
}

// File is the on-disk document: one or more layouts.
type File struct {
	Layouts []Layout `yaml:"layouts"`
}

// Info converts a layout monitor to a monitor descriptor.
func (m Monitor) Info() monitor.Info {
	name := m.Name
	if name == "" {
		name = fmt.Sprintf("DISPLAY%d", m.ID+1)
	}
	info := monitor.New(m.ID, name, m.X, m.Y, m.X+m.Width, m.Y+m.Height)
	info.Primary = m.Primary
	if m.DPI > 0 {
		info.DPI = m.DPI
		info.ScalingPercent = monitor.ScalingFromDPI(m.DPI)
	}
	if m.Scaling > 0 {
		info.ScalingPercent = m.Scaling
	}
	return info
}

// Infos converts every monitor in the layout.
func (l Layout) Infos() []monitor.Info {
	out := make([]monitor.Info, 0, len(l.Monitors))
	for _, m := range l.Monitors {
		out = append(out, m.Info())
	}
	return out
}

// FromInfos builds a layout from enumerated monitors.
func FromInfos(name string, list []monitor.Info) Layout {
	l := Layout{Name: name}
	for _, info := range list {
		l.Monitors = append(l.Monitors, Monitor{
			ID:      info.MonitorID,
			Name:    info.DeviceName,
			X:       info.Left,
			Y:       info.Top,
			Width:   info.Width,
			Height:  info.Height,
			DPI:     info.DPI,
			Scaling: info.ScalingPercent,
			Primary: info.Primary,
		})
	}
	return l
}

// Find returns the layout with the given name. An empty name selects the first layout.
func (f File) Find(name string) (Layout, bool) {
	if name == "" && len(f.Layouts) > 0 {
		return f.Layouts[0], true
	}
	for _, l := range f.Layouts {
		if l.Name == name {
			return l, true
		}
	}
	return Layout{}, false
}
