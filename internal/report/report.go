// Package report renders coverage results for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/frudas24/edgewrap/internal/monitor"
	"github.com/frudas24/edgewrap/internal/topology"
)

const labelWidth = 18

// Styles holds the lipgloss styles used by the renderers.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	OK    lipgloss.Style
	Bad   lipgloss.Style
	Dim   lipgloss.Style
	Box   lipgloss.Style
}

// DefaultStyles returns colored styles for interactive terminals.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
	}
}

// PlainStyles returns styles that leave text untouched, for pipes and logs.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Label: plain, OK: plain, Bad: plain, Dim: plain, Box: plain}
}

// stylesFor picks colored or plain styles.
func stylesFor(styled bool) Styles {
	if styled {
		return DefaultStyles()
	}
	return PlainStyles()
}

// Render formats a coverage report.
func Render(r topology.Report, styled bool) string {
	s := stylesFor(styled)
	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("Edge coverage (%s, %s)", r.Algorithm, r.WrapMode)))
	b.WriteString("\n")
	writeRow(&b, s, "Total edge length", fmt.Sprintf("%d px", r.TotalEdgeLength))
	writeRow(&b, s, "Covered", fmt.Sprintf("%d px", r.CoveredLength))
	writeRow(&b, s, "Uncovered", fmt.Sprintf("%d px", r.UncoveredLength))
	writeRow(&b, s, "Coverage", fmt.Sprintf("%.1f%%", r.CoveragePercent))
	if r.IsFullyCovered {
		writeRow(&b, s, "Status", s.OK.Render("fully covered"))
	} else {
		writeRow(&b, s, "Status", s.Bad.Render(fmt.Sprintf("%d problem areas", len(r.ProblemAreas))))
		for _, area := range r.ProblemAreas {
			b.WriteString("  - ")
			b.WriteString(s.Dim.Render(area))
			b.WriteString("\n")
		}
	}
	return frame(s, b.String(), styled)
}

// RenderComparison formats the old and new algorithms side by side.
func RenderComparison(c topology.Comparison, styled bool) string {
	s := stylesFor(styled)
	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("Algorithm comparison (%s)", c.New.WrapMode)))
	b.WriteString("\n")
	writeRow(&b, s, "", fmt.Sprintf("%12s %12s", c.Old.Algorithm, c.New.Algorithm))
	writeRow(&b, s, "Covered", fmt.Sprintf("%12d %12d", c.Old.CoveredLength, c.New.CoveredLength))
	writeRow(&b, s, "Uncovered", fmt.Sprintf("%12d %12d", c.Old.UncoveredLength, c.New.UncoveredLength))
	writeRow(&b, s, "Coverage", fmt.Sprintf("%11.1f%% %11.1f%%", c.Old.CoveragePercent, c.New.CoveragePercent))
	writeRow(&b, s, "Problem areas", fmt.Sprintf("%12d %12d", len(c.Old.ProblemAreas), len(c.New.ProblemAreas)))
	improvement := fmt.Sprintf("%d px", c.Improvement)
	switch {
	case c.Improvement > 0:
		improvement = s.OK.Render(improvement)
	case c.Improvement < 0:
		improvement = s.Bad.Render(improvement)
	}
	writeRow(&b, s, "Dead zone removed", improvement)
	return frame(s, b.String(), styled)
}

// RenderLayout lists monitors and their outer edges.
func RenderLayout(monitors []monitor.Info, edges []topology.Edge, styled bool) string {
	s := stylesFor(styled)
	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("%d monitors, %d outer edges", len(monitors), len(edges))))
	b.WriteString("\n")
	for _, m := range monitors {
		line := fmt.Sprintf("%d %s (%d,%d)-(%d,%d) %dx%d @%d%%",
			m.MonitorID, m.DeviceName, m.Left, m.Top, m.Right, m.Bottom, m.Width, m.Height, m.EffectiveScaling())
		if m.Primary {
			line += " primary"
		}
		b.WriteString(line)
		b.WriteString("\n")
		for _, e := range edges {
			if e.MonitorID != m.MonitorID {
				continue
			}
			b.WriteString("  ")
			b.WriteString(s.Dim.Render(fmt.Sprintf("%s at %d", e, e.Position)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// frame trims the trailing newline and boxes the text when styled.
func frame(s Styles, text string, styled bool) string {
	text = strings.TrimRight(text, "\n")
	if !styled {
		return text
	}
	return s.Box.Render(text)
}

// writeRow writes one label/value line.
func writeRow(b *strings.Builder, s Styles, label, value string) {
	b.WriteString(s.Label.Render(fmt.Sprintf("%-*s", labelWidth, label)))
	b.WriteString(value)
	b.WriteString("\n")
}
