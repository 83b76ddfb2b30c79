package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/viz"
)

func (m Model) View() string {
	var b strings.Builder

	title := m.styles.TitleText("b r u s h c h a r t")
	b.WriteString(title + "  " + m.styles.Sparkline(m.app.Samples(), max(m.width-30, 0)) + "\n")
	status := fmt.Sprintf("%d samples", len(m.frame.Dots))
	if m.status != "" {
		status += "  " + m.status
	}
	b.WriteString(m.styles.Subtle.Render(status) + "\n")

	canvas := viz.Plot(m.frame, m.cols, m.rows).Render(m.theme)
	plot := strings.TrimSuffix(canvas, "\n")
	if m.zones != nil {
		plot = m.zones.Mark(m.zoneID, plot)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.yAxis(), plot) + "\n")
	b.WriteString(m.xAxis() + "\n")

	b.WriteString(m.childView(m.frame.Child) + "\n")
	b.WriteString(m.help.View(m.keys))

	if m.zones != nil {
		return m.zones.Scan(b.String())
	}
	return b.String()
}

func (m Model) yAxis() string {
	labels := make([]string, m.rows)
	for _, t := range m.frame.YTicks {
		row := int(t.Position) / 4
		if row >= 0 && row < m.rows && labels[row] == "" {
			labels[row] = t.Label
		}
	}

	lines := make([]string, m.rows)
	for i, l := range labels {
		mark := "│"
		if l != "" {
			mark = "┤"
		}
		lines[i] = fmt.Sprintf("%*s%s", axisWidth-1, l, mark)
	}
	return m.styles.Axis.Render(strings.Join(lines, "\n"))
}

func (m Model) xAxis() string {
	line := []rune(strings.Repeat("─", m.cols))
	labels := []rune(strings.Repeat(" ", m.cols+axisWidth))

	next := 0
	for _, t := range m.frame.XTicks {
		col := int(t.Position) / 2
		if col < 0 || col >= m.cols {
			continue
		}
		line[col] = '┬'

		start := axisWidth + col - len(t.Label)/2
		if start < next || start+len(t.Label) > len(labels) {
			continue
		}
		copy(labels[start:], []rune(t.Label))
		next = start + len(t.Label) + 1
	}

	axis := strings.Repeat(" ", axisWidth-1) + "└" + string(line)
	return m.styles.Axis.Render(axis) + "\n" + m.styles.Label.Render(strings.TrimRight(string(labels), " "))
}

func (m Model) childView(v app.ChildView) string {
	sel := v.Selection
	stats := m.styles.Label.Render("selection ") +
		m.styles.Highlight.Render(fmt.Sprintf("[%.2f, %.2f]", sel.Low, sel.High)) +
		m.styles.Label.Render("  count ") + m.styles.Value.Render(fmt.Sprint(v.Count()))
	if !v.Empty() {
		stats += m.styles.Label.Render("  min ") + m.styles.Value.Render(fmt.Sprintf("%g", v.Min)) +
			m.styles.Label.Render("  max ") + m.styles.Value.Render(fmt.Sprintf("%g", v.Max)) +
			m.styles.Label.Render("  mean ") + m.styles.Value.Render(fmt.Sprintf("%.2f", v.Mean))
	}

	var body string
	if v.Count() >= 2 {
		body = asciigraph.Plot(v.Values,
			asciigraph.Height(childLines-5),
			asciigraph.Width(max(m.cols-10, 10)),
			asciigraph.Caption(fmt.Sprintf("samples %d-%d", v.Indices[0], v.Indices[v.Count()-1])),
		)
	} else {
		body = m.styles.Subtle.Render("brush at least two samples to plot them")
	}

	return m.styles.Panel.Width(max(m.width-2, 20)).Render(stats + "\n" + body)
}
