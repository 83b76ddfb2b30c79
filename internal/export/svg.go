package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/viz"
)

const (
	tickSize    = 6
	marginLeft  = 40
	marginRight = 20
	marginTop   = 20
	marginBot   = 30
)

// FrameToSVG renders a frame as a standalone SVG document with room for the
// axes around the plot area.
func FrameToSVG(f chart.Frame[app.ChildView], t viz.Theme) string {
	w := f.Width + marginLeft + marginRight
	h := f.Height + marginTop + marginBot

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">
<rect width="100%%" height="100%%" fill="%s"/>
<g transform="translate(%d,%d)">
`, num(w), num(h), num(w), num(h), t.Background, marginLeft, marginTop))
	writePlot(&sb, f, t)
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// ChartElement renders the plot as an inline <svg> sized to the frame. Axes
// overflow the element, so the host needs padding around it.
func ChartElement(f chart.Frame[app.ChildView], t viz.Theme) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg class="brushchart" width="%s" height="%s" style="overflow: visible">
`, num(f.Width), num(f.Height)))
	writePlot(&sb, f, t)
	sb.WriteString("</svg>")
	return sb.String()
}

func writePlot(sb *strings.Builder, f chart.Frame[app.ChildView], t viz.Theme) {
	writeXAxis(sb, f, t)
	writeYAxis(sb, f, t)

	if f.Path != "" {
		sb.WriteString(fmt.Sprintf(`<path class="myLine" fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, t.Line, f.Path))
	}
	for _, d := range f.Dots {
		sb.WriteString(fmt.Sprintf(`<circle class="myDot" data-index="%d" cx="%s" cy="%s" r="%s" fill="%s"/>
`, d.Index, num(d.X), num(d.Y), num(d.Radius), dotFill(d, t)))
	}

	writeBrush(sb, f, t)
}

func writeXAxis(sb *strings.Builder, f chart.Frame[app.ChildView], t viz.Theme) {
	sb.WriteString(fmt.Sprintf(`<g class="x-axis" transform="translate(0,%s)" fill="none" font-size="10" text-anchor="middle">
<path class="domain" stroke="%s" d="M0,%dH%sV%d"/>
`, num(f.Height), t.Axis, tickSize, num(f.Width), tickSize))
	for _, tk := range f.XTicks {
		sb.WriteString(fmt.Sprintf(`<g class="tick" transform="translate(%s,0)"><line stroke="%s" y2="%d"/><text fill="%s" y="9" dy="0.71em">%s</text></g>
`, num(tk.Position), t.Axis, tickSize, t.Text, tk.Label))
	}
	sb.WriteString("</g>\n")
}

func writeYAxis(sb *strings.Builder, f chart.Frame[app.ChildView], t viz.Theme) {
	sb.WriteString(fmt.Sprintf(`<g class="y-axis" fill="none" font-size="10" text-anchor="end">
<path class="domain" stroke="%s" d="M-%d,%sH0V0H-%d"/>
`, t.Axis, tickSize, num(f.Height), tickSize))
	for _, tk := range f.YTicks {
		sb.WriteString(fmt.Sprintf(`<g class="tick" transform="translate(0,%s)"><line stroke="%s" x2="-%d"/><text fill="%s" x="-9" dy="0.32em">%s</text></g>
`, num(tk.Position), t.Axis, tickSize, t.Text, tk.Label))
	}
	sb.WriteString("</g>\n")
}

func writeBrush(sb *strings.Builder, f chart.Frame[app.ChildView], t viz.Theme) {
	sb.WriteString(fmt.Sprintf(`<g class="brush" fill="none">
<rect class="overlay" x="0" y="0" width="%s" height="%s" fill="transparent" pointer-events="all"/>
`, num(f.Width), num(f.Height)))
	if f.Brush != nil {
		x0, x1 := f.Brush[0], f.Brush[1]
		sb.WriteString(fmt.Sprintf(`<rect class="selection" x="%s" y="0" width="%s" height="%s" fill="%s" fill-opacity="0.3" stroke="%s"/>
`, num(x0), num(x1-x0), num(f.Height), t.Brush, t.Axis))
		for _, h := range []struct {
			side string
			x    float64
		}{{"w", x0}, {"e", x1}} {
			sb.WriteString(fmt.Sprintf(`<rect class="handle handle--%s" x="%s" y="0" width="%d" height="%s" fill="transparent"/>
`, h.side, num(h.x-3), 6, num(f.Height)))
		}
	}
	sb.WriteString("</g>\n")
}

// ChildToSVG draws the selected values as a small line chart. It returns an
// empty string when fewer than two values are selected.
func ChildToSVG(view app.ChildView, width, height int, strokeColor string) string {
	if len(view.Values) < 2 {
		return ""
	}

	minX, maxX := float64(view.Indices[0]), float64(view.Indices[len(view.Indices)-1])
	minY, maxY := view.Min, view.Max

	// padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg class="child" xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range view.Values {
		x := (float64(view.Indices[i]) - minX) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, one circle per set dot,
// coloured by the ink of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64, t viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, t.Background))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for col := 0; col < canvas.Width; col++ {
		if canvas.Shaded(col) {
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="0" width="%.1f" height="%.0f" fill="%s"/>
`, float64(col)*scale*2, scale*2, height, t.Brush))
		}
	}

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := inkColor(canvas.InkAt(col, row), t)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func inkColor(ink viz.Ink, t viz.Theme) string {
	switch ink {
	case viz.InkHighlight:
		return string(t.Highlight)
	case viz.InkDot:
		return string(t.Dot)
	case viz.InkAxis:
		return string(t.Axis)
	}
	return string(t.Line)
}

// dotFill prefers the fill the chart chose and falls back to the theme when
// it is empty.
func dotFill(d chart.Dot, t viz.Theme) string {
	if d.Fill != "" {
		return d.Fill
	}
	if d.Emphasized {
		return string(t.Highlight)
	}
	return string(t.Dot)
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
