package window

import (
	"fmt"
	"image/color"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/viz"
)

// Margins around the plot in window pixels. The bottom margin holds the
// x axis labels, the child panel and the help line.
const (
	marginLeft   = 48
	marginTop    = 28
	marginRight  = 20
	marginBottom = 120

	// basicfont.Face7x13 cell
	glyphW, glyphH = 7, 13

	childHeight = 48
)

// plotSize is the chart area left inside a window of w x h pixels.
func plotSize(w, h int) (float64, float64) {
	return float64(max(w-marginLeft-marginRight, 1)), float64(max(h-marginTop-marginBottom, 1))
}

// toPlot converts a cursor position to chart-local pixels.
func toPlot(x, y int) (float64, float64) {
	return float64(x - marginLeft), float64(y - marginTop)
}

// dotColor resolves a dot's fill, falling back to the theme.
func dotColor(d chart.Dot, t viz.Theme) color.RGBA {
	if c, ok := viz.Named(d.Fill); ok {
		return viz.RGBA(c)
	}
	if d.Emphasized {
		return viz.RGBA(t.Highlight)
	}
	return viz.RGBA(t.Dot)
}

// translucent returns c at the given straight alpha.
func translucent(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func summary(v app.ChildView) string {
	s := fmt.Sprintf("selection [%.2f, %.2f]  count %d", v.Selection.Low, v.Selection.High, v.Count())
	if !v.Empty() {
		s += fmt.Sprintf("  min %g  max %g  mean %.2f", v.Min, v.Max, v.Mean)
	}
	return s
}

// labelX centres a label of n glyphs on x.
func labelX(x float64, n int) int {
	return int(x) - n*glyphW/2
}
