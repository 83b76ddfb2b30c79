package viz

import (
	"math"

	"github.com/san-kum/brushchart/internal/chart"
)

// Plot rasterizes a chart frame whose pixel space is the canvas sub-pixel
// grid. Dot radii are halved since a braille dot is already coarse.
func Plot[V any](f chart.Frame[V], cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)

	if f.Brush != nil {
		c.Shade(round(f.Brush[0]), round(f.Brush[1]))
	}

	for i := 1; i < len(f.Polyline); i++ {
		p, q := f.Polyline[i-1], f.Polyline[i]
		c.DrawLine(round(p.X), round(p.Y), round(q.X), round(q.Y), InkLine)
	}

	for _, d := range f.Dots {
		ink := InkDot
		if d.Emphasized {
			ink = InkHighlight
		}
		c.FillCircle(round(d.X), round(d.Y), int(d.Radius/2), ink)
	}
	return c
}

func round(v float64) int {
	return int(math.Round(v))
}
