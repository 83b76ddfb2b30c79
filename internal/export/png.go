package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/viz"
)

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color, width float64) gochart.Style {
	return gochart.Style{
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    width,
		DotColor:    col,
	}
}

// PNG rasterizes a frame with go-chart. The renderer needs at least two
// samples to build an x range.
func PNG(w io.Writer, f chart.Frame[app.ChildView], t viz.Theme) error {
	if len(f.Dots) < 2 {
		return fmt.Errorf("%w: png needs 2 samples, got %d", ErrTooFewSamples, len(f.Dots))
	}

	n := len(f.Dots)
	xs := make([]float64, n)
	ys := make([]float64, n)
	var baseX, baseY, emphX, emphY []float64
	maxY := 0.0
	for i, d := range f.Dots {
		xs[i], ys[i] = float64(d.Index), d.Value
		maxY = max(maxY, d.Value)
		if d.Emphasized {
			emphX, emphY = append(emphX, xs[i]), append(emphY, ys[i])
		} else {
			baseX, baseY = append(baseX, xs[i]), append(baseY, ys[i])
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	series := []gochart.Series{}

	// brush band first so the data draws on top of it
	if lo, hi := max(f.Selection.Low, 0), min(f.Selection.High, float64(n-1)); lo < hi {
		band := color(t.Brush)
		band.A = 0x60
		series = append(series, gochart.ContinuousSeries{
			Name:    "selection",
			XValues: []float64{lo, hi},
			YValues: []float64{maxY, maxY},
			Style: gochart.Style{
				StrokeColor: drawing.ColorTransparent,
				FillColor:   band,
			},
		})
	}

	series = append(series, gochart.ContinuousSeries{
		Name:    "samples",
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeColor: color(t.Line),
			StrokeWidth: 1.5,
		},
	})
	if len(baseX) > 0 {
		series = append(series, gochart.ContinuousSeries{
			Name:    "base",
			XValues: baseX,
			YValues: baseY,
			Style:   pointStyle(dotColor(f.Dots, false, t), 2*radius(f.Dots, false)),
		})
	}
	if len(emphX) > 0 {
		series = append(series, gochart.ContinuousSeries{
			Name:    "selected",
			XValues: emphX,
			YValues: emphY,
			Style:   pointStyle(dotColor(f.Dots, true, t), 2*radius(f.Dots, true)),
		})
	}

	ch := gochart.Chart{
		Width:  int(f.Width) + marginLeft + marginRight,
		Height: int(f.Height) + marginTop + marginBot,
		Background: gochart.Style{
			FillColor: color(t.Background),
			Padding:   gochart.Box{Top: marginTop, Left: marginLeft, Right: marginRight, Bottom: marginBot},
		},
		Canvas: gochart.Style{FillColor: color(t.Background)},
		XAxis: gochart.XAxis{
			Name:  "index",
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(n - 1)},
			Ticks: goTicks(f.XTicks),
		},
		YAxis: gochart.YAxis{
			Name:  "value",
			Range: &gochart.ContinuousRange{Min: 0, Max: maxY},
			Ticks: goTicks(f.YTicks),
		},
		Series: series,
	}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

func goTicks(ticks []chart.Tick) []gochart.Tick {
	if len(ticks) < 2 {
		return nil
	}
	out := make([]gochart.Tick, len(ticks))
	for i, tk := range ticks {
		out[i] = gochart.Tick{Value: tk.Value, Label: tk.Label}
	}
	return out
}

func color(c lipgloss.Color) drawing.Color {
	rgba := viz.RGBA(c)
	return drawing.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}

// dotColor resolves the fill the chart gave dots of one kind.
func dotColor(dots []chart.Dot, emphasized bool, t viz.Theme) drawing.Color {
	fallback := t.Dot
	if emphasized {
		fallback = t.Highlight
	}
	for _, d := range dots {
		if d.Emphasized != emphasized {
			continue
		}
		if c, ok := viz.Named(d.Fill); ok {
			return color(c)
		}
		break
	}
	return color(fallback)
}

func radius(dots []chart.Dot, emphasized bool) float64 {
	for _, d := range dots {
		if d.Emphasized == emphasized {
			return d.Radius
		}
	}
	return 0
}
