// Package app holds the sample sequence and composes the brush chart with its
// linked child view. Every frontend drives one App.
package app

import (
	"math/rand/v2"
	"time"

	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/config"
	"github.com/san-kum/brushchart/internal/resize"
)

type App struct {
	cfg     *config.Config
	rng     *rand.Rand
	samples []float64
	chart   *chart.BrushChart[ChildView]
}

// New seeds the sequence with cfg.Samples random integers in [0, cfg.MaxValue].
// A zero seed picks one from the clock.
func New(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a := newApp(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	a.samples = make([]float64, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		a.samples = append(a.samples, a.draw())
	}
	return a
}

// NewWithSamples starts from a fixed sequence instead of random data.
func NewWithSamples(cfg *config.Config, samples []float64) *App {
	a := newApp(cfg, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)))
	a.samples = append([]float64(nil), samples...)
	return a
}

// newApp keeps its own copy of cfg so later edits by the caller do not reach
// a running app.
func newApp(cfg *config.Config, rng *rand.Rand) *App {
	cfg = cfg.Clone()
	lo, hi := cfg.SelectionRange()
	return &App{
		cfg:   cfg,
		rng:   rng,
		chart: chart.New[ChildView](chart.Selection{Low: lo, High: hi}, ChartOptions(cfg), resize.NewObserver()),
	}
}

// ChartOptions translates the chart section of the config.
func ChartOptions(cfg *config.Config) chart.Options {
	opts := chart.DefaultOptions()
	opts.Fallback = resize.Size{Width: cfg.Chart.Width, Height: cfg.Chart.Height}
	opts.Tension = cfg.Chart.Tension
	if cfg.Chart.Highlight != "" {
		opts.Highlight = cfg.Chart.Highlight
	}
	if cfg.Chart.Base != "" {
		opts.Base = cfg.Chart.Base
	}
	if cfg.Chart.EmphasizedRadius > 0 {
		opts.EmphasizedRadius = cfg.Chart.EmphasizedRadius
	}
	if cfg.Chart.DefaultRadius > 0 {
		opts.DefaultRadius = cfg.Chart.DefaultRadius
	}
	return opts
}

func (a *App) draw() float64 {
	return float64(a.rng.IntN(a.cfg.MaxValue + 1))
}

// AddSample appends one random integer in [0, MaxValue] and returns it.
func (a *App) AddSample() float64 {
	v := a.draw()
	a.samples = append(a.samples, v)
	return v
}

func (a *App) Samples() []float64 {
	return append([]float64(nil), a.samples...)
}

func (a *App) Len() int {
	return len(a.samples)
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Chart() *chart.BrushChart[ChildView] {
	return a.chart
}

func (a *App) Observer() *resize.Observer {
	return a.chart.Observer()
}

// Render redraws the chart with the child view bound to the live selection.
func (a *App) Render() chart.Frame[ChildView] {
	samples := a.samples
	return a.chart.Render(samples, func(sel chart.Selection) ChildView {
		return Child(samples, sel)
	})
}

// ResetSelection restores the configured initial selection.
func (a *App) ResetSelection() {
	lo, hi := a.cfg.SelectionRange()
	a.chart.SetSelection(chart.Selection{Low: lo, High: hi})
}
