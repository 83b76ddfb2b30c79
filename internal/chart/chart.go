// Package chart renders a line and dot plot with a linked range selector.
//
// The selection lives in index space. The brush lives in pixel space. Every
// redraw keeps the two in agreement unless the redraw was caused by the brush
// itself or happens while a gesture is running, in which case the brush
// already shows what the user is dragging.
package chart

import (
	"github.com/san-kum/brushchart/internal/brush"
	"github.com/san-kum/brushchart/internal/memo"
	"github.com/san-kum/brushchart/internal/resize"
	"github.com/san-kum/brushchart/internal/scale"
	"github.com/san-kum/brushchart/internal/shape"
)

// Selection is an inclusive range of sample indices. Fractional bounds are
// allowed since they come from inverted pixel positions.
type Selection struct {
	Low, High float64
}

// Contains reports whether index i lies in the closed range.
func (s Selection) Contains(i float64) bool {
	return i >= s.Low && i <= s.High
}

type Options struct {
	// Fallback is used until the observer reports a size.
	Fallback resize.Size

	Highlight        string
	Base             string
	EmphasizedRadius float64
	DefaultRadius    float64

	Tension    float64
	CurveSteps int
	TickCount  int
}

func DefaultOptions() Options {
	return Options{
		Fallback:         resize.Size{Width: 600, Height: 150},
		Highlight:        "orange",
		Base:             "black",
		EmphasizedRadius: 4,
		DefaultRadius:    2,
		Tension:          0,
		CurveSteps:       8,
		TickCount:        10,
	}
}

type Dot struct {
	Index      int
	Value      float64
	X, Y       float64
	Radius     float64
	Fill       string
	Emphasized bool
}

type Tick struct {
	Value    float64
	Position float64
	Label    string
}

// Frame is everything one redraw produced.
type Frame[V any] struct {
	Width, Height float64

	Path     string
	Polyline []shape.Point
	Dots     []Dot

	XTicks []Tick
	YTicks []Tick

	// Brush is the pixel extent of the range selector, nil when hidden.
	Brush     *[2]float64
	Selection Selection

	Child V
}

// BrushChart owns the selection state. V is the type the child render
// callback produces.
type BrushChart[V any] struct {
	opts     Options
	observer *resize.Observer
	brush    *brush.Brush
	curve    shape.Cardinal

	// selection is replaced, never mutated, so pointer identity tells
	// drag-driven changes apart from everything else
	selection *Selection
	previous  memo.Previous[*Selection]

	x, y scale.Linear
}

func New[V any](initial Selection, opts Options, observer *resize.Observer) *BrushChart[V] {
	if observer == nil {
		observer = resize.NewObserver()
	}
	c := &BrushChart[V]{
		opts:     opts,
		observer: observer,
		curve:    shape.NewCardinal(opts.Tension),
	}
	c.brush = brush.New(func(ev brush.Event) { c.HandleBrush(ev) })
	c.selection = &initial
	// the first redraw counts as a mount and positions the brush
	c.previous.Update(c.selection)
	return c
}

// Brush exposes the range selector so frontends can feed it pointer input.
func (c *BrushChart[V]) Brush() *brush.Brush {
	return c.brush
}

func (c *BrushChart[V]) Observer() *resize.Observer {
	return c.observer
}

func (c *BrushChart[V]) Selection() Selection {
	return *c.selection
}

// SetSelection replaces the selection from outside the brush, for example a
// reset. The next redraw moves the brush to match.
func (c *BrushChart[V]) SetSelection(sel Selection) {
	if sel.Low > sel.High {
		sel.Low, sel.High = sel.High, sel.Low
	}
	c.selection = &sel
	c.previous.Update(c.selection)
}

// IndexScale is the sample index to x pixel scale of the last redraw.
func (c *BrushChart[V]) IndexScale() scale.Linear {
	return c.x
}

// ValueScale is the sample value to y pixel scale of the last redraw.
func (c *BrushChart[V]) ValueScale() scale.Linear {
	return c.y
}

// HandleBrush converts a brush event into a new selection. Events with an
// empty extent are ignored. It reports whether the selection was replaced.
func (c *BrushChart[V]) HandleBrush(ev brush.Event) bool {
	if ev.Selection == nil || ev.Selection[0] == ev.Selection[1] {
		return false
	}
	c.selection = &Selection{
		Low:  c.x.Invert(ev.Selection[0]),
		High: c.x.Invert(ev.Selection[1]),
	}
	return true
}

// Render performs one redraw of samples and hands the current selection to
// children, whose result is carried in the frame.
func (c *BrushChart[V]) Render(samples []float64, children func(Selection) V) Frame[V] {
	size := c.opts.Fallback
	if d := c.observer.Dimensions(); d != nil {
		size = *d
	}

	c.x = scale.NewLinear(0, float64(max(len(samples)-1, 0)), 0, size.Width)
	c.y = scale.NewLinear(0, maxValue(samples), size.Height, 0)

	sel := *c.selection
	f := Frame[V]{
		Width:     size.Width,
		Height:    size.Height,
		Selection: sel,
	}

	points := make([]shape.Point, len(samples))
	f.Dots = make([]Dot, len(samples))
	for i, v := range samples {
		px, py := c.x.Map(float64(i)), c.y.Map(v)
		points[i] = shape.Point{X: px, Y: py}

		d := Dot{Index: i, Value: v, X: px, Y: py, Radius: c.opts.DefaultRadius, Fill: c.opts.Base}
		if sel.Contains(float64(i)) {
			d.Emphasized = true
			d.Radius = c.opts.EmphasizedRadius
			d.Fill = c.opts.Highlight
		}
		f.Dots[i] = d
	}
	f.Path = c.curve.Path(points)
	f.Polyline = c.curve.Sample(points, c.opts.CurveSteps)

	f.XTicks = ticks(c.x, c.opts.TickCount)
	f.YTicks = ticks(c.y, c.opts.TickCount)

	c.brush.SetExtent(brush.Extent{X0: 0, Y0: 0, X1: size.Width, Y1: size.Height})
	// a running gesture owns the brush until it ends
	prev, _ := c.previous.Value()
	if prev == c.selection && c.brush.State() != brush.Dragging {
		c.brush.Move(&[2]float64{c.x.Map(sel.Low), c.x.Map(sel.High)})
	}
	c.previous.Update(c.selection)
	f.Brush = c.brush.Selection()

	if children != nil {
		f.Child = children(sel)
	}
	return f
}

func ticks(s scale.Linear, count int) []Tick {
	values := s.Ticks(count)
	out := make([]Tick, len(values))
	for i, v := range values {
		out[i] = Tick{Value: v, Position: s.Map(v), Label: scale.FormatTick(v)}
	}
	return out
}

func maxValue(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	m := samples[0]
	for _, v := range samples[1:] {
		m = max(m, v)
	}
	return m
}
