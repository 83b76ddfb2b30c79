// Package shape turns point sequences into smooth curves.
package shape

import (
	"strconv"
	"strings"
)

type Point struct {
	X, Y float64
}

// Segment is one piece of a curve. Straight segments leave C1 and C2 unset.
type Segment struct {
	From, C1, C2, To Point
	Straight         bool
}

// Cardinal generates cardinal splines through every input point.
// Tension 0 gives a Catmull-Rom like curve, tension 1 straight lines.
type Cardinal struct {
	k float64
}

func NewCardinal(tension float64) Cardinal {
	return Cardinal{k: (1 - tension) / 6}
}

// Segments returns the cubic pieces joining consecutive points. The first and
// last pieces reuse their own end point as the missing neighbour.
func (c Cardinal) Segments(points []Point) []Segment {
	switch len(points) {
	case 0, 1:
		return nil
	case 2:
		return []Segment{{From: points[0], To: points[1], Straight: true}}
	}

	segs := make([]Segment, 0, len(points)-1)
	n := len(points)
	for i := 0; i < n-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, n-1)]
		if i == 0 {
			p0 = p2
		}
		if i == n-2 {
			p3 = p1
		}
		segs = append(segs, Segment{
			From: p1,
			C1:   Point{p1.X + c.k*(p2.X-p0.X), p1.Y + c.k*(p2.Y-p0.Y)},
			C2:   Point{p2.X + c.k*(p1.X-p3.X), p2.Y + c.k*(p1.Y-p3.Y)},
			To:   p2,
		})
	}
	return segs
}

// Path renders the curve as SVG path data.
func (c Cardinal) Path(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M")
	writePoint(&b, points[0])
	if len(points) == 1 {
		b.WriteString("Z")
		return b.String()
	}

	for _, s := range c.Segments(points) {
		if s.Straight {
			b.WriteString("L")
			writePoint(&b, s.To)
			continue
		}
		b.WriteString("C")
		writePoint(&b, s.C1)
		b.WriteString(",")
		writePoint(&b, s.C2)
		b.WriteString(",")
		writePoint(&b, s.To)
	}
	return b.String()
}

// Sample flattens the curve into a polyline with steps points per segment,
// for renderers that only draw straight lines.
func (c Cardinal) Sample(points []Point, steps int) []Point {
	if len(points) < 2 {
		return append([]Point(nil), points...)
	}
	if steps < 1 {
		steps = 1
	}

	out := []Point{points[0]}
	for _, s := range c.Segments(points) {
		if s.Straight {
			out = append(out, s.To)
			continue
		}
		for i := 1; i <= steps; i++ {
			out = append(out, s.at(float64(i)/float64(steps)))
		}
	}
	return out
}

func (s Segment) at(t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*s.From.X + b*s.C1.X + c*s.C2.X + d*s.To.X,
		Y: a*s.From.Y + b*s.C1.Y + c*s.C2.Y + d*s.To.Y,
	}
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteString(",")
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
}
