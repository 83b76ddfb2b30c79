package shape

import (
	"math"
	"testing"
)

func TestPathEdgeCases(t *testing.T) {
	c := NewCardinal(0)

	tests := []struct {
		name   string
		points []Point
		want   string
	}{
		{"empty", nil, ""},
		{"single", []Point{{3, 4}}, "M3,4Z"},
		{"pair", []Point{{0, 10}, {50, 20}}, "M0,10L50,20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Path(tt.points); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPathCubic(t *testing.T) {
	// tension -0.5 gives k = 0.25, which keeps the arithmetic exact
	c := NewCardinal(-0.5)
	got := c.Path([]Point{{0, 0}, {4, 4}, {8, 0}})
	want := "M0,0C0,0,2,4,4,4C6,4,8,0,8,0"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSegmentsPassThroughPoints(t *testing.T) {
	c := NewCardinal(0)
	points := []Point{{0, 10}, {25, 90}, {50, 40}, {75, 60}, {100, 0}}

	segs := c.Segments(points)
	if len(segs) != len(points)-1 {
		t.Fatalf("expected %d segments, got %d", len(points)-1, len(segs))
	}
	for i, s := range segs {
		if s.From != points[i] || s.To != points[i+1] {
			t.Errorf("segment %d: expected %v->%v, got %v->%v", i, points[i], points[i+1], s.From, s.To)
		}
	}

	// interior tangent: C1 of segment 1 follows the p0->p2 chord
	k := 1.0 / 6
	wantC1 := Point{25 + k*(50-0), 90 + k*(40-10)}
	if math.Abs(segs[1].C1.X-wantC1.X) > 1e-9 || math.Abs(segs[1].C1.Y-wantC1.Y) > 1e-9 {
		t.Errorf("expected C1 %v, got %v", wantC1, segs[1].C1)
	}

	if segs[0].C1 != points[0] {
		t.Errorf("first control point should sit on the start, got %v", segs[0].C1)
	}
	if segs[len(segs)-1].C2 != points[len(points)-1] {
		t.Errorf("last control point should sit on the end, got %v", segs[len(segs)-1].C2)
	}
}

func TestSample(t *testing.T) {
	c := NewCardinal(0)
	points := []Point{{0, 0}, {10, 10}, {20, 0}}

	got := c.Sample(points, 4)
	if len(got) != 1+2*4 {
		t.Fatalf("expected 9 points, got %d", len(got))
	}
	if got[0] != points[0] {
		t.Errorf("expected start %v, got %v", points[0], got[0])
	}
	if got[4] != points[1] {
		t.Errorf("expected segment end %v, got %v", points[1], got[4])
	}
	if got[len(got)-1] != points[2] {
		t.Errorf("expected end %v, got %v", points[2], got[len(got)-1])
	}

	if one := c.Sample(points[:1], 4); len(one) != 1 {
		t.Errorf("expected single point passthrough, got %v", one)
	}
}
