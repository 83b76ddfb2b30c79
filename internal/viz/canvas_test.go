package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/shape"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.Set(1, 3)
	if got := c.Grid[0][0]; got != rune(blank|0x1|0x80) {
		t.Errorf("expected %U, got %U", rune(blank|0x1|0x80), got)
	}
	if c.InkAt(0, 0) != InkLine {
		t.Errorf("expected line ink, got %v", c.InkAt(0, 0))
	}

	c.Unset(0, 0)
	c.Unset(1, 3)
	if c.Grid[0][0] != blank {
		t.Errorf("expected blank cell, got %U", c.Grid[0][0])
	}
	if c.InkAt(0, 0) != InkNone {
		t.Error("expected ink cleared with the last pixel")
	}

	// out of bounds is ignored
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
}

func TestInkPriority(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SetInk(0, 0, InkHighlight)
	c.SetInk(1, 1, InkLine)
	if c.InkAt(0, 0) != InkHighlight {
		t.Errorf("expected highlight to win, got %v", c.InkAt(0, 0))
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0, InkLine)
	for col := 0; col < 4; col++ {
		if c.Grid[0][col] != rune(blank|0x1|0x8) {
			t.Errorf("col %d: expected top row set, got %U", col, c.Grid[0][col])
		}
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillCircle(3, 3, 1, InkDot)

	px, py := c.PixelSize()
	count := 0
	for y := 0; y < py; y++ {
		for x := 0; x < px; x++ {
			if c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0 {
				count++
			}
		}
	}
	if count != 5 {
		t.Errorf("expected 5 pixels in a radius 1 disc, got %d", count)
	}
}

func TestShade(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Shade(5, 2)
	for col, want := range []bool{false, true, true, false, false} {
		if c.Shaded(col) != want {
			t.Errorf("col %d: expected shaded=%v", col, want)
		}
	}
	c.Clear()
	if c.Shaded(1) {
		t.Error("clear should drop the shaded band")
	}
}

func TestRenderKeepsGlyphs(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawLine(0, 0, 5, 7, InkLine)
	c.Shade(0, 1)

	out := c.Render(ThemeClassic)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank && !strings.ContainsRune(out, r) {
				t.Errorf("rendered output lost %U", r)
			}
		}
	}
}

func TestPlot(t *testing.T) {
	f := chart.Frame[int]{
		Width:    19,
		Height:   7,
		Polyline: []shape.Point{{X: 0, Y: 7}, {X: 19, Y: 0}},
		Dots: []chart.Dot{
			{Index: 0, X: 0, Y: 7, Radius: 4, Emphasized: true},
			{Index: 1, X: 19, Y: 0, Radius: 2},
		},
		Brush: &[2]float64{0, 6},
	}

	c := Plot(f, 10, 2)
	if c.InkAt(0, 1) != InkHighlight {
		t.Errorf("expected highlighted dot at bottom left, got %v", c.InkAt(0, 1))
	}
	if c.InkAt(9, 0) != InkDot {
		t.Errorf("expected plain dot at top right, got %v", c.InkAt(9, 0))
	}
	if !c.Shaded(3) || c.Shaded(4) {
		t.Error("expected brush band over columns 0-3")
	}
}
