package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Ink is what a cell was last drawn with. Higher ink wins when a cell is
// shared, so a highlighted dot is never recoloured by the line through it.
type Ink int

const (
	InkNone Ink = iota
	InkAxis
	InkLine
	InkDot
	InkHighlight
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune

	ink   [][]Ink
	shade []bool
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		ink:    make([][]Ink, h),
		shade:  make([]bool, w),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.ink[i] = make([]Ink, w)
	}
	c.Clear()
	return c
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	c.SetInk(x, y, InkLine)
}

func (c *Canvas) SetInk(x, y int, ink Ink) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if ink > c.ink[row][col] {
		c.ink[row][col] = ink
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] == blank {
		c.ink[row][col] = InkNone
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.ink[i][j] = InkNone
		}
	}
	for i := range c.shade {
		c.shade[i] = false
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ink Ink) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetInk(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle sets every pixel within r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int, ink Ink) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.SetInk(cx+x, cy+y, ink)
			}
		}
	}
}

// Shade marks the cell columns covering sub-pixels [x0, x1] as the brush band.
func (c *Canvas) Shade(x0, x1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for col := max(x0/2, 0); col <= x1/2 && col < c.Width; col++ {
		c.shade[col] = true
	}
}

func (c *Canvas) Shaded(col int) bool {
	return col >= 0 && col < c.Width && c.shade[col]
}

func (c *Canvas) InkAt(col, row int) Ink {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return InkNone
	}
	return c.ink[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours the canvas with theme. Runs of cells sharing a style are
// rendered together.
func (c *Canvas) Render(t Theme) string {
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.cellStyleKey(row, col) == c.cellStyleKey(row, start) {
				continue
			}
			b.WriteString(c.cellStyle(row, start, t).Render(string(c.Grid[row][start:col])))
			start = col
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Canvas) cellStyleKey(row, col int) [2]int {
	shaded := 0
	if c.shade[col] {
		shaded = 1
	}
	return [2]int{int(c.ink[row][col]), shaded}
}

func (c *Canvas) cellStyle(row, col int, t Theme) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch c.ink[row][col] {
	case InkAxis:
		s = s.Foreground(t.Axis)
	case InkLine:
		s = s.Foreground(t.Line)
	case InkDot:
		s = s.Foreground(t.Dot)
	case InkHighlight:
		s = s.Foreground(t.Highlight).Bold(true)
	}
	if c.shade[col] {
		s = s.Background(t.Brush)
	}
	return s
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
