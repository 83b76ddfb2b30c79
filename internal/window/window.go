// Package window draws the brush chart in a desktop window with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/brush"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/viz"
)

const helpText = "drag: brush  a: add  r: reset  t: theme  esc: cancel  q: quit"

var face = text.NewGoXFace(basicfont.Face7x13)

// Game implements ebiten.Game around one App.
type Game struct {
	app   *app.App
	theme viz.Theme
	frame chart.Frame[app.ChildView]

	width, height int
}

func New(a *app.App, theme viz.Theme) *Game {
	return &Game{app: a, theme: theme}
}

// Run opens the window and blocks until it closes.
func Run(a *app.App, theme viz.Theme) error {
	cfg := a.Config()
	g := New(a, theme)

	ebiten.SetWindowTitle("brushchart")
	ebiten.SetWindowSize(int(cfg.Chart.Width)+marginLeft+marginRight, int(cfg.Chart.Height)+marginTop+marginBottom)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.app.Chart().Brush().Cancel()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		v := g.app.AddSample()
		log.Printf("added sample %g (%d total)", v, g.app.Len())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.app.ResetSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.theme = viz.NextTheme(g.theme.Name)
	}

	x, y := ebiten.CursorPosition()
	g.pointer(x, y,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	)

	g.frame = g.app.Render()
	return nil
}

// pointer feeds one tick of left button state into the brush.
func (g *Game) pointer(x, y int, pressed, held, released bool) {
	b := g.app.Chart().Brush()
	px, py := toPlot(x, y)

	if pressed {
		b.Press(px, py)
	} else if held && b.State() == brush.Dragging {
		b.Drag(px)
	}
	// a click can press and release within one tick
	if released && b.State() == brush.Dragging {
		b.Release(px)
	}
}

// Layout reports the plot area to the resize observer on every call so the
// chart follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	w, h := plotSize(outsideWidth, outsideHeight)
	if g.app.Observer().Observe(w, h) {
		log.Printf("window resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Draw(screen *ebiten.Image) {
	t := g.theme
	f := g.frame
	screen.Fill(viz.RGBA(t.Background))

	ox, oy := float32(marginLeft), float32(marginTop)
	w, h := float32(f.Width), float32(f.Height)

	g.print(screen, "brushchart", marginLeft, 4)
	g.print(screen, fmt.Sprintf("%d samples", len(f.Dots)), marginLeft+int(w)-12*glyphW, 4)

	if f.Brush != nil {
		b := *f.Brush
		vector.DrawFilledRect(screen, ox+float32(b[0]), oy, float32(b[1]-b[0]), h, translucent(viz.RGBA(t.Brush), 0x50), false)
		vector.StrokeRect(screen, ox+float32(b[0]), oy, float32(b[1]-b[0]), h, 1, viz.RGBA(t.Axis), false)
	}

	axis := viz.RGBA(t.Axis)
	vector.StrokeLine(screen, ox, oy+h, ox+w, oy+h, 1, axis, false)
	vector.StrokeLine(screen, ox, oy, ox, oy+h, 1, axis, false)
	for _, tk := range f.XTicks {
		x := ox + float32(tk.Position)
		vector.StrokeLine(screen, x, oy+h, x, oy+h+4, 1, axis, false)
		g.print(screen, tk.Label, labelX(float64(x), len(tk.Label)), int(oy+h)+4)
	}
	for _, tk := range f.YTicks {
		y := oy + float32(tk.Position)
		vector.StrokeLine(screen, ox-4, y, ox, y, 1, axis, false)
		g.print(screen, tk.Label, marginLeft-6-len(tk.Label)*glyphW, int(y)-glyphH/2)
	}

	line := viz.RGBA(t.Line)
	for i := 1; i < len(f.Polyline); i++ {
		p, q := f.Polyline[i-1], f.Polyline[i]
		vector.StrokeLine(screen, ox+float32(p.X), oy+float32(p.Y), ox+float32(q.X), oy+float32(q.Y), 1.5, line, true)
	}
	for _, d := range f.Dots {
		vector.DrawFilledCircle(screen, ox+float32(d.X), oy+float32(d.Y), float32(d.Radius), dotColor(d, t), true)
	}

	g.drawChild(screen, int(oy+h)+24)
	g.print(screen, helpText, marginLeft, g.height-glyphH-4)
}

// print draws s with its top left corner at (x, y) in the theme's text colour.
func (g *Game) print(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(viz.RGBA(g.theme.Text))
	text.Draw(screen, s, face, op)
}

// drawChild draws the selected samples as a small line plot with their
// summary above it.
func (g *Game) drawChild(screen *ebiten.Image, top int) {
	v := g.frame.Child
	g.print(screen, summary(v), marginLeft, top)
	if v.Count() < 2 {
		return
	}

	ox, oy := float32(marginLeft), float32(top+glyphH+4)
	w := float32(g.frame.Width)
	span := v.Max - v.Min
	yOf := func(val float64) float32 {
		if span == 0 {
			return oy + childHeight/2
		}
		return oy + childHeight - float32((val-v.Min)/span)*childHeight
	}
	step := w / float32(v.Count()-1)
	col := viz.RGBA(g.theme.Highlight)
	for i := 1; i < len(v.Values); i++ {
		vector.StrokeLine(screen, ox+step*float32(i-1), yOf(v.Values[i-1]), ox+step*float32(i), yOf(v.Values[i]), 1, col, true)
	}
}
