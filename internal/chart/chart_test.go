package chart_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/brushchart/internal/brush"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/resize"
)

func emphasized(f chart.Frame[int]) []int {
	var out []int
	for _, d := range f.Dots {
		if d.Emphasized {
			out = append(out, d.Index)
		}
	}
	return out
}

func count(sel chart.Selection) int {
	return int(sel.High-sel.Low) + 1
}

var _ = Describe("BrushChart", func() {
	var (
		observer *resize.Observer
		c        *chart.BrushChart[int]
		samples  []float64
	)

	BeforeEach(func() {
		observer = resize.NewObserver()
		observer.Observe(400, 100)
		c = chart.New[int](chart.Selection{Low: 0, High: 1.5}, chart.DefaultOptions(), observer)
		samples = []float64{10, 20, 30, 40, 50}
	})

	Describe("rendering", func() {
		It("emphasizes the samples inside the initial selection", func() {
			f := c.Render(samples, count)

			Expect(f.Dots).To(HaveLen(5))
			for _, d := range f.Dots[:2] {
				Expect(d.Radius).To(Equal(4.0))
				Expect(d.Fill).To(Equal("orange"))
			}
			for _, d := range f.Dots[2:] {
				Expect(d.Radius).To(Equal(2.0))
				Expect(d.Fill).To(Equal("black"))
			}

			x := c.IndexScale()
			Expect(x.Domain).To(Equal([2]float64{0, 4}))
			Expect(x.Range).To(Equal([2]float64{0, 400}))
		})

		It("inverts the value scale so larger values sit higher", func() {
			f := c.Render(samples, nil)

			Expect(c.ValueScale().Domain).To(Equal([2]float64{0, 50}))
			Expect(f.Dots[4].Y).To(BeNumerically("~", 0, 1e-9))
			Expect(f.Dots[0].Y).To(BeNumerically("~", 80, 1e-9))
		})

		It("draws one dot per sample for any length of two or more", func() {
			for n := 2; n <= 40; n += 7 {
				data := make([]float64, n)
				for i := range data {
					data[i] = float64(i * 3 % 17)
				}
				Expect(c.Render(data, nil).Dots).To(HaveLen(n))
			}
		})

		It("treats both selection bounds as inclusive", func() {
			c.SetSelection(chart.Selection{Low: 1, High: 3})
			f := c.Render(samples, nil)
			Expect(emphasized(f)).To(Equal([]int{1, 2, 3}))
		})

		It("passes the live selection to the child callback", func() {
			var seen chart.Selection
			f := c.Render(samples, func(sel chart.Selection) int {
				seen = sel
				return 42
			})
			Expect(seen).To(Equal(chart.Selection{Low: 0, High: 1.5}))
			Expect(f.Child).To(Equal(42))
		})

		It("positions the brush on the first redraw", func() {
			f := c.Render(samples, nil)
			Expect(f.Brush).NotTo(BeNil())
			Expect(*f.Brush).To(Equal([2]float64{0, 150}))
		})

		It("produces ticks for both axes", func() {
			f := c.Render(samples, nil)
			Expect(f.XTicks).NotTo(BeEmpty())
			Expect(f.XTicks[0].Label).To(Equal("0"))
			Expect(f.XTicks[len(f.XTicks)-1].Position).To(BeNumerically("~", 400, 1e-9))
			Expect(f.YTicks).NotTo(BeEmpty())
			Expect(f.YTicks[0].Position).To(BeNumerically("~", 100, 1e-9))
		})

		It("uses the fallback size until a measurement arrives", func() {
			opts := chart.DefaultOptions()
			opts.Fallback = resize.Size{Width: 300, Height: 60}
			fresh := chart.New[int](chart.Selection{Low: 0, High: 1}, opts, resize.NewObserver())

			f := fresh.Render(samples, nil)
			Expect(f.Width).To(Equal(300.0))
			Expect(f.Height).To(Equal(60.0))
		})
	})

	Describe("degenerate datasets", func() {
		It("renders nothing for an empty sequence without panicking", func() {
			f := c.Render(nil, nil)
			Expect(f.Dots).To(BeEmpty())
			Expect(f.Path).To(BeEmpty())
			Expect(f.Brush).To(BeNil())
		})

		It("centres a single sample", func() {
			f := c.Render([]float64{7}, nil)
			Expect(f.Dots).To(HaveLen(1))
			Expect(f.Dots[0].X).To(Equal(200.0))
			Expect(f.Dots[0].Emphasized).To(BeTrue())
		})
	})

	Describe("data changes", func() {
		It("keeps the selection by index and moves the brush to the new scale", func() {
			first := c.Render(samples, nil)
			Expect(*first.Brush).To(Equal([2]float64{0, 150}))

			samples = append(samples, 60)
			f := c.Render(samples, nil)

			Expect(c.Selection()).To(Equal(chart.Selection{Low: 0, High: 1.5}))
			Expect(emphasized(f)).To(Equal([]int{0, 1}))
			Expect(c.IndexScale().Domain).To(Equal([2]float64{0, 5}))
			Expect((*f.Brush)[0]).To(BeNumerically("~", 0, 1e-9))
			Expect((*f.Brush)[1]).To(BeNumerically("~", 120, 1e-9))
		})
	})

	Describe("brushing", func() {
		BeforeEach(func() {
			c.Render(samples, nil)
		})

		It("converts a dragged pixel extent to indices", func() {
			b := c.Brush()
			Expect(b.Press(200, 50)).To(BeTrue())
			b.Drag(300)

			sel := c.Selection()
			Expect(sel.Low).To(BeNumerically("~", 2, 1e-9))
			Expect(sel.High).To(BeNumerically("~", 3, 1e-9))
		})

		It("round trips any pixel extent through the index scale", func() {
			extents := [][2]float64{{37, 211}, {0.5, 399.5}, {123.25, 124}}
			for _, px := range extents {
				ext := px
				Expect(c.HandleBrush(brush.Event{Phase: brush.PhaseBrush, Selection: &ext})).To(BeTrue())

				sel := c.Selection()
				x := c.IndexScale()
				Expect(x.Map(sel.Low)).To(BeNumerically("~", px[0], 1e-9))
				Expect(x.Map(sel.High)).To(BeNumerically("~", px[1], 1e-9))
			}
		})

		It("ignores empty extents", func() {
			before := c.Selection()
			empty := [2]float64{80, 80}
			Expect(c.HandleBrush(brush.Event{Phase: brush.PhaseStart, Selection: &empty})).To(BeFalse())
			Expect(c.HandleBrush(brush.Event{Phase: brush.PhaseEnd})).To(BeFalse())
			Expect(c.Selection()).To(Equal(before))
		})

		It("does not fight the drag on the redraw it caused", func() {
			b := c.Brush()
			b.Press(200, 50)
			b.Drag(300)
			b.Release(300)

			observer.Observe(800, 100)
			f := c.Render(samples, nil)
			Expect(*f.Brush).To(Equal([2]float64{200, 300}))

			observer.Observe(1000, 100)
			f = c.Render(samples, nil)
			Expect((*f.Brush)[0]).To(BeNumerically("~", 500, 1e-9))
			Expect((*f.Brush)[1]).To(BeNumerically("~", 750, 1e-9))
		})

		It("keeps the user's extent through every redraw of a gesture", func() {
			b := c.Brush()
			b.Press(200, 50)
			for _, x := range []float64{250, 320, 380} {
				b.Drag(x)
				f := c.Render(samples, nil)
				Expect(*f.Brush).To(Equal([2]float64{200, x}))
			}
			b.Release(380)
			f := c.Render(samples, nil)
			Expect(*f.Brush).To(Equal([2]float64{200, 380}))
			Expect(emphasized(f)).To(Equal([]int{2, 3}))
		})

		It("does not snap a fresh press back to the old extent", func() {
			b := c.Brush()
			Expect(b.Press(300, 50)).To(BeTrue())

			f := c.Render(samples, nil)
			Expect(b.State()).To(Equal(brush.Dragging))
			Expect(*f.Brush).To(Equal([2]float64{300, 300}))

			b.Drag(350)
			f = c.Render(samples, nil)
			Expect(*f.Brush).To(Equal([2]float64{300, 350}))
			Expect(c.Selection().Low).To(BeNumerically("~", 3, 1e-9))
		})

		It("holds a moved brush still when data arrives mid-gesture", func() {
			b := c.Brush()
			Expect(b.Press(75, 50)).To(BeTrue())
			c.Render(samples, nil)

			samples = append(samples, 60)
			f := c.Render(samples, nil)
			Expect(*f.Brush).To(Equal([2]float64{0, 150}))

			b.Drag(125)
			Expect(*b.Selection()).To(Equal([2]float64{50, 200}))

			b.Release(125)
			f = c.Render(samples, nil)
			Expect(*f.Brush).To(Equal([2]float64{50, 200}))
		})

		It("leaves the selection alone when a click clears the brush", func() {
			b := c.Brush()
			b.Press(350, 50)
			b.Release(350)

			Expect(c.Selection()).To(Equal(chart.Selection{Low: 0, High: 1.5}))
			Expect(b.Selection()).To(BeNil())

			f := c.Render(append(samples, 5), nil)
			Expect(f.Brush).NotTo(BeNil())
		})
	})

	Describe("external reset", func() {
		It("moves the brush on the next redraw", func() {
			c.Render(samples, nil)
			b := c.Brush()
			b.Press(200, 50)
			b.Release(300)

			c.SetSelection(chart.Selection{Low: 3, High: 1})
			Expect(c.Selection()).To(Equal(chart.Selection{Low: 1, High: 3}))

			f := c.Render(samples, nil)
			Expect(*f.Brush).To(Equal([2]float64{100, 300}))
		})
	})
})
