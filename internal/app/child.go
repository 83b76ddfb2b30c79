package app

import (
	"math"

	"github.com/san-kum/brushchart/internal/chart"
)

// ChildView summarizes the samples inside the selection.
type ChildView struct {
	Selection chart.Selection
	Indices   []int
	Values    []float64
	Min       float64
	Max       float64
	Mean      float64
}

func (v ChildView) Count() int {
	return len(v.Indices)
}

func (v ChildView) Empty() bool {
	return len(v.Indices) == 0
}

// Child picks every sample whose index lies in the closed selection.
func Child(samples []float64, sel chart.Selection) ChildView {
	view := ChildView{Selection: sel}
	if len(samples) == 0 {
		return view
	}

	first := max(int(math.Ceil(sel.Low)), 0)
	last := min(int(math.Floor(sel.High)), len(samples)-1)
	if first > last {
		return view
	}

	view.Min, view.Max = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for i := first; i <= last; i++ {
		v := samples[i]
		view.Indices = append(view.Indices, i)
		view.Values = append(view.Values, v)
		view.Min = math.Min(view.Min, v)
		view.Max = math.Max(view.Max, v)
		sum += v
	}
	view.Mean = sum / float64(len(view.Values))
	return view
}
