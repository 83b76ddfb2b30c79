package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/chart"
)

type FrameData struct {
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Samples   []float64    `json:"samples"`
	Selection [2]float64   `json:"selection"`
	Brush     *[2]float64  `json:"brush"`
	Selected  SelectedData `json:"selected"`
}

type SelectedData struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
	Count   int       `json:"count"`
	Min     *float64  `json:"min,omitempty"`
	Max     *float64  `json:"max,omitempty"`
	Mean    *float64  `json:"mean,omitempty"`
}

func NewFrameData(f chart.Frame[app.ChildView]) FrameData {
	data := FrameData{
		Width:     f.Width,
		Height:    f.Height,
		Samples:   make([]float64, len(f.Dots)),
		Selection: [2]float64{f.Selection.Low, f.Selection.High},
		Brush:     f.Brush,
		Selected: SelectedData{
			Indices: append([]int{}, f.Child.Indices...),
			Values:  append([]float64{}, f.Child.Values...),
			Count:   f.Child.Count(),
		},
	}
	for i, d := range f.Dots {
		data.Samples[i] = d.Value
	}
	if !f.Child.Empty() {
		v := f.Child
		data.Selected.Min, data.Selected.Max, data.Selected.Mean = &v.Min, &v.Max, &v.Mean
	}
	return data
}

// JSON writes the frame's samples, selection and selected summary.
func JSON(w io.Writer, f chart.Frame[app.ChildView]) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewFrameData(f))
}

// CSV writes one row per sample with its pixel position and selection flag.
func CSV(w io.Writer, f chart.Frame[app.ChildView]) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", "value", "x", "y", "selected"}); err != nil {
		return err
	}
	for _, d := range f.Dots {
		row := []string{
			strconv.Itoa(d.Index),
			strconv.FormatFloat(d.Value, 'f', -1, 64),
			strconv.FormatFloat(d.X, 'f', 6, 64),
			strconv.FormatFloat(d.Y, 'f', 6, 64),
			strconv.FormatBool(d.Emphasized),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
