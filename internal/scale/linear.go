// Package scale maps continuous data values onto pixel positions and back.
package scale

import (
	"math"
	"strconv"
)

const defaultTickCount = 10

// Linear is an invertible linear map from Domain onto Range.
//
// A degenerate domain (both ends equal) maps every value to the middle of
// the range, and a degenerate range inverts every position to the middle of
// the domain. Neither case divides by zero.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{
		Domain: [2]float64{d0, d1},
		Range:  [2]float64{r0, r1},
	}
}

// Map converts a domain value to its range position.
func (s Linear) Map(v float64) float64 {
	return interpolate(s.Domain, s.Range, v)
}

// Invert converts a range position back to its domain value.
func (s Linear) Invert(px float64) float64 {
	return interpolate(s.Range, s.Domain, px)
}

// Degenerate reports whether the domain collapses to a single point.
func (s Linear) Degenerate() bool {
	return s.Domain[0] == s.Domain[1]
}

func interpolate(from, to [2]float64, v float64) float64 {
	span := from[1] - from[0]
	t := 0.5
	if span != 0 {
		t = (v - from[0]) / span
	}
	return to[0] + t*(to[1]-to[0])
}

// Ticks returns roughly count human friendly values spanning the domain.
// Steps are 1, 2 or 5 times a power of ten.
func (s Linear) Ticks(count int) []float64 {
	if count <= 0 {
		count = defaultTickCount
	}
	if s.Degenerate() {
		return []float64{s.Domain[0]}
	}
	start, stop := s.Domain[0], s.Domain[1]
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) || math.IsNaN(inc) {
		return nil
	}

	var ticks []float64
	if inc > 0 {
		lo, hi := math.Ceil(start/inc), math.Floor(stop/inc)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i*inc)
		}
	} else {
		// negative increments are reciprocals; dividing keeps 0.1 steps exact
		inc = -inc
		lo, hi := math.Ceil(start*inc), math.Floor(stop*inc)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i/inc)
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the tick step, or the negated reciprocal of the
// step when it is smaller than one.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// FormatTick renders a tick value without trailing zeros.
func FormatTick(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
