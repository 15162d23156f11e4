// Package report summarizes batches of sampled scales.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a batch of draws.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`

	// Bins holds histogram counts over [Lo, Hi].
	Lo   float64   `json:"lo"`
	Hi   float64   `json:"hi"`
	Bins []float64 `json:"bins"`
}

// Summarize computes a Summary with the given number of histogram bins over
// [lo, hi]. When lo >= hi the observed min and max are used instead.
func Summarize(xs []float64, bins int, lo, hi float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	if bins < 1 {
		bins = 1
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	if s.Count < 2 {
		// Sample stddev is undefined (NaN) for one value.
		s.StdDev = 0
	}

	if lo >= hi {
		lo, hi = s.Min, s.Max
	}
	if lo == hi {
		s.Lo, s.Hi = lo, hi
		s.Bins = []float64{float64(len(sorted))}
		return s
	}

	// stat.Histogram wants the last divider strictly above the largest value.
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	s.Lo, s.Hi = lo, hi
	s.Bins = stat.Histogram(nil, dividers, clip(sorted, lo, dividers[bins]), nil)
	return s
}

// clip keeps the sorted values in [lo, hi).
func clip(sorted []float64, lo, hi float64) []float64 {
	i := sort.SearchFloat64s(sorted, lo)
	j := sort.SearchFloat64s(sorted, hi)
	return sorted[i:j]
}

// Write renders s as text with a bar per histogram bin.
func Write(w io.Writer, s Summary) error {
	if s.Count == 0 {
		_, err := fmt.Fprintln(w, "no samples")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "count   %d\n", s.Count)
	fmt.Fprintf(&b, "min     %.4f\n", s.Min)
	fmt.Fprintf(&b, "max     %.4f\n", s.Max)
	fmt.Fprintf(&b, "mean    %.4f\n", s.Mean)
	fmt.Fprintf(&b, "stddev  %.4f\n", s.StdDev)
	fmt.Fprintf(&b, "median  %.4f\n", s.Median)

	peak := floats.Max(s.Bins)
	width := (s.Hi - s.Lo) / float64(len(s.Bins))
	for i, c := range s.Bins {
		bar := 0
		if peak > 0 {
			bar = int(c / peak * 40)
		}
		fmt.Fprintf(&b, "[%.4f, %.4f) %7d %s\n",
			s.Lo+float64(i)*width, s.Lo+float64(i+1)*width, int(c), strings.Repeat("#", bar))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
