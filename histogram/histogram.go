// Package histogram bins the record index of a connection table into
// equal-width bins.
package histogram

import (
	"errors"
	"math"
)

// ErrInvalidBinCount is returned when fewer than one bin is requested
var ErrInvalidBinCount = errors.New("number of desired histogram bins must be greater than 0")

// ErrInvalidRange is returned when the upper edge does not lie above the lower edge
var ErrInvalidRange = errors.New("invalid histogram range")

// Histogram holds the bin edges and counts over a set of values.
// Every bin covers [Edges[i], Edges[i+1]) except the last one, which also
// includes its upper edge.
type Histogram struct {
	Edges  []float64
	Counts []int
	Total  int
}

// New bins values into numBins equal-width bins spanning the observed
// range of the values. A single distinct value is widened to a unit range
// centered on it and an empty input spans [0, 1] with all counts at zero.
func New(values []float64, numBins int) (*Histogram, error) {
	if numBins <= 0 {
		return nil, ErrInvalidBinCount
	}

	lo, hi := valueRange(values)

	edges, err := ComputeBins(lo, hi, numBins)
	if err != nil {
		return nil, err
	}

	h := &Histogram{
		Edges:  edges,
		Counts: make([]int, numBins),
	}
	for _, value := range values {
		h.Counts[binIndex(edges, value)]++
		h.Total++
	}
	return h, nil
}

// ComputeBins creates evenly spaced bin edges between lo and hi. The number
// of edges is one more than the number of bins and both endpoints are set
// exactly.
func ComputeBins(lo float64, hi float64, numBins int) ([]float64, error) {
	// ensure that the number of bins is positive
	if numBins <= 0 {
		return nil, ErrInvalidBinCount
	}

	// ensure that the range is valid
	if !(hi > lo) {
		return nil, ErrInvalidRange
	}

	edgeCount := numBins + 1
	step := (hi - lo) / float64(numBins)

	binEdges := make([]float64, edgeCount)
	binEdges[0] = lo
	for i := 1; i < edgeCount-1; i++ {
		binEdges[i] = lo + (float64(i) * step)
	}
	binEdges[edgeCount-1] = hi

	return binEdges, nil
}

func valueRange(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi := values[0], values[0]
	for _, value := range values[1:] {
		lo = math.Min(lo, value)
		hi = math.Max(hi, value)
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

// binIndex finds the bin holding value. The arithmetic guess is corrected
// against the stored edges so values sitting on an edge always land in the
// bin that starts there.
func binIndex(edges []float64, value float64) int {
	numBins := len(edges) - 1
	lo, hi := edges[0], edges[numBins]

	idx := int((value - lo) / (hi - lo) * float64(numBins))
	if idx < 0 {
		idx = 0
	}
	if idx >= numBins {
		idx = numBins - 1
	}

	if idx > 0 && value < edges[idx] {
		idx--
	} else if idx < numBins-1 && value >= edges[idx+1] {
		idx++
	}
	return idx
}

// Bins returns the number of bins
func (h *Histogram) Bins() int {
	return len(h.Counts)
}

// Range returns the lower and upper edge of the histogram
func (h *Histogram) Range() (float64, float64) {
	return h.Edges[0], h.Edges[len(h.Edges)-1]
}

// BinWidth returns the width shared by every bin
func (h *Histogram) BinWidth() float64 {
	lo, hi := h.Range()
	return (hi - lo) / float64(h.Bins())
}

// MaxCount returns the largest bin count
func (h *Histogram) MaxCount() int {
	max := 0
	for _, count := range h.Counts {
		if count > max {
			max = count
		}
	}
	return max
}
