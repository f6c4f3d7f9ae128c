package histogram

import (
	"github.com/montanaflynn/stats"
)

// Summary describes the distribution of the bin counts of a histogram and
// how many records fall inside a marked window
type Summary struct {
	Records       int
	Bins          int
	BinWidth      float64
	Mean          float64
	Median        float64
	StdDev        float64
	MaxCount      int
	PeakBin       int
	PeakStart     float64
	PeakEnd       float64
	WindowStart   float64
	WindowEnd     float64
	InWindow      int
	OutsideWindow int
}

// Summarize computes descriptive statistics for h. values must be the data
// the histogram was built from; records in [windowStart, windowEnd] are
// counted as inside the window.
func Summarize(h *Histogram, values []float64, windowStart float64, windowEnd float64) (Summary, error) {
	if windowStart > windowEnd {
		windowStart, windowEnd = windowEnd, windowStart
	}

	summary := Summary{
		Records:     h.Total,
		Bins:        h.Bins(),
		BinWidth:    h.BinWidth(),
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}

	data := stats.LoadRawData(h.Counts)

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}
	if summary.StdDev, err = stats.StandardDeviation(data); err != nil {
		return summary, err
	}

	// the first bin reaching the maximum is reported as the peak
	for i, count := range h.Counts {
		if count > summary.MaxCount {
			summary.MaxCount = count
			summary.PeakBin = i
		}
	}
	summary.PeakStart = h.Edges[summary.PeakBin]
	summary.PeakEnd = h.Edges[summary.PeakBin+1]

	for _, value := range values {
		if value >= windowStart && value <= windowEnd {
			summary.InWindow++
		}
	}
	summary.OutsideWindow = len(values) - summary.InWindow

	return summary, nil
}
