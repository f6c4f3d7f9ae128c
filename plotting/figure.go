// Package plotting turns a connection histogram into a labeled figure and
// presents it as an image or in the terminal.
package plotting

import (
	"math"

	"github.com/activecm/synplot/config"
	"github.com/activecm/synplot/histogram"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// rangeMargin is the fraction of the data span added on both sides of the x axis
const rangeMargin = 0.05

type (
	// Figure is a backend independent description of the chart
	Figure struct {
		Title     string
		XLabel    string
		YLabel    string
		Width     int
		Height    int
		Histogram *histogram.Histogram
		Bars      BarStyle
		Markers   []Marker
	}

	// BarStyle controls how the histogram bars are drawn
	BarStyle struct {
		Label string
		Color drawing.Color
		Alpha float64
	}

	// Marker is a dashed vertical reference line at a fixed x position
	Marker struct {
		X     float64
		Label string
		Color drawing.Color
	}
)

// NewFigure assembles the figure for h using the labels, colors and marker
// positions from the config. Nothing in the figure other than the bars
// depends on the histogram data.
func NewFigure(conf *config.Config, h *histogram.Histogram) *Figure {
	return &Figure{
		Title:     conf.S.Figure.Title,
		XLabel:    conf.S.Figure.XLabel,
		YLabel:    conf.S.Figure.YLabel,
		Width:     conf.S.Figure.Width,
		Height:    conf.S.Figure.Height,
		Histogram: h,
		Bars: BarStyle{
			Label: conf.S.Histogram.Label,
			Color: conf.R.Colors.Bar,
			Alpha: conf.S.Histogram.Alpha,
		},
		Markers: []Marker{
			{X: conf.S.Markers.StartX, Label: conf.S.Markers.StartLabel, Color: conf.R.Colors.Start},
			{X: conf.S.Markers.EndX, Label: conf.S.Markers.EndLabel, Color: conf.R.Colors.End},
		},
	}
}

// XRange returns the x axis span. It covers the histogram and every marker
// plus a small margin.
func (f *Figure) XRange() (float64, float64) {
	lo, hi := f.Histogram.Range()
	for _, marker := range f.Markers {
		lo = math.Min(lo, marker.X)
		hi = math.Max(hi, marker.X)
	}
	pad := (hi - lo) * rangeMargin
	return lo - pad, hi + pad
}

// YMax returns the top of the y axis. The axis always starts at zero and
// is at least one unit tall so an empty histogram still has a valid range.
func (f *Figure) YMax() float64 {
	max := math.Max(1, float64(f.Histogram.MaxCount()))
	return max * (1 + rangeMargin)
}

// barColor applies the bar transparency to the bar color
func (f *Figure) barColor() drawing.Color {
	alpha := math.Max(0, math.Min(1, f.Bars.Alpha))
	return f.Bars.Color.WithAlpha(uint8(math.Round(alpha * 255)))
}
