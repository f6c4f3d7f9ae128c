package plotting

import (
	"fmt"
	"io"

	"github.com/activecm/synplot/config"
	"github.com/wcharczuk/go-chart/v2"
)

// markerDash is the stroke pattern of the reference lines
var markerDash = []float64{6.0, 4.0}

// barSeries outlines every bin as a closed step so the filled area below
// the line forms one bar per bin
func (f *Figure) barSeries() chart.ContinuousSeries {
	h := f.Histogram
	xs := make([]float64, 0, 4*h.Bins())
	ys := make([]float64, 0, 4*h.Bins())
	for i, count := range h.Counts {
		lo, hi := h.Edges[i], h.Edges[i+1]
		c := float64(count)
		xs = append(xs, lo, lo, hi, hi)
		ys = append(ys, 0, c, c, 0)
	}

	color := f.barColor()
	return chart.ContinuousSeries{
		Name:    f.Bars.Label,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 1,
			FillColor:   color,
		},
	}
}

// markerSeries draws a marker as a dashed line spanning the whole y axis
func (f *Figure) markerSeries(marker Marker) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    marker.Label,
		XValues: []float64{marker.X, marker.X},
		YValues: []float64{0, f.YMax()},
		Style: chart.Style{
			StrokeColor:     marker.Color,
			StrokeWidth:     2,
			StrokeDashArray: markerDash,
		},
	}
}

// Chart builds the go-chart description of the figure
func (f *Figure) Chart() chart.Chart {
	series := []chart.Series{f.barSeries()}
	for _, marker := range f.Markers {
		series = append(series, f.markerSeries(marker))
	}

	xMin, xMax := f.XRange()
	ch := chart.Chart{
		Title:      f.Title,
		Width:      f.Width,
		Height:     f.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  f.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  f.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: f.YMax()},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// Render encodes the figure as an image in the given format
func (f *Figure) Render(w io.Writer, format config.RenderFormat) error {
	ch := f.Chart()
	switch format {
	case config.FormatPNG:
		return ch.Render(chart.PNG, w)
	case config.FormatSVG:
		return ch.Render(chart.SVG, w)
	}
	return fmt.Errorf("unknown render format %q", format)
}
