package plotting

import (
	"testing"

	"github.com/activecm/synplot/config"
	"github.com/activecm/synplot/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexValues(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return values
}

func testFigure(t *testing.T, n int) (*Figure, histogram.Summary) {
	conf, err := config.LoadTestingConfig()
	require.NoError(t, err)

	values := indexValues(n)
	h, err := histogram.New(values, conf.S.Histogram.Bins)
	require.NoError(t, err)

	summary, err := histogram.Summarize(h, values, conf.S.Markers.StartX, conf.S.Markers.EndX)
	require.NoError(t, err)

	return NewFigure(conf, h), summary
}

func TestFigureLabels(t *testing.T) {
	f, _ := testFigure(t, 200)
	assert.Equal(t, "SYN Flood Attack - Connection Start Times", f.Title)
	assert.Equal(t, "Time (seconds)", f.XLabel)
	assert.Equal(t, "Connections", f.YLabel)
	assert.Equal(t, "TCP Connections", f.Bars.Label)
	assert.Equal(t, 0.6, f.Bars.Alpha)
}

func TestMarkersIndependentOfInput(t *testing.T) {
	for _, n := range []int{0, 1, 5, 200, 5000} {
		f, _ := testFigure(t, n)
		require.Lenf(t, f.Markers, 2, "n=%d", n)
		assert.Equalf(t, 20.0, f.Markers[0].X, "n=%d", n)
		assert.Equalf(t, "Attack Start", f.Markers[0].Label, "n=%d", n)
		assert.Equalf(t, 120.0, f.Markers[1].X, "n=%d", n)
		assert.Equalf(t, "Attack End", f.Markers[1].Label, "n=%d", n)
	}
}

func TestMarkerColors(t *testing.T) {
	f, _ := testFigure(t, 10)
	green, _ := config.ParseColor("green")
	blue, _ := config.ParseColor("blue")
	assert.Equal(t, green, f.Markers[0].Color)
	assert.Equal(t, blue, f.Markers[1].Color)
}

func TestXRangeCoversMarkers(t *testing.T) {
	// the data ends well before the end marker
	f, _ := testFigure(t, 50)
	lo, hi := f.XRange()
	assert.True(t, lo < 0)
	assert.True(t, hi > 120)

	// the data extends past both markers
	f, _ = testFigure(t, 1000)
	lo, hi = f.XRange()
	assert.True(t, lo < 0)
	assert.True(t, hi > 999)
}

func TestYMax(t *testing.T) {
	f, _ := testFigure(t, 0)
	assert.True(t, f.YMax() >= 1)

	f, _ = testFigure(t, 200)
	assert.True(t, f.YMax() >= float64(f.Histogram.MaxCount()))
}

func TestBarColorAlpha(t *testing.T) {
	f, _ := testFigure(t, 10)
	assert.Equal(t, uint8(153), f.barColor().A)
	assert.Equal(t, f.Bars.Color.R, f.barColor().R)
}
