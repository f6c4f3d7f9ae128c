package plotting

import (
	"bytes"
	"testing"

	"github.com/activecm/synplot/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
)

func TestChartSeries(t *testing.T) {
	f, _ := testFigure(t, 200)
	ch := f.Chart()

	require.Len(t, ch.Series, 3)
	bars, ok := ch.Series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, "TCP Connections", bars.Name)
	assert.Len(t, bars.XValues, 4*50)

	total := 0.0
	for i := 1; i < len(bars.YValues); i += 4 {
		total += bars.YValues[i]
	}
	assert.Equal(t, 200.0, total)

	start, ok := ch.Series[1].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, "Attack Start", start.Name)
	assert.Equal(t, []float64{20, 20}, start.XValues)
	assert.NotEmpty(t, start.Style.StrokeDashArray)

	end, ok := ch.Series[2].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, "Attack End", end.Name)
	assert.Equal(t, []float64{120, 120}, end.XValues)

	assert.Equal(t, "Time (seconds)", ch.XAxis.Name)
	assert.Equal(t, "Connections", ch.YAxis.Name)
	assert.Len(t, ch.Elements, 1)
}

func TestRenderPNG(t *testing.T) {
	f, _ := testFigure(t, 200)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, config.FormatPNG))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderEmptyHistogram(t *testing.T) {
	f, _ := testFigure(t, 0)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, config.FormatPNG))
	assert.True(t, buf.Len() > 0)
}

func TestRenderSVG(t *testing.T) {
	f, _ := testFigure(t, 200)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, config.FormatSVG))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderUnknownFormat(t *testing.T) {
	f, _ := testFigure(t, 10)
	var buf bytes.Buffer
	assert.Error(t, f.Render(&buf, config.RenderFormat("bmp")))
}
