package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/activecm/synplot/util"
	"github.com/blang/semver"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

//DisplayMode defines the surface a rendered chart is presented on
type DisplayMode int

const (
	//DisplayViewer hands the rendered image to the system image viewer
	DisplayViewer DisplayMode = iota

	//DisplayTerminal draws the histogram in an interactive terminal view
	DisplayTerminal

	//DisplayNone only renders the chart. Useful together with an output file.
	DisplayNone
)

//String returns the config file spelling of the display mode
func (d DisplayMode) String() string {
	switch d {
	case DisplayViewer:
		return "viewer"
	case DisplayTerminal:
		return "terminal"
	case DisplayNone:
		return "none"
	}
	return fmt.Sprintf("DisplayMode(%d)", int(d))
}

//ParseDisplayMode converts a display mode name into a DisplayMode
func ParseDisplayMode(mode string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "viewer", "":
		return DisplayViewer, nil
	case "terminal", "tui":
		return DisplayTerminal, nil
	case "none":
		return DisplayNone, nil
	}
	return DisplayViewer, fmt.Errorf("unknown display mode %q", mode)
}

//RenderFormat is the image encoding used when rendering a chart
type RenderFormat string

const (
	//FormatPNG renders a raster image
	FormatPNG RenderFormat = "png"
	//FormatSVG renders a vector image
	FormatSVG RenderFormat = "svg"
)

//ParseRenderFormat converts a format name into a RenderFormat
func ParseRenderFormat(format string) (RenderFormat, error) {
	switch RenderFormat(strings.ToLower(strings.TrimSpace(format))) {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return FormatPNG, fmt.Errorf("unknown render format %q", format)
}

// namedColors maps the single letter and long color names accepted in the
// config file onto their RGB hex values
var namedColors = map[string]string{
	"b": "0000ff", "blue": "0000ff",
	"g": "008000", "green": "008000",
	"r": "ff0000", "red": "ff0000",
	"c": "00bfbf", "cyan": "00bfbf",
	"m": "bf00bf", "magenta": "bf00bf",
	"y": "bfbf00", "yellow": "bfbf00",
	"k": "000000", "black": "000000",
	"w": "ffffff", "white": "ffffff",
}

//ParseColor converts a color name or a #rrggbb hex string into a drawing.Color
func ParseColor(color string) (drawing.Color, error) {
	color = strings.ToLower(strings.TrimSpace(color))
	if hex, ok := namedColors[color]; ok {
		return drawing.ColorFromHex(hex), nil
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 && len(hex) != 3 {
		return drawing.Color{}, fmt.Errorf("unknown color %q", color)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return drawing.Color{}, fmt.Errorf("unknown color %q", color)
		}
	}
	return drawing.ColorFromHex(hex), nil
}

type (
	//RunningCfg holds configuration options that are parsed at run time
	RunningCfg struct {
		Version   semver.Version
		Display   DisplayMode
		Format    RenderFormat
		Colors    ColorRunningCfg
		Filtering FilteringRunningCfg
	}

	//ColorRunningCfg holds the parsed colors of the chart elements
	ColorRunningCfg struct {
		Bar   drawing.Color
		Start drawing.Color
		End   drawing.Color
	}

	//FilteringRunningCfg holds the parsed subnets of the filtering section
	FilteringRunningCfg struct {
		AlwaysIncluded []*net.IPNet
		NeverIncluded  []*net.IPNet
	}
)

// initRunningConfig uses data in the static config initialize
// the passed in running config
func initRunningConfig(static *StaticCfg, running *RunningCfg) error {
	var err error

	if static.Histogram.Bins <= 0 {
		return errors.New("histogram bin count must be greater than 0")
	}
	if static.Histogram.Alpha < 0 || static.Histogram.Alpha > 1 {
		return errors.New("histogram alpha must be between 0 and 1")
	}
	if static.Figure.Width <= 0 || static.Figure.Height <= 0 {
		return errors.New("figure dimensions must be greater than 0")
	}

	running.Display, err = ParseDisplayMode(static.Display.Mode)
	if err != nil {
		return err
	}

	running.Format, err = ParseRenderFormat(static.Figure.Format)
	if err != nil {
		return err
	}

	if running.Colors.Bar, err = ParseColor(static.Histogram.BarColor); err != nil {
		return err
	}
	if running.Colors.Start, err = ParseColor(static.Markers.StartColor); err != nil {
		return err
	}
	if running.Colors.End, err = ParseColor(static.Markers.EndColor); err != nil {
		return err
	}

	if running.Filtering.AlwaysIncluded, err = util.ParseSubnets(static.Filtering.AlwaysInclude); err != nil {
		return err
	}
	if running.Filtering.NeverIncluded, err = util.ParseSubnets(static.Filtering.NeverInclude); err != nil {
		return err
	}

	running.Version, err = semver.ParseTolerant(static.Version)
	return err
}

// Reinit re-validates the static config after it has been changed by
// command line flags and refreshes the running config
func (c *Config) Reinit() error {
	return initRunningConfig(&c.S, &c.R)
}
