package commands

import (
	"os"

	"github.com/activecm/synplot/histogram"
	"github.com/activecm/synplot/parser"
	"github.com/activecm/synplot/resources"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// analysis bundles the products of loading and binning an input file
type analysis struct {
	table     *parser.Table
	histogram *histogram.Histogram
	summary   histogram.Summary
}

// initResources loads the config named by the --config flag and applies
// the command line overrides shared by the plotting commands
func initResources(c *cli.Context) (*resources.Resources, error) {
	res, err := resources.InitResources(c.String("config"))
	if err != nil {
		return nil, err
	}

	if bins := c.Int("bins"); bins != 0 {
		res.Config.S.Histogram.Bins = bins
	}
	if c.Bool("verbose") && res.Log.Level < log.InfoLevel {
		res.Log.Level = log.InfoLevel
	}

	if err := res.Config.Reinit(); err != nil {
		return nil, err
	}
	return res, nil
}

// analyze loads the connection table at path and bins it. The row index of
// every record is used as its time value.
func analyze(res *resources.Resources, path string, verbose bool) (*analysis, error) {
	loader := parser.NewLoader(res.Log)
	if verbose && isatty.IsTerminal(os.Stderr.Fd()) {
		loader.WithProgress(os.Stderr)
	}

	table, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	values := table.Index()
	hist, err := histogram.New(values, res.Config.S.Histogram.Bins)
	if err != nil {
		return nil, err
	}

	markers := res.Config.S.Markers
	summary, err := histogram.Summarize(hist, values, markers.StartX, markers.EndX)
	if err != nil {
		return nil, err
	}

	res.Log.WithFields(log.Fields{
		"path":      path,
		"records":   table.Len(),
		"bins":      hist.Bins(),
		"in_window": summary.InWindow,
	}).Info("Binned connection records")

	return &analysis{table: table, histogram: hist, summary: summary}, nil
}

// exitError converts err into the error urfave/cli exits with
func exitError(err error) error {
	return cli.NewExitError(err.Error(), -1)
}
