package commands

import (
	"github.com/activecm/synplot/plotting"
	"github.com/urfave/cli"
)

// plotFlags are shared between the plot command and the bare application
var plotFlags = []cli.Flag{
	configFlag,
	binsFlag,
	verboseFlag,
	cli.StringFlag{
		Name:  "display, d",
		Usage: "Present the chart on `SURFACE`: viewer, terminal or none (defaults to the config value)",
	},
	cli.StringFlag{
		Name:  "output, o",
		Usage: "Also write the rendered chart to `FILE`",
	},
	cli.StringFlag{
		Name:  "format, f",
		Usage: "Render the chart as `FORMAT`: png or svg (defaults to the config value)",
	},
}

// PlotFlags returns the flags accepted by the plot command
func PlotFlags() []cli.Flag {
	return plotFlags
}

func init() {
	command := cli.Command{
		Name:      "plot",
		Usage:     "Draw a histogram of connection start times with the attack window marked",
		ArgsUsage: "[connections file]",
		UsageText: "synplot plot [command options] [connections file]\n\n" +
			"The file holds one \"src dst sport dport\" record per line. If no file is\n" +
			"given the configured default (connections2.txt) is used; - reads stdin.",
		Flags:  plotFlags,
		Action: Plot,
	}
	bootstrapCommands(command)
}

// Plot loads the connection file, bins it and presents the chart. It is
// also the action of the application when no command is given.
func Plot(c *cli.Context) error {
	res, err := initResources(c)
	if err != nil {
		return exitError(err)
	}

	if mode := c.String("display"); mode != "" {
		res.Config.S.Display.Mode = mode
	}
	if format := c.String("format"); format != "" {
		res.Config.S.Figure.Format = format
	}
	if err := res.Config.Reinit(); err != nil {
		return exitError(err)
	}

	path := fileArg(c, res.Config.S.Input.DefaultPath)
	result, err := analyze(res, path, c.Bool("verbose"))
	if err != nil {
		return exitError(err)
	}

	figure := plotting.NewFigure(res.Config, result.histogram)
	display := newDisplay(res.Log, res.RunID.String())

	err = display.Show(figure, result.summary, res.Config.R.Display, res.Config.R.Format, c.String("output"))
	if err != nil {
		return exitError(err)
	}
	return nil
}

// newDisplay is swapped out in tests so no viewer is launched
var newDisplay = plotting.NewDisplay
