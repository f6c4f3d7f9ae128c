package commands

import (
	"github.com/activecm/synplot/printing"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "show-bins",
		Usage:     "Print the histogram bins of a connections file",
		ArgsUsage: "[connections file]",
		Flags: []cli.Flag{
			configFlag,
			binsFlag,
			humanFlag,
			cli.BoolFlag{
				Name:  "json, j",
				Usage: "Print the bins as JSON. Incompatible with --human-readable.",
			},
		},
		Action: func(c *cli.Context) error {
			humanReadable := c.Bool("human-readable")
			asJSON := c.Bool("json")
			if humanReadable && asJSON {
				return cli.NewExitError("--json and --human-readable are incompatible", -1)
			}

			res, err := initResources(c)
			if err != nil {
				return exitError(err)
			}

			result, err := analyze(res, fileArg(c, res.Config.S.Input.DefaultPath), false)
			if err != nil {
				return exitError(err)
			}

			switch {
			case humanReadable:
				err = printing.WriteBinsHuman(c.App.Writer, result.histogram)
			case asJSON:
				err = printing.WriteBinsJSON(c.App.Writer, result.histogram)
			default:
				err = printing.WriteBins(c.App.Writer, result.histogram)
			}
			if err != nil {
				return exitError(err)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}
