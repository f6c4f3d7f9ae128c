package commands

import (
	"github.com/activecm/synplot/printing"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "summary",
		Usage:     "Print descriptive statistics of the histogram bins and the attack window",
		ArgsUsage: "[connections file]",
		Flags: []cli.Flag{
			configFlag,
			binsFlag,
			humanFlag,
		},
		Action: func(c *cli.Context) error {
			res, err := initResources(c)
			if err != nil {
				return exitError(err)
			}

			result, err := analyze(res, fileArg(c, res.Config.S.Input.DefaultPath), false)
			if err != nil {
				return exitError(err)
			}

			if c.Bool("human-readable") {
				err = printing.WriteSummaryHuman(c.App.Writer, result.summary)
			} else {
				err = printing.WriteSummary(c.App.Writer, result.summary)
			}
			if err != nil {
				return exitError(err)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}
