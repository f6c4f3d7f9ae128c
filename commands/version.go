package commands

import (
	"fmt"

	"github.com/activecm/synplot/config"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:   "version",
		Usage:  "Show synplot version",
		Action: showVersion,
	}

	bootstrapCommands(command)
}

func showVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s version %s (%s)\n", c.App.Name, appVersion(), config.ExactVersion)
	return nil
}
