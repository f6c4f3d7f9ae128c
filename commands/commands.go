package commands

import (
	"github.com/urfave/cli"
)

var (
	// below are some prebuilt flags that get used often in various commands

	// configFlag allows users to specify an alternate config file to use
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "Use a given `CONFIG_FILE` when running this command",
		Value: "",
	}

	// humanFlag prints tables instead of CSV
	humanFlag = cli.BoolFlag{
		Name:  "human-readable, H",
		Usage: "Print a report instead of csv",
	}

	// binsFlag overrides the configured number of histogram bins
	binsFlag = cli.IntFlag{
		Name:  "bins, b",
		Usage: "Split the record index range into `N` equal-width bins (0 uses the config value)",
		Value: 0,
	}

	// verboseFlag enables progress output and informational logging
	verboseFlag = cli.BoolFlag{
		Name:  "verbose, v",
		Usage: "Print progress and status information to stderr",
	}

	allCommands []cli.Command
)

// bootstrapCommands simply adds a given command to the allCommands array
func bootstrapCommands(commands ...cli.Command) {
	allCommands = append(allCommands, commands...)
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	return allCommands
}

// fileArg returns the input file named on the command line or the
// configured default
func fileArg(c *cli.Context, defaultPath string) string {
	if path := c.Args().Get(0); path != "" {
		return path
	}
	return defaultPath
}
