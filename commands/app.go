package commands

import (
	"github.com/activecm/synplot/config"
	"github.com/blang/semver"
	"github.com/urfave/cli"
)

// NewApp assembles the synplot command line application. Without a
// command the connection file is plotted.
func NewApp() *cli.App {
	// -v belongs to --verbose, so --version only has its long form
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := cli.NewApp()
	app.Name = "synplot"
	app.Usage = "Plot connection start times of a SYN flood capture."
	app.UsageText = "synplot [global options] [connections file]\n   synplot command [command options] [arguments...]"
	app.Version = appVersion()

	// Define commands used with this application
	app.Commands = Commands()

	app.Flags = PlotFlags()
	app.Action = Plot
	return app
}

// appVersion returns the build version in canonical semver form, falling
// back to the raw build string when it does not parse
func appVersion() string {
	version, err := semver.ParseTolerant(config.Version)
	if err != nil {
		return config.Version
	}
	return version.String()
}
