package commands

import (
	"fmt"

	"github.com/activecm/synplot/resources"
	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

func init() {
	command := cli.Command{
		Name:   "test-config",
		Usage:  "Check the configuration file for validity",
		Flags:  []cli.Flag{configFlag},
		Action: testConfiguration,
	}

	bootstrapCommands(command)
}

// testConfiguration prints out the result of parsing the config file
func testConfiguration(c *cli.Context) error {
	res, err := resources.InitResources(c.String("config"))
	if err != nil {
		return exitError(fmt.Errorf("failed to load config: %w", err))
	}

	staticConfig, err := yaml.Marshal(res.Config.S)
	if err != nil {
		return exitError(err)
	}

	fmt.Fprintf(c.App.Writer, "\n%s\n", string(staticConfig))
	fmt.Fprintf(c.App.Writer, "Display: %s\nFormat: %s\n", res.Config.R.Display, res.Config.R.Format)
	return nil
}
