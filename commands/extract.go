package commands

import (
	"io"
	"os"

	"github.com/activecm/synplot/pcapconv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func init() {
	command := cli.Command{
		Name:      "extract",
		Usage:     "Write the connection attempts (SYN without ACK) found in a pcap file as connection records",
		ArgsUsage: "<pcap file>",
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "output, o",
				Usage: "Write the records to `FILE` instead of stdout",
			},
		},
		Action: func(c *cli.Context) error {
			capturePath := c.Args().Get(0)
			if capturePath == "" {
				return cli.NewExitError("Specify a pcap file", -1)
			}

			res, err := initResources(c)
			if err != nil {
				return exitError(err)
			}

			capture, err := os.Open(capturePath)
			if err != nil {
				return exitError(err)
			}
			defer capture.Close()

			filtering := res.Config.R.Filtering
			filter := pcapconv.NewFilter(filtering.AlwaysIncluded, filtering.NeverIncluded)

			outPath := c.String("output")
			if outPath == "" {
				if _, err := pcapconv.Extract(capture, c.App.Writer, filter, res.Log); err != nil {
					return exitError(err)
				}
				return nil
			}

			if err := extractToFile(capture, outPath, filter, res.Log); err != nil {
				return exitError(err)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}

// extractToFile writes the records extracted from capture to outPath. The
// file is closed before returning so a failed flush is reported.
func extractToFile(capture io.Reader, outPath string, filter *pcapconv.Filter, logger *log.Logger) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if _, err := pcapconv.Extract(capture, outFile, filter, logger); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}
