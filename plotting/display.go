package plotting

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/activecm/synplot/config"
	"github.com/activecm/synplot/histogram"
	log "github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

// ImagePrefix starts the name of every image handed to the system viewer
const ImagePrefix = "synplot-"

// Display presents rendered figures on one of the configured surfaces
type Display struct {
	Log *log.Logger

	// Open hands an image file to the system viewer and blocks until the
	// viewer command returns
	Open func(path string) error

	// Terminal runs the interactive terminal view until the user quits
	Terminal func(f *Figure, summary histogram.Summary) error

	// TempDir holds images handed to the system viewer
	TempDir string

	// Name is the base name of the image handed to the system viewer
	Name string
}

// NewDisplay creates a Display using the system viewer and the terminal.
// Viewer images are named after runID.
func NewDisplay(logger *log.Logger, runID string) *Display {
	return &Display{
		Log:      logger,
		Open:     open.Run,
		Terminal: runTerminalView,
		TempDir:  os.TempDir(),
		Name:     ImagePrefix + runID,
	}
}

func runTerminalView(f *Figure, summary histogram.Summary) error {
	return newTerminalView(f, summary).run()
}

// Show renders the figure and presents it according to mode. When output
// is not empty the rendered image is also written there. Rendering happens
// before anything is shown, so a failure never leaves a partial window.
func (d *Display) Show(f *Figure, summary histogram.Summary, mode config.DisplayMode, format config.RenderFormat, output string) error {
	var img bytes.Buffer
	if err := f.Render(&img, format); err != nil {
		d.Log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("Could not render chart")
		return err
	}

	if output != "" {
		if err := ioutil.WriteFile(output, img.Bytes(), 0644); err != nil {
			return err
		}
		d.Log.WithFields(log.Fields{
			"path":   output,
			"format": string(format),
		}).Info("Wrote chart")
	}

	switch mode {
	case config.DisplayNone:
		return nil
	case config.DisplayTerminal:
		return d.Terminal(f, summary)
	case config.DisplayViewer:
		return d.showInViewer(img.Bytes(), format)
	}
	return fmt.Errorf("unknown display mode %s", mode)
}

func (d *Display) showInViewer(img []byte, format config.RenderFormat) error {
	imgPath := filepath.Join(d.TempDir, fmt.Sprintf("%s.%s", d.Name, format))
	d.removeStale(imgPath)

	if err := ioutil.WriteFile(imgPath, img, 0644); err != nil {
		return err
	}

	d.Log.WithFields(log.Fields{
		"path": imgPath,
	}).Debug("Opening chart in system viewer")

	if err := d.Open(imgPath); err != nil {
		d.Log.WithFields(log.Fields{
			"path":  imgPath,
			"error": err.Error(),
		}).Error("Could not open chart viewer")
		return fmt.Errorf("no display available to show %s: %w", imgPath, err)
	}
	return nil
}

// removeStale deletes the images left behind by earlier runs. The opener
// returns before the viewer closes, so an image can only be removed once a
// later run no longer needs the viewer to read it.
func (d *Display) removeStale(keep string) {
	for _, ext := range []config.RenderFormat{config.FormatPNG, config.FormatSVG} {
		matches, err := filepath.Glob(filepath.Join(d.TempDir, fmt.Sprintf("%s*.%s", ImagePrefix, ext)))
		if err != nil {
			continue
		}
		for _, match := range matches {
			if match == keep {
				continue
			}
			if err := os.Remove(match); err != nil {
				d.Log.WithFields(log.Fields{
					"path":  match,
					"error": err.Error(),
				}).Debug("Could not remove stale chart")
			}
		}
	}
}
