package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"reflect"

	"github.com/creasty/defaults"
	yaml "gopkg.in/yaml.v2"
)

type (
	//StaticCfg is the container for other static config sections
	StaticCfg struct {
		Input        InputStaticCfg     `yaml:"Input"`
		Histogram    HistogramStaticCfg `yaml:"Histogram"`
		Markers      MarkersStaticCfg   `yaml:"Markers"`
		Figure       FigureStaticCfg    `yaml:"Figure"`
		Display      DisplayStaticCfg   `yaml:"Display"`
		Filtering    FilteringStaticCfg `yaml:"Filtering"`
		Log          LogStaticCfg       `yaml:"LogConfig"`
		Version      string             `yaml:"Version"`
		ExactVersion string             `yaml:"ExactVersion"`
	}

	//InputStaticCfg controls where connection records are read from
	InputStaticCfg struct {
		DefaultPath string `yaml:"DefaultPath" default:"connections2.txt"`
	}

	//HistogramStaticCfg controls the binning and styling of the histogram bars
	HistogramStaticCfg struct {
		Bins     int     `yaml:"Bins" default:"50"`
		Alpha    float64 `yaml:"Alpha" default:"0.6"`
		Label    string  `yaml:"Label" default:"TCP Connections"`
		BarColor string  `yaml:"BarColor" default:"#1f77b4"`
	}

	//MarkersStaticCfg holds the vertical reference lines drawn over the
	//histogram. The positions are fixed values and are never derived from
	//the loaded records.
	MarkersStaticCfg struct {
		StartX     float64 `yaml:"StartX" default:"20"`
		StartLabel string  `yaml:"StartLabel" default:"Attack Start"`
		StartColor string  `yaml:"StartColor" default:"green"`
		EndX       float64 `yaml:"EndX" default:"120"`
		EndLabel   string  `yaml:"EndLabel" default:"Attack End"`
		EndColor   string  `yaml:"EndColor" default:"blue"`
	}

	//FigureStaticCfg contains the labels and dimensions of the rendered chart
	FigureStaticCfg struct {
		Title  string `yaml:"Title" default:"SYN Flood Attack - Connection Start Times"`
		XLabel string `yaml:"XLabel" default:"Time (seconds)"`
		YLabel string `yaml:"YLabel" default:"Connections"`
		Width  int    `yaml:"Width" default:"1024"`
		Height int    `yaml:"Height" default:"640"`
		Format string `yaml:"Format" default:"png"`
	}

	//DisplayStaticCfg selects the surface the chart is presented on
	DisplayStaticCfg struct {
		Mode string `yaml:"Mode" default:"viewer"`
	}

	//FilteringStaticCfg controls which connection attempts are kept when
	//records are extracted from a packet capture
	FilteringStaticCfg struct {
		AlwaysInclude []string `yaml:"AlwaysInclude"`
		NeverInclude  []string `yaml:"NeverInclude"`
	}

	//LogStaticCfg contains the configuration for logging
	LogStaticCfg struct {
		LogLevel  int    `yaml:"LogLevel" default:"1"`
		LogPath   string `yaml:"LogPath" default:"$HOME/.synplot/logs"`
		LogToFile bool   `yaml:"LogToFile" default:"false"`
	}
)

// loadStaticConfig initializes the static config to its defaults and
// overlays the contents of the config file at cfgPath, if any
func loadStaticConfig(cfgPath string, config *StaticCfg) error {
	// Initialize static config to the default values
	if err := defaults.Set(config); err != nil {
		return err
	}

	if cfgPath != "" {
		cfgFile, err := ioutil.ReadFile(cfgPath)
		if err != nil {
			return err
		}

		// Deserialize the yaml file contents into the static config
		if err := parseStaticConfig(cfgFile, config); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read config: %s\n", err.Error())
			return err
		}
	} else {
		expandConfig(reflect.ValueOf(config).Elem())
	}

	// grab the version constants set by the build process
	config.Version = Version
	config.ExactVersion = ExactVersion

	return nil
}

// parseStaticConfig deserializes yaml data on top of the values already
// present in config and expands environment variables
func parseStaticConfig(cfgFile []byte, config *StaticCfg) error {
	err := yaml.Unmarshal(cfgFile, config)
	if err != nil {
		return err
	}

	// expand env variables, config is a pointer
	// so we have to call elem on the reflect value
	expandConfig(reflect.ValueOf(config).Elem())

	return nil
}
