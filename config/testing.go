package config

import (
	"github.com/creasty/defaults"
)

const testConfig = `
Input:
    DefaultPath: connections2.txt
Histogram:
    Bins: 50
    Alpha: 0.6
    Label: TCP Connections
Markers:
    StartX: 20
    EndX: 120
Figure:
    Width: 640
    Height: 480
    Format: png
Display:
    Mode: none
LogConfig:
    LogLevel: 3
    LogPath: null
    LogToFile: false
`

// LoadTestingConfig loads the hard coded testing config
func LoadTestingConfig() (*Config, error) {
	config := &Config{}

	// Initialize static config to the default values
	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	// Deserialize the yaml file contents into the static config
	if err := parseStaticConfig([]byte(testConfig), &config.S); err != nil {
		return nil, err
	}

	config.S.Version = "v0.0.0+testing"
	config.S.ExactVersion = "v0.0.0+testing"

	// Use the static config to initialize the running config
	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}
