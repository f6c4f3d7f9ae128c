package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"reflect"

	"github.com/activecm/synplot/util"
)

// Version is filled at compile time with the git version of synplot
var Version = "v0.0.0+dev"

// ExactVersion is filled at compile time with the git describe output of synplot
var ExactVersion = "undefined"

const (
	userConfigPath   = ".synplot/config.yaml"
	globalConfigPath = "/etc/synplot/config.yaml"
)

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
	}
)

// LoadConfig initializes a Config struct with values read
// from a config file. The user supplied path takes precedence, followed by
// the per user config and the global config. When no config file can be
// found the built in defaults are used.
func LoadConfig(userConfig string) (*Config, error) {
	cfgPath, err := findConfigFile(userConfig)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := loadStaticConfig(cfgPath, &config.S); err != nil {
		return nil, err
	}

	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}

// findConfigFile returns the config file to load in order of precedence.
// An empty result means no config file is present.
func findConfigFile(userConfig string) (string, error) {
	if userConfig != "" {
		exists, err := util.Exists(userConfig)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", fmt.Errorf("config file %s: %w", userConfig, os.ErrNotExist)
		}
		return userConfig, nil
	}

	candidates := []string{}

	// Get the user's homedir
	usr, err := user.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not get user info: %s\n", err.Error())
	} else {
		candidates = append(candidates, filepath.Join(usr.HomeDir, userConfigPath))
	}

	// If none of the other configs have worked, go for the global config
	candidates = append(candidates, globalConfigPath)

	for _, candidate := range candidates {
		exists, err := util.Exists(candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate, nil
		}
	}
	return "", nil
}

// expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		}
	}
}
