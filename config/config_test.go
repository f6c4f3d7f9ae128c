package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestStruct struct {
	InertString       string
	ExpandString      string
	ExpandStringSlice []string
	Inner             TestStructInner
}

type TestStructInner struct {
	InertString       string
	ExpandString      string
	ExpandStringSlice []string
}

func TestExpandConfig(t *testing.T) {
	inert := "DO_NOT_CHANGE"
	outerEnvVarName := "_OUTER_ENV_VAR"
	outerEnvVarValue := "OUTER_VALUE"
	innerEnvVarName := "_INNER_ENV_VAR"
	innerEnvVarValue := "INNER_VALUE"
	test := TestStruct{
		InertString:       inert,
		ExpandString:      "$" + outerEnvVarName,
		ExpandStringSlice: []string{"$" + outerEnvVarName, inert},
	}
	innerStruct := TestStructInner{
		InertString:       inert,
		ExpandString:      "$" + innerEnvVarName,
		ExpandStringSlice: []string{"$" + innerEnvVarName, inert},
	}
	test.Inner = innerStruct

	os.Setenv(outerEnvVarName, outerEnvVarValue)
	os.Setenv(innerEnvVarName, innerEnvVarValue)
	assert.Equal(t, outerEnvVarValue, os.ExpandEnv("$"+outerEnvVarName))
	assert.Equal(t, innerEnvVarValue, os.ExpandEnv("$"+innerEnvVarName))
	expandConfig(reflect.ValueOf(&test).Elem())

	assert.Equal(t, inert, test.InertString)
	assert.Equal(t, outerEnvVarValue, test.ExpandString)
	assert.Equal(t, []string{outerEnvVarValue, inert}, test.ExpandStringSlice)
	assert.Equal(t, innerEnvVarValue, test.Inner.ExpandString)
	os.Unsetenv(outerEnvVarName)
	os.Unsetenv(innerEnvVarName)
}

func TestLoadConfigMissingUserFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadConfigUserFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := []byte("Histogram:\n    Bins: 25\nDisplay:\n    Mode: terminal\n")
	require.NoError(t, ioutil.WriteFile(cfgPath, cfg, 0644))

	conf, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 25, conf.S.Histogram.Bins)
	assert.Equal(t, DisplayTerminal, conf.R.Display)
	// untouched sections keep their defaults
	assert.Equal(t, 0.6, conf.S.Histogram.Alpha)
	assert.Equal(t, 20.0, conf.S.Markers.StartX)
	assert.Equal(t, 120.0, conf.S.Markers.EndX)
	assert.Equal(t, "connections2.txt", conf.S.Input.DefaultPath)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		msg string
		cfg string
	}{
		{"zero bins", "Histogram:\n    Bins: 0\n"},
		{"alpha out of range", "Histogram:\n    Alpha: 1.5\n"},
		{"unknown display", "Display:\n    Mode: hologram\n"},
		{"unknown format", "Figure:\n    Format: gif\n"},
		{"bad color", "Markers:\n    StartColor: \"#zzzzzz\"\n"},
		{"bad width", "Figure:\n    Width: -1\n"},
		{"bad subnet", "Filtering:\n    NeverInclude: [\"10.0.0.0/33\"]\n"},
		{"malformed yaml", "Histogram: [\n"},
	}

	for _, testCase := range testCases {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, ioutil.WriteFile(cfgPath, []byte(testCase.cfg), 0644))
		_, err := LoadConfig(cfgPath)
		assert.Errorf(t, err, testCase.msg)
	}
}

func TestLoadConfigFiltering(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := []byte("Filtering:\n    AlwaysInclude:\n        - 10.0.0.1\n    NeverInclude:\n        - 10.0.0.0/8\n        - 2001:db8::/32\n")
	require.NoError(t, ioutil.WriteFile(cfgPath, cfg, 0644))

	conf, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	require.Len(t, conf.R.Filtering.AlwaysIncluded, 1)
	assert.Equal(t, "10.0.0.1/32", conf.R.Filtering.AlwaysIncluded[0].String())
	require.Len(t, conf.R.Filtering.NeverIncluded, 2)
	assert.Equal(t, "2001:db8::/32", conf.R.Filtering.NeverIncluded[1].String())
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	example, err := LoadConfig(filepath.Join("..", "etc", "synplot.yaml"))
	require.NoError(t, err)

	var defaults StaticCfg
	require.NoError(t, loadStaticConfig("", &defaults))

	assert.Equal(t, defaults.Input, example.S.Input)
	assert.Equal(t, defaults.Histogram, example.S.Histogram)
	assert.Equal(t, defaults.Markers, example.S.Markers)
	assert.Equal(t, defaults.Figure, example.S.Figure)
	assert.Equal(t, defaults.Display, example.S.Display)
	assert.Equal(t, defaults.Log, example.S.Log)
	assert.Empty(t, example.R.Filtering.NeverIncluded)
}
