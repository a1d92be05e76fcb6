// Package config loads the optional YAML configuration file of the
// calculator.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"src.rpncalc.dev/pkg/env"
	"src.rpncalc.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[config] ")

// DefaultPrompt is the prompt used when none is configured.
const DefaultPrompt = "> "

// Config keeps settings from the configuration file.
type Config struct {
	// Prompt shown by the interactive editor.
	Prompt string `yaml:"prompt"`
	// Whether verbose mode is on at startup.
	Verbose bool `yaml:"verbose"`
	// Whether the intro banner is printed at startup.
	Banner bool `yaml:"banner"`
	// Assignments of the form "name = expr", evaluated in order at startup.
	Definitions []string `yaml:"definitions"`
}

// Default returns the configuration used when there is no configuration file.
func Default() *Config {
	return &Config{Prompt: DefaultPrompt, Banner: true}
}

// DefaultPath returns the path of the configuration file used when none is
// given on the command line.
func DefaultPath() (string, error) {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return filepath.Join(dir, "rpncalc", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config path: %w", err)
	}
	return filepath.Join(home, ".config", "rpncalc", "config.yaml"), nil
}

// Load reads the configuration from the given path. If path is empty, the
// default path is used, and a nonexistent file yields the default
// configuration without an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), err
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			logger.Println("no config file at", path)
			return Default(), nil
		}
		return Default(), err
	}
	logger.Println("loading config from", path)
	cfg, err := Parse(content)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses a configuration from YAML. Unset keys keep their default
// values; unknown keys are an error.
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return Default(), err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	return cfg, nil
}
