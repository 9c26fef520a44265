// Package config loads solver settings from YAML, layered over built-in defaults.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// FileName is the config file picked up from the working directory.
const FileName = ".aoc.yaml"

// Config holds the settings shared by every command.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
}

// Default returns the built-in settings.
func Default() (*Config, error) {
	var c Config
	if err := decode(defaultYAML, &c); err != nil {
		return nil, fmt.Errorf("config.Default: %w", err)
	}
	return &c, nil
}

// Load reads path over the defaults. An empty path falls back to FileName in
// the working directory, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := decode(data, c); err != nil {
		return nil, fmt.Errorf("config.Load: parse %q: %w", path, err)
	}
	return c, nil
}

func decode(data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Marshal renders the config as YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
