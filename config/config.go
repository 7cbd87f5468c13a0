// Package config reads the optional spend configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be stored in a YAML file, e.g.
//
//	ledger-file: ~/notes/spending.md
//	currency: RON
type Config struct {
	LedgerFile string `yaml:"ledger-file"`
	Currency   string `yaml:"currency"`
}

// Load reads the configuration file at path. A missing file is an empty
// configuration.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path == "" {
		return c, nil
	}
	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(rawYAML, c); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return c, nil
}
