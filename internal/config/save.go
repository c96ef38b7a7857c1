package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path, as TOML for a .toml
// extension and YAML otherwise.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := c.Encode(filepath.Ext(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Encode marshals the config as "toml" or, for any other format, YAML.
func (c *Config) Encode(format string) ([]byte, error) {
	if strings.EqualFold(strings.TrimPrefix(format, "."), "toml") {
		return toml.Marshal(c)
	}
	return yaml.Marshal(c)
}
