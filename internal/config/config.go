// Package config loads CLI configuration from an optional YAML file and LISTX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/comalice/listx/pkg/logger"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

var formats = []string{FormatText, FormatJSON, FormatDOT}

// Config is the configuration for the listx CLI.
type Config struct {
	LogLevel string   `mapstructure:"log_level" yaml:"log_level"` // zap level name, e.g. "debug"
	Name     string   `mapstructure:"name" yaml:"name"`           // Name given to lists built by the CLI
	Format   string   `mapstructure:"format" yaml:"format"`       // Output format: text, json or dot
	Seed     []string `mapstructure:"seed" yaml:"seed"`           // Initial values for `dump` when no args are given
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", filePath, err)
		}
	}

	return unmarshal(v)
}

// LoadEnv loads the config from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	return unmarshal(newViper())
}

// Validate checks the level and format fields.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("format %q: must be one of %s", c.Format, strings.Join(formats, ", "))
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("name", "listx")
	v.SetDefault("format", FormatText)
	v.SetEnvPrefix("LISTX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
