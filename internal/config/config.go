// Package config provides YAML-based configuration loading for asn1view.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root application configuration.
type Config struct {
	// Dump holds tree dump layout options
	Dump DumpConfig `mapstructure:"dump"`

	// Log holds logging configuration
	Log LogConfig `mapstructure:"log"`
}

// DumpConfig defines tree dump layout settings.
type DumpConfig struct {
	// IndentWidth is the number of spaces per nesting level
	IndentWidth int `mapstructure:"indent_width"`

	// HexWidth is the number of bytes per raw dump line
	HexWidth int `mapstructure:"hex_width"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
	// Outputs: list of outputs: stdout, stderr, or file paths
	Outputs []string `mapstructure:"outputs"`

	// Rotation controls file rotation when writing to files
	Rotation RotationConfig `mapstructure:"rotation"`
	// Development toggles development-friendly logging options
	Development bool `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool   `mapstructure:"enable"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Load reads configuration from the given path. When path is empty, a file
// named asn1view.yaml is looked up in the working directory and its absence
// is not an error; defaults apply. Environment variables prefixed with
// ASN1VIEW_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Seed defaults so env-only configs work
	def := Default()
	v.SetDefault("dump.indent_width", def.Dump.IndentWidth)
	v.SetDefault("dump.hex_width", def.Dump.HexWidth)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.outputs", def.Log.Outputs)

	v.SetEnvPrefix("ASN1VIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("asn1view")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
