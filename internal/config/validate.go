package config

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrInvalidIndentWidth = errors.New("config: indent width must not be negative")
	ErrInvalidHexWidth    = errors.New("config: hex width must be between 1 and 64")
	ErrInvalidLogLevel    = errors.New("config: unknown log level")
	ErrInvalidLogFormat   = errors.New("config: unknown log format")
)

// Validate checks the configuration for values the rest of the program
// cannot work with.
func (c *Config) Validate() error {
	if c.Dump.IndentWidth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIndentWidth, c.Dump.IndentWidth)
	}
	if c.Dump.HexWidth < 1 || c.Dump.HexWidth > 64 {
		return fmt.Errorf("%w: %d", ErrInvalidHexWidth, c.Dump.HexWidth)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}

	return nil
}
