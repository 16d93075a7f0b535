package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Dump: DumpConfig{
			IndentWidth: 3,
			HexWidth:    16,
		},
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				MaxSizeMB:  50,
				MaxBackups: 3,
				MaxAgeDays: 14,
			},
		},
	}
}
