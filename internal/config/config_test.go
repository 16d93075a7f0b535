package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dump.IndentWidth != 3 {
		t.Errorf("expected indent width 3, got %d", cfg.Dump.IndentWidth)
	}
	if cfg.Dump.HexWidth != 16 {
		t.Errorf("expected hex width 16, got %d", cfg.Dump.HexWidth)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asn1view.yaml")
	content := `
dump:
  indent_width: 2
  hex_width: 8
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dump.IndentWidth != 2 {
		t.Errorf("expected indent width 2, got %d", cfg.Dump.IndentWidth)
	}
	if cfg.Dump.HexWidth != 8 {
		t.Errorf("expected hex width 8, got %d", cfg.Dump.HexWidth)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asn1view.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected level warn, got %q", cfg.Log.Level)
	}
	if cfg.Dump.HexWidth != 16 {
		t.Errorf("expected default hex width, got %d", cfg.Dump.HexWidth)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asn1view.yaml")
	if err := os.WriteFile(path, []byte("dump:\n  hex_width: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalidHexWidth) {
		t.Errorf("expected ErrInvalidHexWidth, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "negative indent",
			mutate:  func(c *Config) { c.Dump.IndentWidth = -1 },
			wantErr: ErrInvalidIndentWidth,
		},
		{
			name:    "hex width too large",
			mutate:  func(c *Config) { c.Dump.HexWidth = 65 },
			wantErr: ErrInvalidHexWidth,
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: ErrInvalidLogLevel,
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: ErrInvalidLogFormat,
		},
		{
			name:   "warning accepted",
			mutate: func(c *Config) { c.Log.Level = "warning" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
