// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fmareport.yaml")
	content := []byte(`
fmlog_path: /var/fm/fmd/errlog.json
hwgrok_path: /var/tmp/hwgrok.json
format: json
color: true
log_level: debug
export_db: /var/tmp/fma.db
`)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FMLogPath != "/var/fm/fmd/errlog.json" {
		t.Errorf("FMLogPath = %q, want %q", cfg.FMLogPath, "/var/fm/fmd/errlog.json")
	}
	if cfg.HWGrokPath != "/var/tmp/hwgrok.json" {
		t.Errorf("HWGrokPath = %q, want %q", cfg.HWGrokPath, "/var/tmp/hwgrok.json")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if !cfg.Color {
		t.Error("Color = false, want true")
	}
	if cfg.ExportDB != "/var/tmp/fma.db" {
		t.Errorf("ExportDB = %q, want %q", cfg.ExportDB, "/var/tmp/fma.db")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.HWGrokPath != "" {
		t.Errorf("HWGrokPath = %q, want empty", cfg.HWGrokPath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fmareport.yaml")
	if err := os.WriteFile(configPath, []byte("fmlog_path: /from/file.json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FMAREPORT_FMLOG", "/from/env.json")
	t.Setenv("FMAREPORT_HWGROK", "/from/env-hwgrok.json")
	t.Setenv("FMAREPORT_LOG_LEVEL", "warn")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FMLogPath != "/from/env.json" {
		t.Errorf("FMLogPath = %q, want %q", cfg.FMLogPath, "/from/env.json")
	}
	if cfg.HWGrokPath != "/from/env-hwgrok.json" {
		t.Errorf("HWGrokPath = %q, want %q", cfg.HWGrokPath, "/from/env-hwgrok.json")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("format: [text"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"ok", func(c *Config) { c.FMLogPath = "fmlog.json" }, false},
		{"no fmlog", func(c *Config) {}, true},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
