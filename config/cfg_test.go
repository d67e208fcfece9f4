package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigurationNoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Assets.Root == "" {
		t.Error("Default asset root must not be empty")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q", cfg.Logging.ConsoleLogger.Level)
	}
	// templated paths must come out expanded
	for name, v := range map[string]string{
		"export.output_dir":        cfg.Export.OutputDir,
		"logging.file.destination": cfg.Logging.FileLogger.Destination,
		"reporting.destination":    cfg.Reporting.Destination,
	} {
		if v == "" || strings.Contains(v, "{{") {
			t.Errorf("%s not expanded: %q", name, v)
		}
	}
}

func TestLoadConfigurationWithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
assets:
  root: ui
  preload: ["theme.veneer.json", "widgets.veneer.json"]
export:
  output_dir: /tmp/veneer-out
  file_name_transliterate: false
logging:
  console:
    level: debug
  file:
    level: none
reporting:
  destination: /tmp/veneer-report.zip
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Assets.Root != "ui" {
		t.Errorf("Assets.Root = %q", cfg.Assets.Root)
	}
	if len(cfg.Assets.Preload) != 2 || cfg.Assets.Preload[0] != "theme.veneer.json" {
		t.Errorf("Assets.Preload = %v", cfg.Assets.Preload)
	}
	if cfg.Export.FileNameTransliterate {
		t.Error("FileNameTransliterate should be overridden to false")
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfigurationUnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nasets:\n  root: ui\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("expected error for unknown configuration field")
	}
}

func TestLoadConfigurationBadVersion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("version: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("expected validation error for unsupported version")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("dump missing version:\n%s", data)
	}
	if !strings.Contains(string(data), "assets:") {
		t.Errorf("dump missing assets section:\n%s", data)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "version: 1") {
		t.Errorf("prepared template missing version:\n%s", data)
	}
}
