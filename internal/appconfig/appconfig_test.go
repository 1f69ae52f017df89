package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("a missing config file must not be an error: %v", err)
	}
	if got := cfg.ResultsFilePath(); got != "data/eval_results.json" {
		t.Errorf("ResultsFilePath = %q", got)
	}
	if got := cfg.ExportDirPath(); got != "exports" {
		t.Errorf("ExportDirPath = %q", got)
	}
	if got := cfg.LogFilePath(); got != "evalscope.log" {
		t.Errorf("LogFilePath = %q", got)
	}
	if cfg.Debug {
		t.Errorf("debug must default to false")
	}
}

func TestLoadReadsConfiguredValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"resultsFile":"custom/results.json","exportDir":"out","logFile":"logs/app.log","debug":true}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ResultsFilePath() != "custom/results.json" {
		t.Errorf("ResultsFilePath = %q", cfg.ResultsFilePath())
	}
	if cfg.ExportDirPath() != "out" {
		t.Errorf("ExportDirPath = %q", cfg.ExportDirPath())
	}
	if cfg.LogFilePath() != "logs/app.log" {
		t.Errorf("LogFilePath = %q", cfg.LogFilePath())
	}
	if !cfg.Debug {
		t.Errorf("debug = false, want true")
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestAccessorsIgnoreBlankValues(t *testing.T) {
	cfg := Config{ResultsFile: "   ", ExportDir: "\t", LogFile: " "}
	if cfg.ResultsFilePath() != "data/eval_results.json" {
		t.Errorf("blank resultsFile must fall back to the default")
	}
	if cfg.ExportDirPath() != "exports" {
		t.Errorf("blank exportDir must fall back to the default")
	}
	if cfg.LogFilePath() != "evalscope.log" {
		t.Errorf("blank logFile must fall back to the default")
	}
}
