package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	d := Default()
	if cfg.DataDir != d.DataDir || cfg.OutcomeColumn != d.OutcomeColumn {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
	if len(cfg.Variables) != 4 {
		t.Errorf("default variables = %v", cfg.Variables)
	}
}

func TestLoadPartialFileBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growdash.yaml")
	content := "data_dir: /srv/school-data\nlogging:\n  debug: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/srv/school-data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if !cfg.Logging.Debug {
		t.Error("Logging.Debug not set")
	}
	// Unset fields come from defaults.
	if cfg.OutcomeColumn != "생중량(g)" {
		t.Errorf("OutcomeColumn = %q", cfg.OutcomeColumn)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.ExportDir != "export" {
		t.Errorf("ExportDir = %q", cfg.ExportDir)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growdash.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
