package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "en-US" || cfg.Currency != "USD" {
		t.Errorf("defaults = %q/%q", cfg.Locale, cfg.Currency)
	}
	if cfg.NoColors || cfg.History.SQLitePath != "" {
		t.Error("expected zero values for optional settings")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("locale: de-DE\ncurrency: EUR\nno_colors: true\nhistory:\n  sqlite_path: /tmp/stk.db\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STK_CURRENCY", "GBP")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "de-DE" {
		t.Errorf("locale = %q", cfg.Locale)
	}
	if cfg.Currency != "GBP" {
		t.Errorf("env override lost, currency = %q", cfg.Currency)
	}
	if !cfg.NoColors {
		t.Error("no_colors not read")
	}
	if cfg.History.SQLitePath != "/tmp/stk.db" {
		t.Errorf("sqlite_path = %q", cfg.History.SQLitePath)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("locale: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
