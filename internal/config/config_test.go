package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("EXPORTER_NAME", "")
	t.Setenv("EXPORTER_ADDRESS", "")

	cfg := Load()
	if cfg.Port != "8083" {
		t.Errorf("Port: got %q, want 8083", cfg.Port)
	}
	if cfg.ExporterName != "" {
		t.Errorf("ExporterName: got %q, want empty", cfg.ExporterName)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("EXPORTER_NAME", "Acme Pharma Exports")
	t.Setenv("EXPORTER_ADDRESS", "12 Industrial Estate, Mumbai")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port: got %q, want 9000", cfg.Port)
	}
	if cfg.ExporterName != "Acme Pharma Exports" {
		t.Errorf("ExporterName: got %q", cfg.ExporterName)
	}
	if cfg.ExporterAddress != "12 Industrial Estate, Mumbai" {
		t.Errorf("ExporterAddress: got %q", cfg.ExporterAddress)
	}
}
