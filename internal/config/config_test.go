package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
currency = "EUR"
hourly_rate = 85.5

[oee]
parts_per_year = 12000
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
	if cfg.HourlyRate != 85.5 {
		t.Errorf("HourlyRate = %v, want 85.5", cfg.HourlyRate)
	}
	if cfg.OEE.PartsPerYear != 12000 {
		t.Errorf("PartsPerYear = %v, want 12000", cfg.OEE.PartsPerYear)
	}
	// Untouched keys keep their defaults.
	if cfg.BatchSize != 1 {
		t.Errorf("BatchSize = %d, want default 1", cfg.BatchSize)
	}
	if cfg.OEE.DefectRatePercent != 2 {
		t.Errorf("DefectRatePercent = %v, want default 2", cfg.OEE.DefectRatePercent)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("currency = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWriteSampleParsesBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if cfg.HourlyRate <= 0 {
		t.Errorf("sample hourly rate = %v, want positive", cfg.HourlyRate)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("currency = \"$\""), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected overwrite refusal")
	}
}
