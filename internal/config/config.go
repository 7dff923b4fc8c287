// Package config loads the CLI defaults file. The engine itself takes
// explicit parameters; the config only pre-fills what the user did not
// pass on the command line.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config holds the CLI defaults.
type Config struct {
	Currency   string  `toml:"currency"`
	HourlyRate float64 `toml:"hourly_rate"` // currency/hour
	BatchSize  int     `toml:"batch_size"`

	OEE OEEDefaults `toml:"oee"`
}

// OEEDefaults mirrors the engine's OEE assumptions.
type OEEDefaults struct {
	DefectRatePercent      float64 `toml:"defect_rate_percent"`
	PlannedHoursPerShift   float64 `toml:"planned_hours_per_shift"`
	UnplannedDowntimeHours float64 `toml:"unplanned_downtime_hours"`
	ToolChangeTimeLoss     float64 `toml:"tool_change_time_loss"` // min
	PartsPerYear           float64 `toml:"parts_per_year"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Currency:   "$",
		HourlyRate: 50,
		BatchSize:  1,
		OEE: OEEDefaults{
			DefectRatePercent:      2,
			PlannedHoursPerShift:   8,
			UnplannedDowntimeHours: 0.5,
			ToolChangeTimeLoss:     5,
			PartsPerYear:           4000,
		},
	}
}

// DefaultPath returns the default config file location, ~/.toolcalc/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".toolcalc", "config.toml")
}

// Load reads the config from path. A missing file yields Default()
// with no error; a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteSample writes the annotated sample config to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}
