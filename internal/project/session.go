// Package project saves and loads comparison sessions as JSON files.
// A session stores parameter snapshots only; results are recomputed on
// load so a saved file never goes stale against the calculation engine.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/cnc-toolcalc/internal/engine"
	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// SessionTool is one stored tool configuration.
type SessionTool struct {
	Name    string                  `json:"name"`
	Cutting model.CuttingParameters `json:"cutting"`
	Cost    model.CostParameters    `json:"cost"`
}

// Session ties a named comparison set together for save/load.
type Session struct {
	Name  string        `json:"name"`
	Tools []SessionTool `json:"tools"`
}

// FromAggregator snapshots the aggregator's entries into a session.
func FromAggregator(name string, agg *engine.Aggregator) Session {
	entries := agg.Entries()
	tools := make([]SessionTool, 0, len(entries))
	for _, e := range entries {
		tools = append(tools, SessionTool{
			Name:    e.Name,
			Cutting: e.Cutting,
			Cost:    e.Cost,
		})
	}
	return Session{Name: name, Tools: tools}
}

// Restore re-adds every stored tool to a fresh aggregator, recomputing
// all results. Returns the aggregator and the per-tool errors of any
// rows that no longer validate.
func (s Session) Restore() (*engine.Aggregator, []error) {
	agg := engine.NewAggregator()
	var errs []error
	for _, t := range s.Tools {
		cutting := t.Cutting
		if cutting.Name == "" {
			cutting.Name = t.Name
		}
		if _, err := agg.Add(cutting, t.Cost); err != nil {
			errs = append(errs, fmt.Errorf("tool %q: %w", t.Name, err))
		}
	}
	return agg, errs
}

// Save persists a session to the given path as indented JSON. It
// creates any missing parent directories automatically.
func Save(path string, s Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a session from the given path.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parse session %s: %w", path, err)
	}
	if s.Tools == nil {
		s.Tools = []SessionTool{}
	}
	return s, nil
}
