package config

import (
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
)

// GenerateConfig shapes a generation run.
type GenerateConfig struct {
	// Level scales the dataset from 1 (small) to 5 (large).
	Level int `json:"level"`
	// Seed makes fact generation and scheduling deterministic when non-zero.
	Seed int64 `json:"seed"`
	// Today overrides the reference day (2006-01-02). Empty means the
	// current day.
	Today string `json:"today"`
}

// SetDefaults applies sane defaults.
func (c *GenerateConfig) SetDefaults() {
	if c.Level == 0 {
		c.Level = 3
	}
}

// Validate checks bounds and date syntax.
func (c GenerateConfig) Validate() error {
	if c.Level < 1 || c.Level > 5 {
		return fmt.Errorf("generate level must be between 1 and 5, got %d", c.Level)
	}
	if c.Today != "" {
		if _, err := model.ParseDate(c.Today); err != nil {
			return fmt.Errorf("generate today: %w", err)
		}
	}
	return nil
}

// ReferenceDay resolves the configured reference day.
func (c GenerateConfig) ReferenceDay() model.Date {
	if c.Today == "" {
		return model.Today()
	}
	d, _ := model.ParseDate(c.Today)
	return d
}
