// Package config reads and writes bookkeep.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bookkeep.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Currency string         `yaml:"currency"`
	Import   ImportConfig   `yaml:"import,omitempty"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// ImportConfig maps bank imports onto chart terms.
type ImportConfig struct {
	Format      string `yaml:"format"`
	BankTerm    string `yaml:"bank_term"`
	ExpenseTerm string `yaml:"expense_term"`
	IncomeTerm  string `yaml:"income_term"`
}

// Load reads a bookkeep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Currency: "USD",
		Import: ImportConfig{
			Format:      "chase",
			BankTerm:    "bank",
			ExpenseTerm: "expenses",
			IncomeTerm:  "sales",
		},
	}
}
