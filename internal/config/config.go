package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xdespot/compound/internal/money"
	"github.com/0xdespot/compound/internal/render"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults for the CLI. Every value only reseeds a flag
// default; explicit flags always win.
type Config struct {
	Defaults struct {
		Rate                  string `yaml:"rate"`
		Years                 int    `yaml:"years"`
		Compound              string `yaml:"compound"`
		ContributionFrequency string `yaml:"contribution_frequency"`
		Output                string `yaml:"output"`
	} `yaml:"defaults"`
	Display struct {
		Currency string `yaml:"currency"`
	} `yaml:"display"`
}

// Path returns the config file location: $COMPOUND_CONFIG when set,
// otherwise ~/.compound.yaml.
func Path() string {
	if v := os.Getenv("COMPOUND_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".compound.yaml")
}

// Load reads config from a YAML file, then applies environment variable
// overrides and fills in defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("COMPOUND_RATE"); v != "" {
		cfg.Defaults.Rate = v
	}
	if v := os.Getenv("COMPOUND_OUTPUT"); v != "" {
		cfg.Defaults.Output = v
	}
	if v := os.Getenv("COMPOUND_CURRENCY"); v != "" {
		cfg.Display.Currency = v
	}

	// Defaults
	if cfg.Defaults.Rate == "" {
		cfg.Defaults.Rate = "7%"
	}
	if cfg.Defaults.Years == 0 {
		cfg.Defaults.Years = 10
	}
	if cfg.Defaults.Compound == "" {
		cfg.Defaults.Compound = "monthly"
	}
	if cfg.Defaults.ContributionFrequency == "" {
		cfg.Defaults.ContributionFrequency = "monthly"
	}
	if cfg.Defaults.Output == "" {
		cfg.Defaults.Output = render.FormatRich
	}
	if cfg.Display.Currency == "" {
		cfg.Display.Currency = "$"
	}

	return cfg, nil
}

// Validate checks that the configured defaults can seed the flag set.
func (c *Config) Validate() error {
	if _, err := money.ParseRate(c.Defaults.Rate); err != nil {
		return fmt.Errorf("defaults.rate: %w", err)
	}
	if c.Defaults.Years <= 0 {
		return fmt.Errorf("defaults.years must be positive, got %d", c.Defaults.Years)
	}
	if _, err := money.ParseFrequency(c.Defaults.Compound); err != nil {
		return fmt.Errorf("defaults.compound: %w", err)
	}
	if _, err := money.ParseFrequency(c.Defaults.ContributionFrequency); err != nil {
		return fmt.Errorf("defaults.contribution_frequency: %w", err)
	}
	if _, err := render.Get(c.Defaults.Output); err != nil {
		return fmt.Errorf("defaults.output: %w", err)
	}
	return nil
}
