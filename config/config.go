// Package config loads the bkr configuration from a YAML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvStorePath      = "BANKROLL_STORE"
	EnvStoreBackend   = "BANKROLL_BACKEND"
	EnvCurrency       = "BANKROLL_CURRENCY"
	EnvCSVDateLayout  = "BANKROLL_CSV_DATE_LAYOUT"
	EnvAlertsDisabled = "BANKROLL_ALERTS_DISABLED"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "bankroll.yaml"

// Config holds all application configuration.
type Config struct {
	Store struct {
		Backend string `yaml:"backend" validate:"oneof=dir sqlite mem"`
		Path    string `yaml:"path" validate:"required_unless=Backend mem"`
	} `yaml:"store"`
	Currency string `yaml:"currency" validate:"len=3,uppercase"`
	Export   struct {
		DateLayout string `yaml:"date_layout" validate:"required"`
	} `yaml:"export"`
	// Alerts are the thresholds used until they are changed with alert-config.
	Alerts struct {
		LossThreshold float64 `yaml:"loss_threshold" validate:"gt=0,lte=100"`
		GainThreshold float64 `yaml:"gain_threshold" validate:"gt=0"`
		Disabled      bool    `yaml:"disabled"`
	} `yaml:"alerts"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv(EnvStorePath); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv(EnvStoreBackend); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(EnvCSVDateLayout); v != "" {
		cfg.Export.DateLayout = v
	}
	if v := os.Getenv(EnvAlertsDisabled); v != "" {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvAlertsDisabled, err)
		}
		cfg.Alerts.Disabled = disabled
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store.Backend == "" {
		c.Store.Backend = "dir"
	}
	if c.Store.Path == "" {
		switch c.Store.Backend {
		case "sqlite":
			c.Store.Path = "bankroll.db"
		case "dir":
			c.Store.Path = ".bankroll"
		}
	}
	if c.Currency == "" {
		c.Currency = "BRL"
	}
	if c.Export.DateLayout == "" {
		c.Export.DateLayout = "02/01/2006"
	}
	if c.Alerts.LossThreshold == 0 {
		c.Alerts.LossThreshold = 10
	}
	if c.Alerts.GainThreshold == 0 {
		c.Alerts.GainThreshold = 20
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
