// Package config loads freshmarket settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"freshmarket/internal/disclosure"
)

var (
	// ErrInvalidMode is returned for an accordion mode other than single/multiple.
	ErrInvalidMode = errors.New("config: invalid accordion mode")
	// ErrInvalidLogLevel is returned for a log level hclog does not know.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// Config holds every setting the binary reads.
type Config struct {
	Language      string `env:"FRESHMARKET_LANGUAGE" envDefault:"en"`
	LocalesDir    string `env:"FRESHMARKET_LOCALES_DIR"`
	AccordionMode string `env:"FRESHMARKET_ACCORDION_MODE" envDefault:"single"`
	CatalogFile   string `env:"FRESHMARKET_CATALOG_FILE"`
	LogFile       string `env:"FRESHMARKET_LOG_FILE" envDefault:"freshmarket.log"`
	LogLevel      string `env:"FRESHMARKET_LOG_LEVEL" envDefault:"info"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName   string `env:"OTEL_SERVICE_NAME" envDefault:"freshmarket"`
}

// Load reads an optional .env file, then the environment, and validates.
func Load() (*Config, error) {
	// .env is optional; variables may come from the shell.
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment without touching .env.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.AccordionMode = strings.ToLower(strings.TrimSpace(c.AccordionMode))
	if _, ok := disclosure.ParseMode(c.AccordionMode); !ok {
		return fmt.Errorf("%w: %q (want single or multiple)", ErrInvalidMode, c.AccordionMode)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	c.Language = strings.TrimSpace(c.Language)
	return nil
}

// Mode returns the validated accordion mode.
func (c *Config) Mode() disclosure.Mode {
	m, _ := disclosure.ParseMode(c.AccordionMode)
	return m
}

// Level returns the validated log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}
