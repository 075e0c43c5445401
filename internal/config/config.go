package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/solladesign/portfolio/internal/content"
)

// Config holds the server settings read from the environment (and .env).
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	DefaultLang      string        `env:"DEFAULT_LANG" envDefault:"pt-BR"`
	AnalyticsEnabled bool          `env:"ANALYTICS_ENABLED" envDefault:"true"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	HashSalt         string        `env:"HASH_SALT"`
	AdminUsername    string        `env:"ADMIN_USERNAME"`
	AdminPassword    string        `env:"ADMIN_PASSWORD"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, ok := content.Parse(c.DefaultLang); !ok {
		return &content.ConfigurationError{Locale: c.DefaultLang, Err: content.ErrUnsupportedLanguage}
	}
	if c.AnalyticsEnabled && c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required when analytics is enabled")
	}
	if c.VisitorRetention <= 0 {
		return fmt.Errorf("VISITOR_RETENTION must be positive, got %s", c.VisitorRetention)
	}
	return nil
}

// Lang returns the default language tag.
func (c Config) Lang() language.Tag {
	return content.Normalize(c.DefaultLang)
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// AdminEnabled reports whether admin routes should be mounted.
func (c Config) AdminEnabled() bool {
	return c.AnalyticsEnabled && c.AdminUsername != "" && c.AdminPassword != ""
}
