// Package config loads exsplit settings from the environment, optionally
// seeded from a .env file, and validates them before any work starts.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all CLI configuration.
// Every setting can be given through an environment variable.
type Config struct {
	Logging LoggingConfig
	Output  OutputConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"EXSPLIT_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Format is the log format: console or json (default: console)
	Format string `env:"EXSPLIT_LOG_FORMAT" default:"console" validate:"oneof=console json"`
}

// OutputConfig holds settings for written chunks.
type OutputConfig struct {
	// Dir is where chunks are written (default: next to the source)
	Dir string `env:"EXSPLIT_OUTPUT_DIR" validate:"omitempty,max=4096"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from environment variables, after loading the
// given .env files. With no files, a .env in the working directory is used
// when present. Values already set in the environment take precedence.
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	cfg := &Config{}
	if err := loadStruct(cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	normalize(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) > 0 {
		return godotenv.Load(files...)
	}
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load()
	}
	return nil
}

func normalize(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Level == "warning" {
		cfg.Logging.Level = "warn"
	}
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s (%q) fails %q", envName(fe.StructNamespace()), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
