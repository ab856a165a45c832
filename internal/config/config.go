// Package config reads the migrator's environment configuration.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the environment based configuration of a run. Command-line flags
// override every field.
type Config struct {
	LogLevel  string `env:"DEBATEFMT_LOG_LEVEL,default=info"`
	LogFormat string `env:"DEBATEFMT_LOG_FORMAT,default=console"`

	// LabelsPath points at a YAML label map applied to custom period types.
	LabelsPath string `env:"DEBATEFMT_LABELS"`
	// ReportPath is where the needs-label report is written, if set.
	ReportPath string `env:"DEBATEFMT_REPORT"`

	Verify bool `env:"DEBATEFMT_VERIFY,default=true"`
}

// LoadWith reads the configuration using the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &cfg, l); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: DEBATEFMT_LOG_FORMAT must be %q or %q, got %q",
			ErrInvalidConfig, FormatConsole, FormatJSON, c.LogFormat)
	}

	return nil
}
