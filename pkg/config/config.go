// Package config provides configuration for the quanta tools: the
// default rescale policy and logging setup, loaded from YAML with
// environment variable substitution.
package config

import (
	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/policy"
)

// Config is the root configuration.
type Config struct {
	Policy  PolicyConfig  `yaml:"policy"`
	Logging LoggingConfig `yaml:"logging"`
}

// PolicyConfig configures the arithmetic policy engine.
type PolicyConfig struct {
	// Rescale is the additive scale-reconciliation policy: strict,
	// smaller_wins, left_hand_wins or larger_wins.
	Rescale string `yaml:"rescale"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level       string   `yaml:"level"`
	Development bool     `yaml:"development"`
	Encoding    string   `yaml:"encoding"`
	OutputPaths []string `yaml:"output_paths"`
}

// Default returns the configuration used when no file is given:
// strict policy, info-level JSON logs.
func Default() *Config {
	return &Config{
		Policy: PolicyConfig{
			Rescale: policy.Strict.String(),
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := policy.ParsePolicy(c.Policy.Rescale); err != nil {
		return err
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return qerrors.Newf(qerrors.ErrorTypeConfig,
			"invalid logging encoding %q (want json or console)", c.Logging.Encoding)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return qerrors.Newf(qerrors.ErrorTypeConfig,
			"invalid logging level %q", c.Logging.Level)
	}
	return nil
}

// RescalePolicy returns the configured policy. Call Validate first;
// an invalid value falls back to strict here.
func (c *Config) RescalePolicy() policy.RescalePolicy {
	p, err := policy.ParsePolicy(c.Policy.Rescale)
	if err != nil {
		return policy.Strict
	}
	return p
}
