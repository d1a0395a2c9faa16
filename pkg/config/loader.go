package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
)

// Load reads a YAML configuration file over the defaults, substituting
// ${VAR} references from the environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is caller-controlled
	if err != nil {
		return nil, qerrors.Wrap(err, qerrors.ErrorTypeConfig, "failed to read config file")
	}

	content := substituteEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, qerrors.Wrap(err, qerrors.ErrorTypeConfig, "failed to parse YAML config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return qerrors.Wrap(err, qerrors.ErrorTypeConfig, "failed to marshal YAML config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec
		return qerrors.Wrap(err, qerrors.ErrorTypeConfig, "failed to write config file")
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		content = content[:start] + os.Getenv(varName) + content[end+1:]
	}
	return content
}
