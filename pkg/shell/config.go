package shell

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/core-tools/hsu-shell/pkg/errors"
)

const defaultPrompt = ": "

// Config represents the shell configuration file structure. Everything is
// optional; an absent file means defaults.
type Config struct {
	Prompt string    `yaml:"prompt,omitempty"`
	Log    LogConfig `yaml:"log,omitempty"`
}

// LogConfig configures diagnostic logging. With no file path, diagnostics
// are discarded.
type LogConfig struct {
	FilePath string `yaml:"file_path,omitempty"`
	Level    string `yaml:"level,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	config := &Config{}
	setConfigDefaults(config)
	return config
}

// LoadConfigFromFile loads shell configuration from a YAML file
func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("failed to read configuration file", err).WithContext("filename", filename)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.NewValidationError("failed to parse YAML configuration", err).WithContext("filename", filename)
	}

	setConfigDefaults(&config)

	return &config, nil
}

func setConfigDefaults(config *Config) {
	if config.Prompt == "" {
		config.Prompt = defaultPrompt
	}
}

// ValidateConfig validates the entire configuration structure
func ValidateConfig(config *Config) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	switch config.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("invalid log level", nil).WithContext("level", config.Log.Level)
	}

	if config.Log.Level != "" && config.Log.FilePath == "" {
		return errors.NewValidationError("log level requires a log file path", nil)
	}

	return nil
}
