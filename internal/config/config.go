package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFileName = "nss_config.yaml"

// Config represents the application configuration
type Config struct {
	APIBaseURL       string `yaml:"apiBaseURL" validate:"required,url"`
	RequestTimeoutMs int    `yaml:"requestTimeoutMs,omitempty" validate:"omitempty,min=1"`
	PollIntervalMs   int    `yaml:"pollIntervalMs,omitempty" validate:"omitempty,min=100"`
	SessionPath      string `yaml:"sessionPath,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RequestTimeout returns the per-call gateway timeout, defaulting to
// 10 seconds.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutMs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// PollInterval returns the cache poll interval, defaulting to 5
// seconds.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalMs <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ResolveSessionPath returns the session file location, defaulting
// to .nss_session.json in the user's home directory.
func (c *Config) ResolveSessionPath() (string, error) {
	if c.SessionPath != "" {
		return c.SessionPath, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".nss_session.json"), nil
}

// Load loads and validates the configuration from nss_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile(configFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads the configuration for a specific environment,
// e.g. nss_config.test.yaml for env "test". An empty env falls back
// to the default file name.
func LoadWithEnv(env string) (*Config, error) {
	if env == "" {
		return Load()
	}
	configPath, err := findConfigFile(fmt.Sprintf("nss_config.%s.yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile searches for the named file in current directory and home directory
func findConfigFile(name string) (string, error) {
	// Check current directory
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
