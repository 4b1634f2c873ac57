package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// StoreBackendRedis and StoreBackendFile name the supported snapshot
// backends.
const (
	StoreBackendRedis = "redis"
	StoreBackendFile  = "file"
)

// RedisConfig holds the connection settings for the redis backend
type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty" validate:"min=0"`
}

// FileConfig holds the settings for the local file backend
type FileConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// AdvisoryConfig configures the generative analysis client
type AdvisoryConfig struct {
	Model     string `yaml:"model,omitempty"`
	APIKeyEnv string `yaml:"apiKeyEnv,omitempty"`
}

// Config represents the application configuration
type Config struct {
	StoreBackend    string         `yaml:"storeBackend" validate:"required,oneof=redis file"`
	Redis           *RedisConfig   `yaml:"redis,omitempty" validate:"omitempty"`
	File            *FileConfig    `yaml:"file,omitempty" validate:"omitempty"`
	ScheduleSheetID string         `yaml:"scheduleSheetID,omitempty"`
	Advisory        AdvisoryConfig `yaml:"advisory,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration
// It looks for the config file in the current directory first, then in the user's home directory
// If env is provided it is added as an extension (e.g. "transport_config.test.yaml")
func Load(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
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

// Validate validates the configuration struct and checks that the
// selected backend has its settings block
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.StoreBackend {
	case StoreBackendRedis:
		if cfg.Redis == nil {
			return fmt.Errorf("config validation failed: storeBackend is redis but no redis block is set")
		}
		if err := validate.Struct(cfg.Redis); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	case StoreBackendFile:
		if cfg.File == nil {
			return fmt.Errorf("config validation failed: storeBackend is file but no file block is set")
		}
		if err := validate.Struct(cfg.File); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}

// findConfigFile searches for transport_config.yaml in current directory and home directory
func findConfigFile(env string) (string, error) {
	configFileName := "transport_config.yaml"
	if env != "" {
		configFileName = "transport_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
