// Package config loads the controller configuration from a YAML file.
// Everything the storage group and its collaborators need is threaded in
// from here; nothing reads ambient global state.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all controller configuration
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Redis   RedisConfig   `yaml:"redis"`
	Storage StorageConfig `yaml:"storage"`
}

// GatewayConfig holds peripheral gateway connection settings
type GatewayConfig struct {
	URL        string `yaml:"url"`
	ClientName string `yaml:"client_name"`
}

// RedisConfig holds Redis connection settings for the recipe registry
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// StorageConfig holds the role partition and transfer settings
type StorageConfig struct {
	// InputLocation is the inventory receiving craft inputs.
	InputLocation string `yaml:"input_location"`
	// OutputLocation is the inventory where crafted items land.
	OutputLocation string `yaml:"output_location"`
	// PeriodSeconds is the delay between controller passes.
	PeriodSeconds int `yaml:"period_seconds"`
	// MaxStackOverride fixes the per-slot stack limit instead of deriving
	// it from each inventory's first slot. Zero means derive.
	MaxStackOverride int `yaml:"max_stack_override"`
}

// Period returns the controller pass delay as a duration.
func (c StorageConfig) Period() time.Duration {
	return time.Duration(c.PeriodSeconds) * time.Second
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Defaults
	if cfg.Gateway.URL == "" {
		cfg.Gateway.URL = "ws://localhost:8080/v1/peripherals"
	}
	if cfg.Gateway.ClientName == "" {
		cfg.Gateway.ClientName = "storage-controller"
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}
	if cfg.Storage.PeriodSeconds == 0 {
		cfg.Storage.PeriodSeconds = 5
	}

	if cfg.Storage.InputLocation == "" {
		return nil, fmt.Errorf("storage.input_location is required")
	}
	if cfg.Storage.OutputLocation == "" {
		return nil, fmt.Errorf("storage.output_location is required")
	}

	return &cfg, nil
}
