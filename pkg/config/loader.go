package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the single YAML file read from the config directory.
const ConfigFileName = "plcforge.yaml"

// Initialize loads, merges, and validates configuration from configDir.
//
// Steps performed:
//  1. Read plcforge.yaml (missing file falls back to built-in defaults)
//  2. Expand environment variables via {{.VAR}} template syntax
//  3. Parse YAML
//  4. Merge user values over built-in defaults
//  5. Validate
func Initialize(configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := Defaults()

	user, err := loadYAMLFile(filepath.Join(configDir, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if user != nil {
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"server_port", cfg.Server.Port,
		"database_configured", cfg.Database.Host != "",
		"llm_model", cfg.LLM.Model)
	return cfg, nil
}

// loadYAMLFile reads and parses a single config file. A missing file is not
// an error; the caller falls back to defaults.
func loadYAMLFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Config file not found, using built-in defaults", "path", path)
			return nil, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}
