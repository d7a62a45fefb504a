// Package config loads and validates plcforge configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrConfigNotFound indicates the config file does not exist
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidYAML indicates the config file could not be parsed
	ErrInvalidYAML = errors.New("invalid YAML")
)

// Config is the fully resolved application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Paths     PathsConfig     `yaml:"paths"`
	Planner   PlannerConfig   `yaml:"planner"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty Host means
// the service runs on in-memory repositories (dev mode, no persistence).
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// LLMConfig holds Gemini API settings. Two key slots: the conversational
// agents and the code-generation/validation path run on separate quotas.
type LLMConfig struct {
	BaseURL       string `yaml:"base_url"`
	Model         string `yaml:"model"`
	APIKey        string `yaml:"api_key"`
	CodegenAPIKey string `yaml:"codegen_api_key"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

// PathsConfig holds data directory locations.
type PathsConfig struct {
	Manuals    string `yaml:"manuals"`
	Embeddings string `yaml:"embeddings"`
	Uploads    string `yaml:"uploads"`
	Exports    string `yaml:"exports"`
	Prompts    string `yaml:"prompts"`
}

// PlannerConfig bounds the accepted input size in words.
type PlannerConfig struct {
	MinWords int `yaml:"min_words"`
	MaxWords int `yaml:"max_words"`
}

// Defaults returns the built-in configuration, overridden by plcforge.yaml.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		LLM: LLMConfig{
			BaseURL: "https://generativelanguage.googleapis.com",
			Model:   "gemini-2.0-flash",
		},
		Embedding: EmbeddingConfig{
			Model: "gemini-embedding-001",
		},
		Paths: PathsConfig{
			Manuals:    "data/manuals",
			Embeddings: "data/embeddings",
			Uploads:    "data/uploads",
			Exports:    "data/exports",
			Prompts:    "data/system_prompts",
		},
		Planner: PlannerConfig{
			MinWords: 50,
			MaxWords: 5000,
		},
	}
}

// Validate checks the resolved configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.LLM.BaseURL == "" {
		return errors.New("llm.base_url must not be empty")
	}
	if c.Planner.MinWords <= 0 || c.Planner.MaxWords <= c.Planner.MinWords {
		return fmt.Errorf("planner word bounds invalid: min=%d max=%d",
			c.Planner.MinWords, c.Planner.MaxWords)
	}
	if c.Database.Host != "" && c.Database.Database == "" {
		return errors.New("database.database must be set when database.host is set")
	}
	return nil
}
