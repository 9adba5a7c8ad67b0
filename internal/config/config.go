// Package config loads foodorders settings.
//
// Precedence, lowest first:
//  1. Default()
//  2. YAML file (foodorders.yaml in the working directory, or an explicit path)
//  3. .env file and FOODORDERS_* environment variables
//  4. command-line flags (applied by the CLI)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = "foodorders.yaml"

// Environment variables read by Load.
const (
	EnvDatabase = "FOODORDERS_DB"
	EnvMenu     = "FOODORDERS_MENU"
	EnvAddr     = "FOODORDERS_ADDR"
	EnvLogLevel = "FOODORDERS_LOG_LEVEL"
)

// Config holds all settings.
type Config struct {
	// Database is a SQLite file path, or a postgres:// URL.
	Database string `yaml:"database"`

	// MenuFile is a .yaml or .cue menu. Empty means the built-in menu.
	MenuFile string `yaml:"menu_file"`

	Server ServerConfig `yaml:"server"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ServerConfig configures the HTTP shell.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Database: "food_orders.db",
		Server:   ServerConfig{Addr: ":8080"},
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (or
// DefaultConfigFile when path is empty and that file exists), then the
// environment. An explicit path that does not exist is an error.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	fileCfg, err := LoadFromFile(path)
	switch {
	case err == nil:
		logger.Debug("loaded config file", slog.String("path", path))
		cfg.Merge(fileCfg)
	case errors.Is(err, os.ErrNotExist) && !explicit:
		logger.Debug("no config file found", slog.String("path", path))
	default:
		return nil, err
	}

	// A missing .env is normal.
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overwrites c with every non-empty field of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Database != "" {
		c.Database = other.Database
	}
	if other.MenuFile != "" {
		c.MenuFile = other.MenuFile
	}
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

func (c *Config) applyEnv() {
	c.Merge(&Config{
		Database: os.Getenv(EnvDatabase),
		MenuFile: os.Getenv(EnvMenu),
		Server:   ServerConfig{Addr: os.Getenv(EnvAddr)},
		LogLevel: os.Getenv(EnvLogLevel),
	})
}

// Validate checks required fields and the log level.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return errors.New("config: database is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// UsesPostgres reports whether Database is a Postgres connection URL.
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.Database, "postgres://") || strings.HasPrefix(c.Database, "postgresql://")
}
