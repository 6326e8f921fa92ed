package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the process configuration. Values come from an optional YAML
// file (path in CONFIG_PATH) with environment variables taking precedence.
type Config struct {
	Port      string `yaml:"port"`
	Store     string `yaml:"store"` // "memory" or "mysql"
	MySQLDSN  string `yaml:"mysql_dsn"`
	RedisAddr string `yaml:"redis_addr"` // empty disables the preference cache
}

// Load reads configuration from the YAML file and the environment
func Load() (Config, error) {
	cfg := Config{
		Port:  "8080",
		Store: "memory",
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Store = getEnv("STORE", cfg.Store)
	cfg.MySQLDSN = getEnv("MYSQL_DSN", cfg.MySQLDSN)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)

	if cfg.Store != "memory" && cfg.Store != "mysql" {
		return Config{}, fmt.Errorf("config: unknown store %q", cfg.Store)
	}
	if cfg.Store == "mysql" && cfg.MySQLDSN == "" {
		return Config{}, fmt.Errorf("config: store is mysql but no DSN configured")
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
