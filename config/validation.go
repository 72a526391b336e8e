package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the configuration is usable before the server
// starts. Only settings every deployment needs are required; Redis and S3
// stay optional. Production additionally requires a database password, which
// local development and CI databases run without.
func ValidateConfig(cfg *Config, env Environment) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
		return fmt.Errorf("database configuration is incomplete")
	}
	if env == Production && cfg.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required in production")
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("invalid server port %q: %w", cfg.ServerPort, err)
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return fmt.Errorf("invalid database port %q: %w", cfg.DBPort, err)
	}
	return nil
}
