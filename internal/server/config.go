package server

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the HTTP server settings.
type Config struct {
	Server    ServerConfig
	Rules     RulesConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds listener and timeout settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// RulesConfig points at an optional tax-year rules file.
type RulesConfig struct {
	File string `mapstructure:"file"`
}

// RateLimitConfig bounds request throughput on the API routes.
// A non-positive RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// IsProduction reports whether gin should run in release mode
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// Load reads configuration from environment variables with the TAXEASE_ prefix.
// A .env file in the working directory is read first; variables already set
// in the environment take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TAXEASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("rules.file", "")
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 30)

	cfg := &Config{}
	cfg.Server.Port = v.GetString("server.port")
	cfg.Server.ReadTimeout = v.GetDuration("server.read_timeout")
	cfg.Server.WriteTimeout = v.GetDuration("server.write_timeout")
	cfg.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")
	cfg.Server.Environment = v.GetString("server.environment")
	cfg.Rules.File = v.GetString("rules.file")
	cfg.RateLimit.RequestsPerSecond = v.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	if !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}

	return cfg, nil
}
