package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/glodam/glodam-mock-api/pkg/logger"
)

// Config application configuration
type Config struct {
	Env    string       `yaml:"env"`
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	JWT    JWTConfig    `yaml:"jwt"`
	Mock   MockConfig   `yaml:"mock"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// BaseURL is the origin the frontend is pointed at; it defaults to a
	// local placeholder and only feeds logging/CORS, since all state is
	// memory-resident in this process either way
	BaseURL string `yaml:"base_url"`
}

// CORSConfig CORS settings
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// JWTConfig dev-token settings
type JWTConfig struct {
	Secret           string `yaml:"secret"`
	ExpiresInMinutes int    `yaml:"expires_in_minutes"`
}

// MockConfig fixture behavior knobs
type MockConfig struct {
	// LatencyMs is the simulated per-request latency; 0 disables it
	LatencyMs int `yaml:"latency_ms"`
	// Seed pins the random source; 0 falls back to a time-based seed
	Seed int64 `yaml:"seed"`
}

// LogConfig logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML config file, then applies env-var overrides and
// defaults. A missing file is not fatal — env vars and defaults carry a
// fixture server fine.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		logger.GetLogger().Warn().Str("path", path).Msg("config file not found, using env/defaults")
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORS.AllowOrigins = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("MOCK_LATENCY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Mock.LatencyMs = ms
		}
	}
	if v := os.Getenv("MOCK_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Mock.Seed = seed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "local"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.CORS.AllowOrigins == "" {
		cfg.CORS.AllowOrigins = "http://localhost:3000"
	}
	if cfg.JWT.Secret == "" {
		// 개발용 고정 시크릿 — 실서비스 자격증명이 아님
		cfg.JWT.Secret = "glodam-mock-dev-secret"
	}
	if cfg.JWT.ExpiresInMinutes == 0 {
		cfg.JWT.ExpiresInMinutes = 12 * 60
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// IsDevelopment reports whether this is a dev-style environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LogResolved logs the effective settings at startup
func LogResolved(cfg *Config) {
	logger.GetLogger().Info().
		Str("env", cfg.Env).
		Str("addr", cfg.Addr()).
		Str("base_url", cfg.Server.BaseURL).
		Str("cors_allow_origins", cfg.CORS.AllowOrigins).
		Int("mock_latency_ms", cfg.Mock.LatencyMs).
		Int64("mock_seed", cfg.Mock.Seed).
		Msg("config resolved")
}
