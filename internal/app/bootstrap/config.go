package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the auth service.
// It merges file defaults and environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID string

	HTTPPort int

	DatabaseURL string
	RedisURL    string

	BcryptCost int

	LoginRateLimitThreshold    int
	LoginRateLimitWindow       time.Duration
	RegisterRateLimitThreshold int
	RegisterRateLimitWindow    time.Duration

	MaxDBConns    int32
	SweepInterval time.Duration
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	RateLimits struct {
		Login struct {
			Threshold     int `yaml:"threshold"`
			WindowSeconds int `yaml:"window_seconds"`
		} `yaml:"login"`
		Register struct {
			Threshold     int `yaml:"threshold"`
			WindowSeconds int `yaml:"window_seconds"`
		} `yaml:"register"`
	} `yaml:"rate_limits"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:                  "taskdeck-auth",
		HTTPPort:                   8080,
		BcryptCost:                 12,
		LoginRateLimitThreshold:    10,
		LoginRateLimitWindow:       time.Minute,
		RegisterRateLimitThreshold: 5,
		RegisterRateLimitWindow:    time.Minute,
		MaxDBConns:                 20,
		SweepInterval:              15 * time.Minute,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.RateLimits.Login.Threshold > 0 {
			cfg.LoginRateLimitThreshold = f.RateLimits.Login.Threshold
		}
		if f.RateLimits.Login.WindowSeconds > 0 {
			cfg.LoginRateLimitWindow = time.Duration(f.RateLimits.Login.WindowSeconds) * time.Second
		}
		if f.RateLimits.Register.Threshold > 0 {
			cfg.RegisterRateLimitThreshold = f.RateLimits.Register.Threshold
		}
		if f.RateLimits.Register.WindowSeconds > 0 {
			cfg.RegisterRateLimitWindow = time.Duration(f.RateLimits.Register.WindowSeconds) * time.Second
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.BcryptCost = envInt("BCRYPT_ROUNDS", cfg.BcryptCost)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))

	cfg.LoginRateLimitThreshold = envInt("LOGIN_RATE_LIMIT_THRESHOLD", cfg.LoginRateLimitThreshold)
	cfg.LoginRateLimitWindow = time.Duration(envInt("LOGIN_RATE_LIMIT_WINDOW_SECONDS", int(cfg.LoginRateLimitWindow.Seconds()))) * time.Second
	cfg.RegisterRateLimitThreshold = envInt("REGISTER_RATE_LIMIT_THRESHOLD", cfg.RegisterRateLimitThreshold)
	cfg.RegisterRateLimitWindow = time.Duration(envInt("REGISTER_RATE_LIMIT_WINDOW_SECONDS", int(cfg.RegisterRateLimitWindow.Seconds()))) * time.Second
	cfg.SweepInterval = time.Duration(envInt("SESSION_SWEEP_INTERVAL_SECONDS", int(cfg.SweepInterval.Seconds()))) * time.Second

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
