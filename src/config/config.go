package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the service reads at startup.
type Config struct {
	Server struct {
		Port           string `yaml:"port" env:"APP_PORT"`
		AllowedOrigins string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Store struct {
		Backend string `yaml:"backend" env:"STORE_BACKEND"` // mongo | memory
	} `yaml:"store"`

	Mongo struct {
		URI      string `yaml:"uri" env:"MONGO_URI"`
		Database string `yaml:"database" env:"MONGO_DATABASE"`
	} `yaml:"mongo"`

	Redis struct {
		URI      string `yaml:"uri" env:"REDIS_URI"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
	} `yaml:"redis"`

	LLM struct {
		APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
		Model  string `yaml:"model" env:"GEMINI_MODEL"`
	} `yaml:"llm"`

	Auth struct {
		Enabled   bool   `yaml:"enabled" env:"AUTH_ENABLED"`
		JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
		TokenTTL  string `yaml:"token_ttl" env:"JWT_TOKEN_TTL"`
	} `yaml:"auth"`

	Chat struct {
		RateLimit int `yaml:"rate_limit" env:"CHAT_RATE_LIMIT"` // requests per minute per IP
	} `yaml:"chat"`

	Budget struct {
		LoanInitial float64 `yaml:"loan_initial" env:"LOAN_BUDGET_INITIAL"`
	} `yaml:"budget"`

	Seed struct {
		Demo bool `yaml:"demo" env:"SEED_DEMO_DATA"` // sample applications on an empty store
	} `yaml:"seed"`

	Scheduler struct {
		StatusRefresh string `yaml:"status_refresh" env:"STATUS_REFRESH_SPEC"`
	} `yaml:"scheduler"`

	Worker struct {
		Concurrency int `yaml:"concurrency" env:"WORKER_CONCURRENCY"`
	} `yaml:"worker"`

	SMTP struct {
		Host string `yaml:"host" env:"SMTP_HOST"`
		Port int    `yaml:"port" env:"SMTP_PORT"`
		User string `yaml:"user" env:"SMTP_USER"`
		Pass string `yaml:"pass" env:"SMTP_PASS"`
		From string `yaml:"from" env:"SMTP_FROM"`
	} `yaml:"smtp"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
	} `yaml:"logging"`
}

// Load builds the configuration: defaults, then the YAML file when present,
// then .env and process environment overrides.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// a missing .env is normal outside local development
	_ = godotenv.Load()

	if err := processStructFields(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Path returns the config file location, CONFIG_PATH or config.yaml.
func Path() string {
	return GetEnv("CONFIG_PATH", "config.yaml")
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = "8888"
	cfg.Server.AllowedOrigins = "*"
	cfg.Store.Backend = "mongo"
	cfg.Mongo.Database = "AdmissionDB"
	cfg.LLM.Model = "gemini-2.0-flash"
	cfg.Auth.TokenTTL = "24h"
	cfg.Chat.RateLimit = 30
	cfg.Scheduler.StatusRefresh = "@every 5m"
	cfg.Worker.Concurrency = 4
	cfg.Logging.Level = "info"
	cfg.Logging.Pretty = true
}

func validateConfig(cfg *Config) error {
	switch cfg.Store.Backend {
	case "mongo":
		if cfg.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo store backend")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when auth is enabled")
	}
	if cfg.Chat.RateLimit < 0 {
		return fmt.Errorf("chat rate limit must not be negative")
	}
	return nil
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return strings.TrimSpace(c.Redis.URI) != ""
}

// SMTPEnabled reports whether every SMTP setting needed to send mail is present.
func (c *Config) SMTPEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.Port != 0 && c.SMTP.User != "" && c.SMTP.Pass != "" && c.SMTP.From != ""
}
