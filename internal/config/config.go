package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Session store backends selectable at construction time.
const (
	SessionBackendMemory   = "memory"
	SessionBackendDatabase = "database"
	SessionBackendRedis    = "redis"
)

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type SessionConfig struct {
	Backend  string `yaml:"backend"`
	Duration string `yaml:"duration"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type PasswordConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type SMTPConfig struct {
	Addr string `yaml:"addr"`
	From string `yaml:"from"`
}

type LogConfig struct {
	Level      string   `yaml:"level"`
	RedactKeys []string `yaml:"redact_keys"`
}

type ConfigFile struct {
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Redis    RedisConfig    `yaml:"redis"`
	Password PasswordConfig `yaml:"password"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Log      LogConfig      `yaml:"log"`
}

type Config struct {
	DSN             string
	SessionBackend  string
	SessionDuration time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	BcryptCost      int
	SMTPAddr        string
	SMTPFrom        string
	LogLevel        string
	RedactKeys      []string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for the
// values that differ per deployment.
func Load() (*Config, error) {
	return LoadFrom(env("AUTHSVC_CONFIG", "config/config.yml"))
}

// LoadFrom reads the config file at path.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	backend := env("SESSION_BACKEND", configFile.Session.Backend)
	switch backend {
	case SessionBackendMemory, SessionBackendDatabase, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("unknown session backend %q", backend)
	}

	// A missing or non-positive duration means sessions never expire.
	duration := time.Duration(0)
	if raw := env("SESSION_DURATION", configFile.Session.Duration); raw != "" {
		duration, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session duration: %w", err)
		}
	}

	redisDB := configFile.Redis.DB
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		redisDB, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	redactKeys := configFile.Log.RedactKeys
	if len(redactKeys) == 0 {
		redactKeys = []string{"password", "reset_token", "session_id"}
	}

	return &Config{
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		SessionBackend:  backend,
		SessionDuration: duration,
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         redisDB,
		BcryptCost:      configFile.Password.BcryptCost,
		SMTPAddr:        env("SMTP_ADDR", configFile.SMTP.Addr),
		SMTPFrom:        env("SMTP_FROM", configFile.SMTP.From),
		LogLevel:        env("LOG_LEVEL", configFile.Log.Level),
		RedactKeys:      redactKeys,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
