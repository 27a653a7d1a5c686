// Package config loads service settings from configs/config.yml, a local
// .env file and WIZARD_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "WIZARD"

// Session store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	Port      string
	Log       LogConfig
	DB        DBConfig
	Session   SessionConfig
	Redis     RedisConfig
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type DBConfig struct {
	Path string
}

type SessionConfig struct {
	Store           string
	TTL             time.Duration
	JanitorInterval time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	SigningKey  string
	TokenTTL    time.Duration
	// AllowSignUp opens POST /auth/sign-up to anyone.
	AllowSignUp bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig bounds requests per client IP on the session routes.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("session.store", StoreMemory)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.janitor_interval", "1m")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", "12h")
	v.SetDefault("auth.allow_signup", false)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 20)
}

// Load reads configuration from the given directories. A missing config
// file is not an error; defaults and the environment still apply.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DB: DBConfig{Path: v.GetString("db.path")},
		Session: SessionConfig{
			Store:           strings.ToLower(strings.TrimSpace(v.GetString("session.store"))),
			TTL:             v.GetDuration("session.ttl"),
			JanitorInterval: v.GetDuration("session.janitor_interval"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			SigningKey:  v.GetString("auth.signing_key"),
			TokenTTL:    v.GetDuration("auth.token_ttl"),
			AllowSignUp: v.GetBool("auth.allow_signup"),
		},
		CORS: CORSConfig{AllowedOrigins: splitOrigins(v.GetStringSlice("cors.allowed_origins"))},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("rate_limit.rps"),
			Burst: v.GetInt("rate_limit.burst"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("session.store: unknown backend %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.JanitorInterval <= 0 {
		return fmt.Errorf("session.janitor_interval must be positive, got %s", c.Session.JanitorInterval)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}

// splitOrigins accepts both a YAML list and a comma separated env value.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
