// Package config loads gateway configuration from environment variables
// (optionally backed by a .env file), env vars taking priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the console gateway configuration.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Notify   NotifyConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// Development reports whether the app runs in development mode.
func (c AppConfig) Development() bool {
	return c.Env == "development"
}

// HTTPConfig holds the gateway's listen settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UpstreamConfig points at the inventory backend the console talks to.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig holds the connection for batch slots and notifications.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NotifyConfig configures the realtime notification channel.
type NotifyConfig struct {
	Channel string
}

// Load reads configuration via Viper from env vars and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: v.GetString("UPSTREAM_BASE_URL"),
			Timeout: v.GetDuration("UPSTREAM_TIMEOUT"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Notify: NotifyConfig{
			Channel: v.GetString("NOTIFY_CHANNEL"),
		},
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "stockgate")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("UPSTREAM_TIMEOUT", 30*time.Second)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("NOTIFY_CHANNEL", "wareHouseAction")
}
