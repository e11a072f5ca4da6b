// Package config loads service settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration validation errors.
var (
	ErrMissingNewsDataKey      = errors.New("NEWS_KEY is required")
	ErrMissingCoinMarketCapKey = errors.New("COINMARKETCAP_API_KEY is required")
	ErrInvalidLogLevel         = errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	ErrInvalidCacheTTL         = errors.New("CACHE_TTL must be positive when REDIS_URL is set")
	ErrInvalidTimeout          = errors.New("HTTP_CLIENT_TIMEOUT must not be negative")
	ErrInvalidGinMode          = errors.New("GIN_MODE must be one of: debug, release, test")
)

const (
	DefaultListenAddr = "127.0.0.1:8080"
	DefaultCacheTTL   = 5 * time.Minute
)

// Config is the complete service configuration.
type Config struct {
	NewsDataAPIKey      string
	CoinMarketCapAPIKey string

	FinnhubAPIKey      string
	AlphaVantageAPIKey string
	MassiveAPIKey      string

	ListenAddr  string
	FrontendURL string
	GinMode     string
	LogLevel    string

	// HTTPClientTimeout applies to every outbound request. Zero means no
	// timeout.
	HTTPClientTimeout time.Duration

	RedisURL string
	CacheTTL time.Duration
}

// Load reads .env (if present) and the process environment, then validates
// the result.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", DefaultListenAddr)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "0s")
	v.SetDefault("CACHE_TTL", DefaultCacheTTL.String())

	cfg := &Config{
		NewsDataAPIKey:      strings.TrimSpace(v.GetString("NEWS_KEY")),
		CoinMarketCapAPIKey: strings.TrimSpace(v.GetString("COINMARKETCAP_API_KEY")),
		FinnhubAPIKey:       strings.TrimSpace(v.GetString("FINNHUB_API_KEY")),
		AlphaVantageAPIKey:  strings.TrimSpace(v.GetString("ALPHA_VANTAGE_API_KEY")),
		MassiveAPIKey:       strings.TrimSpace(v.GetString("MASSIVE_API_KEY")),
		ListenAddr:          v.GetString("LISTEN_ADDR"),
		FrontendURL:         v.GetString("FRONTEND_URL"),
		GinMode:             v.GetString("GIN_MODE"),
		LogLevel:            strings.ToLower(v.GetString("LOG_LEVEL")),
		RedisURL:            v.GetString("REDIS_URL"),
	}

	var err error
	cfg.HTTPClientTimeout, err = time.ParseDuration(v.GetString("HTTP_CLIENT_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing HTTP_CLIENT_TIMEOUT: %w", err)
	}

	cfg.CacheTTL, err = time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parsing CACHE_TTL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required keys and value ranges.
func (c *Config) Validate() error {
	if c.NewsDataAPIKey == "" {
		return ErrMissingNewsDataKey
	}

	if c.CoinMarketCapAPIKey == "" {
		return ErrMissingCoinMarketCapKey
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return ErrInvalidGinMode
	}

	if c.HTTPClientTimeout < 0 {
		return ErrInvalidTimeout
	}

	if c.RedisURL != "" && c.CacheTTL <= 0 {
		return ErrInvalidCacheTTL
	}

	return nil
}

// ParseLevel maps a LOG_LEVEL value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, ErrInvalidLogLevel
	}
}
