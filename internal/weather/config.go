// internal/weather/config.go
package weather

import (
	"time"

	"bank-support/internal/common/config"
)

type Config struct {
	BaseURL    string
	APIKey     string
	Units      string
	Timeout    time.Duration
	MaxRetries int

	CacheTTL time.Duration

	Region    string
	Bucket    string
	KeyPrefix string
}

func LoadConfig() *Config {
	return &Config{
		BaseURL:    "http://api.openweathermap.org/data/2.5/weather",
		Units:      "imperial",
		Timeout:    10 * time.Second,
		MaxRetries: 3,
		CacheTTL:   5 * time.Minute,
		Region:     "us-east-1",
		KeyPrefix:  "weather-data/",
	}
}

// FromAppConfig maps the application configuration onto the dashboard config.
func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	if cfg.Weather.BaseURL != "" {
		c.BaseURL = cfg.Weather.BaseURL
	}
	c.APIKey = cfg.Weather.APIKey
	if cfg.Weather.Units != "" {
		c.Units = cfg.Weather.Units
	}
	if cfg.Weather.Timeout > 0 {
		c.Timeout = config.GetDuration(cfg.Weather.Timeout)
	}
	if cfg.Weather.MaxRetries > 0 {
		c.MaxRetries = cfg.Weather.MaxRetries
	}
	if cfg.Cache.TTL > 0 {
		c.CacheTTL = time.Duration(cfg.Cache.TTL) * time.Second
	}
	if cfg.Storage.Region != "" {
		c.Region = cfg.Storage.Region
	}
	c.Bucket = cfg.Storage.Bucket
	if cfg.Storage.KeyPrefix != "" {
		c.KeyPrefix = cfg.Storage.KeyPrefix
	}
	return c
}
