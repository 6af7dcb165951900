package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Routing RoutingConfig
	Geocode GeocodeConfig
	API     APIConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type FeedConfig struct {
	RefreshInterval   time.Duration
	HeartbeatInterval time.Duration
}

type RoutingConfig struct {
	ORSBaseURL  string
	ORSAPIKey   string
	OSRMBaseURL string
	Timeout     time.Duration
}

type GeocodeConfig struct {
	NominatimBaseURL string
	Timeout          time.Duration
}

type APIConfig struct {
	RateLimitRPS int
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", ""),
			Port: getEnvInt("PORT", 3001),
		},
		Feed: FeedConfig{
			RefreshInterval:   getEnvDuration("FEED_REFRESH_INTERVAL", 10*time.Minute),
			HeartbeatInterval: getEnvDuration("BROADCAST_HEARTBEAT_INTERVAL", 30*time.Second),
		},
		Routing: RoutingConfig{
			ORSBaseURL:  getEnv("ORS_URL", "https://api.openrouteservice.org"),
			ORSAPIKey:   getEnv("ORS_API_KEY", "demo"),
			OSRMBaseURL: getEnv("OSRM_URL", "http://router.project-osrm.org"),
			Timeout:     getEnvDuration("ROUTING_TIMEOUT", 10*time.Second),
		},
		Geocode: GeocodeConfig{
			NominatimBaseURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
			Timeout:          getEnvDuration("GEOCODE_TIMEOUT", 10*time.Second),
		},
		API: APIConfig{
			RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 25),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Feed.RefreshInterval < time.Minute {
		return fmt.Errorf("feed refresh interval must be at least 1 minute")
	}
	if c.Feed.HeartbeatInterval < time.Second {
		return fmt.Errorf("broadcast heartbeat interval must be at least 1 second")
	}
	if c.API.RateLimitRPS < 1 {
		return fmt.Errorf("rate limit must be at least 1 req/s")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
