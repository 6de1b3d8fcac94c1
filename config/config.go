package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Sources   SourcesConfig
	Analysis  AnalysisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SourceConfig holds one search provider's API settings
type SourceConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Enabled bool   `mapstructure:"enabled"`
}

// SourcesConfig holds all product search source configuration
type SourcesConfig struct {
	Google     SourceConfig `mapstructure:"google"`
	Amazon     SourceConfig `mapstructure:"amazon"`
	PartnerTag string       `mapstructure:"partner_tag"`
}

// AnalysisConfig holds LLM analysis configuration
type AnalysisConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory", "redis" or "none"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopscout/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Source defaults. Keys without a meaningful default still need one so
	// AutomaticEnv can surface them through Unmarshal.
	v.SetDefault("sources.google.api_key", "")
	v.SetDefault("sources.google.base_url", "https://serpapi.com")
	v.SetDefault("sources.google.enabled", true)
	v.SetDefault("sources.amazon.api_key", "")
	v.SetDefault("sources.amazon.base_url", "https://api.rainforestapi.com")
	v.SetDefault("sources.amazon.enabled", true)
	v.SetDefault("sources.partner_tag", "")

	// Analysis defaults
	v.SetDefault("analysis.api_key", "")
	v.SetDefault("analysis.model", "gpt-4o-mini")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Cache.Type {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("cache type must be 'memory', 'redis' or 'none', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when cache type is 'redis'")
	}

	if config.Sources.Google.Enabled && config.Sources.Google.APIKey == "" {
		return fmt.Errorf("google source API key is required (set SHOPSCOUT_SOURCES_GOOGLE_API_KEY)")
	}

	if config.Sources.Amazon.Enabled && config.Sources.Amazon.APIKey == "" {
		return fmt.Errorf("amazon source API key is required (set SHOPSCOUT_SOURCES_AMAZON_API_KEY)")
	}

	if !config.Sources.Google.Enabled && !config.Sources.Amazon.Enabled {
		return fmt.Errorf("at least one product source must be enabled")
	}

	return nil
}
