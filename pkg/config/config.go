package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/tgrss/pkg/telegram"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Telegram TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram channel page fetching"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=Access key expected in the key query parameter (can use environment variable)"`
	CacheMaxAge time.Duration `yaml:"cache_max_age" json:"cache_max_age" jsonschema:"default=60s,description=Max age of the feed response for http caches"`
}

// TelegramConfig holds settings of the channel page fetcher
type TelegramConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://t.me,description=Base URL of telegram web preview pages"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Channel page fetch timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for channel page requests"`
}

// New makes configuration with all defaults set, used when no config file given
func New() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file and fills defaults. It doesn't validate,
// the caller applies command line overrides first and calls Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.CacheMaxAge == 0 {
		c.Server.CacheMaxAge = 60 * time.Second
	}

	if c.Telegram.BaseURL == "" {
		c.Telegram.BaseURL = telegram.DefaultBaseURL
	}
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = telegram.DefaultTimeout
	}
	if c.Telegram.UserAgent == "" {
		c.Telegram.UserAgent = telegram.DefaultUserAgent
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if c.Server.APIKey == "" {
		return fmt.Errorf("server.api_key is required")
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if c.Server.CacheMaxAge < 0 {
		return fmt.Errorf("server.cache_max_age must be non-negative")
	}
	if c.Telegram.Timeout < time.Second {
		return fmt.Errorf("telegram timeout must be at least 1 second")
	}
	if c.Telegram.Timeout > c.Server.Timeout {
		return fmt.Errorf("telegram timeout %v exceeds server timeout %v", c.Telegram.Timeout, c.Server.Timeout)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(c); err != nil {
		// schema validation is supplementary
		log.Printf("[WARN] schema validation failed: %v", err)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAPIKey returns the access key of feed requests
func (c *Config) GetAPIKey() string {
	return c.Server.APIKey
}

// GetCacheMaxAge returns max age of feed responses
func (c *Config) GetCacheMaxAge() time.Duration {
	return c.Server.CacheMaxAge
}

// GetTelegramConfig returns channel page fetcher configuration
func (c *Config) GetTelegramConfig() TelegramConfig {
	return c.Telegram
}
