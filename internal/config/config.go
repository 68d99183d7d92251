package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aliefadha/tekiro-cms/client"
	"github.com/aliefadha/tekiro-cms/client/tokenstore"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Prefix is the environment variable prefix, e.g. TEKIRO_API_BASE_URL.
const Prefix = "TEKIRO"

// DefaultEnvFile is loaded by New when no env files are given.
const DefaultEnvFile = ".env"

// Config holds the CLI's client settings.
// Environment variables are automatically parsed from the TEKIRO_ prefix.
type Config struct {
	// Backend origin; empty means the client default.
	APIBaseURL string `envconfig:"API_BASE_URL" default:""`

	// Where the bearer token is persisted between runs.
	TokenFile string `envconfig:"TOKEN_FILE" default:""`

	// Coarse per-request bound; 0 disables it.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`

	// Client-side rate limiting; RateLimit 0 disables it.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"0"`
	RateBurst int     `envconfig:"RATE_BURST" default:"1"`

	// How long list and get results are served from the query cache.
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	// Dump HTTP traffic at debug level.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// "console" or "json".
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// New loads env files (DefaultEnvFile when none are given; missing files are
// skipped), then parses TEKIRO_* variables. Variables already set in the
// environment win over env files.
func New(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := loadEnvFile(f); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_base_url", cfg.APIBaseURL).
		Str("token_file", cfg.TokenFile).
		Dur("http_timeout", cfg.HTTPTimeout).
		Float64("rate_limit", cfg.RateLimit).
		Int("rate_burst", cfg.RateBurst).
		Dur("cache_ttl", cfg.CacheTTL).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat env file %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}
	return nil
}

// ResolveDefaults fills derived values and validates ranges.
func (c *Config) ResolveDefaults() error {
	c.APIBaseURL = client.ResolveBaseURL(c.APIBaseURL)

	if c.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return errors.Wrap(err, "locate user config dir for token file")
		}
		c.TokenFile = filepath.Join(dir, "tekiro", "credentials.json")
	}

	switch {
	case c.HTTPTimeout < 0:
		return fmt.Errorf("unsupported HTTP_TIMEOUT: %s", c.HTTPTimeout)
	case c.RateLimit < 0:
		return fmt.Errorf("unsupported RATE_LIMIT: %v", c.RateLimit)
	case c.CacheTTL <= 0:
		return fmt.Errorf("unsupported CACHE_TTL: %s", c.CacheTTL)
	}
	if c.RateBurst < 1 {
		c.RateBurst = 1
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT: %s", c.LogFormat)
	}
	return nil
}

// TokenStore is the file-backed store at TokenFile.
func (c *Config) TokenStore() *tokenstore.FileStore {
	return tokenstore.NewFileStore(c.TokenFile)
}

// ClientOptions translates the configuration into client options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithBaseURL(c.APIBaseURL),
		client.WithTokenStore(c.TokenStore()),
		client.WithDebugLogging(c.Debug),
	}
	if c.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(c.HTTPTimeout))
	}
	if c.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(c.RateLimit, c.RateBurst))
	}
	return opts
}
