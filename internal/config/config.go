// Package config loads the service configuration from YAML with
// environment-variable fallbacks for secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sunglassai/outreach/internal/auth"
	"github.com/sunglassai/outreach/internal/template"
)

// Config is the main configuration structure.
type Config struct {
	Server   ServerConfig      `yaml:"server"`
	Storage  StorageConfig     `yaml:"storage"`
	Accounts AccountsConfig    `yaml:"accounts"`
	Auth     AuthConfig        `yaml:"auth"`
	Sender   template.Identity `yaml:"sender"`
	Provider ProviderConfig    `yaml:"provider"`
	Bulk     BulkConfig        `yaml:"bulk"`
	Logging  LoggingConfig     `yaml:"logging"`
	Metrics  MetricsConfig     `yaml:"metrics"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// StorageConfig locates the key/value database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// AccountsConfig locates the user-accounts database.
type AccountsConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig contains bearer-token settings. When OIDC is enabled the
// hosted provider verifies tokens instead of the local issuer.
type AuthConfig struct {
	TokenSecret string          `yaml:"token_secret"`
	TokenTTL    time.Duration   `yaml:"token_ttl"`
	OIDC        auth.OIDCConfig `yaml:"oidc"`
}

// ProviderConfig selects and configures the email delivery transport.
type ProviderConfig struct {
	// Type is "http" (transactional API) or "smtp" (authenticated relay).
	Type      string     `yaml:"type"`
	APIKey    string     `yaml:"api_key"`
	BaseURL   string     `yaml:"base_url"`
	FromName  string     `yaml:"from_name"`
	FromEmail string     `yaml:"from_email"`
	SMTP      SMTPConfig `yaml:"smtp"`
}

// SMTPConfig configures the relay transport.
type SMTPConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// BulkConfig paces bulk campaigns.
type BulkConfig struct {
	BatchSize    int           `yaml:"batch_size"`
	DelayBetween time.Duration `yaml:"delay_between_batches"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{ListenAddr: ":8080"},
		Storage:  StorageConfig{Path: "./data/outreach.db"},
		Accounts: AccountsConfig{Path: "./data/accounts.db"},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Provider: ProviderConfig{
			Type: "http",
		},
		Bulk: BulkConfig{
			BatchSize:    10,
			DelayBetween: time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over the defaults. Secrets left
// empty fall back to environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.Provider.APIKey == "" {
		c.Provider.APIKey = os.Getenv("SENDGRID_API_KEY")
	}
	if c.Auth.TokenSecret == "" {
		c.Auth.TokenSecret = os.Getenv("OUTREACH_TOKEN_SECRET")
	}
	if c.Provider.SMTP.Password == "" {
		c.Provider.SMTP.Password = os.Getenv("OUTREACH_SMTP_PASSWORD")
	}
}

// Validate checks the configuration for hard errors. A missing provider
// API key is not one: sends then fail and are recorded as failed.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Accounts.Path == "" {
		return fmt.Errorf("accounts.path is required")
	}
	if !c.Auth.OIDC.Enabled && c.Auth.TokenSecret == "" {
		return fmt.Errorf("auth.token_secret is required when OIDC is disabled")
	}
	if c.Auth.OIDC.Enabled && c.Auth.OIDC.IssuerURL == "" {
		return fmt.Errorf("auth.oidc.issuer_url is required when OIDC is enabled")
	}

	switch c.Provider.Type {
	case "http", "smtp":
	default:
		return fmt.Errorf("provider.type must be http or smtp, got %q", c.Provider.Type)
	}

	return nil
}
