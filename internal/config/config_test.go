package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: ":9000"
auth:
  token_secret: "secret"
  token_ttl: 1h
sender:
  name: "Anya Ganger"
  email: "anya@sunglassai.com"
provider:
  type: http
  api_key: "sg-key"
bulk:
  batch_size: 5
  delay_between_batches: 2s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Sender.Name != "Anya Ganger" {
		t.Errorf("Sender.Name = %q", cfg.Sender.Name)
	}
	if cfg.Bulk.BatchSize != 5 || cfg.Bulk.DelayBetween != 2*time.Second {
		t.Errorf("Bulk = %+v", cfg.Bulk)
	}
	// Defaults survive partial config.
	if cfg.Storage.Path == "" {
		t.Error("Storage.Path default missing")
	}
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "env-key")
	t.Setenv("OUTREACH_TOKEN_SECRET", "env-secret")

	path := writeConfig(t, `
server:
  listen_addr: ":9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env fallback", cfg.Provider.APIKey)
	}
	if cfg.Auth.TokenSecret != "env-secret" {
		t.Errorf("TokenSecret = %q, want env fallback", cfg.Auth.TokenSecret)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults with secret",
			mutate:  func(c *Config) { c.Auth.TokenSecret = "s" },
			wantErr: false,
		},
		{
			name:    "missing token secret",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name: "oidc without issuer",
			mutate: func(c *Config) {
				c.Auth.OIDC.Enabled = true
			},
			wantErr: true,
		},
		{
			name: "bad provider type",
			mutate: func(c *Config) {
				c.Auth.TokenSecret = "s"
				c.Provider.Type = "carrier-pigeon"
			},
			wantErr: true,
		},
		{
			name: "missing listen addr",
			mutate: func(c *Config) {
				c.Auth.TokenSecret = "s"
				c.Server.ListenAddr = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/no/such/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
