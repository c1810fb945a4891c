// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, validation, and defaults

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:9090"

database:
  path: "./test.db"

auth:
  jwt_secret: "a-test-signing-secret-of-32-chars!!"
  token_ttl: "24h"
  bcrypt_cost: 4

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "0.0.0.0:9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "0.0.0.0:9090")
	}
	if cfg.Database.Path != "./test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "./test.db")
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want %v", cfg.Auth.TokenTTL, 24*time.Hour)
	}
	if cfg.Auth.BcryptCost != 4 {
		t.Errorf("BcryptCost = %d, want 4", cfg.Auth.BcryptCost)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "a-test-signing-secret-of-32-chars!!"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != DefaultHTTPAddr {
		t.Errorf("HTTPAddr = %q, want default %q", cfg.Server.HTTPAddr, DefaultHTTPAddr)
	}
	if cfg.Auth.TokenTTL != DefaultTokenTTL {
		t.Errorf("TokenTTL = %v, want default %v", cfg.Auth.TokenTTL, DefaultTokenTTL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("MYFLIX_TEST_SECRET", "secret-from-environment-32-chars!!!")

	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "${MYFLIX_TEST_SECRET}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.JWTSecret != "secret-from-environment-32-chars!!!" {
		t.Errorf("JWTSecret = %q, want expanded env value", cfg.Auth.JWTSecret)
	}
}

func TestLoad_UnsetEnvVarExpandsEmpty(t *testing.T) {
	// An unset variable expands to the empty string, which validation then
	// rejects as a missing secret
	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "${MYFLIX_DEFINITELY_NOT_SET}"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() succeeded, want validation error")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("error = %v, want mention of jwt_secret", err)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing database path",
			content: `
auth:
  jwt_secret: "a-test-signing-secret-of-32-chars!!"
`,
			wantErr: "database.path",
		},
		{
			name: "missing jwt secret",
			content: `
database:
  path: "./test.db"
`,
			wantErr: "jwt_secret is required",
		},
		{
			name: "short jwt secret",
			content: `
database:
  path: "./test.db"

auth:
  jwt_secret: "too-short"
`,
			wantErr: "at least 32 characters",
		},
		{
			name: "bcrypt cost out of range",
			content: `
database:
  path: "./test.db"

auth:
  jwt_secret: "a-test-signing-secret-of-32-chars!!"
  bcrypt_cost: 99
`,
			wantErr: "bcrypt_cost",
		},
		{
			name: "bad log level",
			content: `
database:
  path: "./test.db"

auth:
  jwt_secret: "a-test-signing-secret-of-32-chars!!"

logging:
  level: "verbose"
`,
			wantErr: "logging.level",
		},
		{
			name: "bad log format",
			content: `
database:
  path: "./test.db"

auth:
  jwt_secret: "a-test-signing-secret-of-32-chars!!"

logging:
  format: "xml"
`,
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_BadDuration(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "a-test-signing-secret-of-32-chars!!"
  token_ttl: "one week"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() succeeded, want duration parse error")
	}
	if !strings.Contains(err.Error(), "token_ttl") {
		t.Errorf("error = %v, want mention of token_ttl", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() succeeded, want error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed"))
	if err == nil {
		t.Fatal("Load() succeeded, want YAML parse error")
	}
}
