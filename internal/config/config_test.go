package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var zohoEnv = []string{
	"ZOHO_CLIENT_ID", "ZOHO_CLIENT_SECRET", "ZOHO_REFRESH_TOKEN", "ZOHO_BASE_URL",
	"ZOHO_AUTH_URL", "ZOHO_TOKEN_TTL", "REDIS_ADDR", "REDIS_DB", "PORT", "ATS_CONFIG_FILE",
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range zohoEnv {
		t.Setenv(key, "")
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ZOHO_CLIENT_ID", "id")
	t.Setenv("ZOHO_CLIENT_SECRET", "secret")
	t.Setenv("ZOHO_REFRESH_TOKEN", "refresh")
	t.Setenv("ZOHO_BASE_URL", "https://recruit.zoho.in/recruit/v2")
}

func TestLoadReportsAllMissingVars(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{"ZOHO_CLIENT_ID", "ZOHO_CLIENT_SECRET", "ZOHO_REFRESH_TOKEN", "ZOHO_BASE_URL"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.Zoho.TokenTTL != 0 {
		t.Errorf("TokenTTL = %v, want zero so the client default applies", cfg.Zoho.TokenTTL)
	}
	if cfg.Telemetry.ServiceName != "unified-ats" {
		t.Errorf("ServiceName = %q", cfg.Telemetry.ServiceName)
	}
}

func TestLoadParsesOptionalValues(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("ZOHO_TOKEN_TTL", "45m")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Zoho.TokenTTL != 45*time.Minute {
		t.Errorf("TokenTTL = %v", cfg.Zoho.TokenTTL)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("Redis.DB = %d", cfg.Redis.DB)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("ZOHO_TOKEN_TTL", "soon")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "ZOHO_TOKEN_TTL") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadFileWithEnvExpansion(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_ZOHO_SECRET", "from-env")

	path := filepath.Join(t.TempDir(), "ats.yaml")
	content := `
port: "9090"
zoho:
  client_id: file-id
  client_secret: ${TEST_ZOHO_SECRET}
  refresh_token: file-refresh
  base_url: https://recruit.zoho.eu/recruit/v2
  token_ttl: 30m
redis:
  addr: localhost:6379
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ATS_CONFIG_FILE", path)
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Zoho.ClientSecret != "from-env" {
		t.Errorf("ClientSecret = %q", cfg.Zoho.ClientSecret)
	}
	if cfg.Zoho.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v", cfg.Zoho.TokenTTL)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port = %q, env should win over file", cfg.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
}

func TestExpandEnvVarsKeepsUnknown(t *testing.T) {
	t.Setenv("TEST_KNOWN", "x")
	if got := expandEnvVars("${TEST_KNOWN}-${TEST_UNKNOWN_VAR}"); got != "x-${TEST_UNKNOWN_VAR}" {
		t.Errorf("expandEnvVars = %q", got)
	}
}
