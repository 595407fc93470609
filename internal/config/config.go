package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config contains runtime settings for the unified ATS server
type Config struct {
	LogLevel string `yaml:"log_level"`
	Host     string `yaml:"host"` // default 0.0.0.0
	Port     string `yaml:"port"` // default PORT env or 8080

	Zoho struct {
		ClientID     string        `yaml:"client_id"`
		ClientSecret string        `yaml:"client_secret"`
		RefreshToken string        `yaml:"refresh_token"`
		BaseURL      string        `yaml:"base_url"`
		AuthURL      string        `yaml:"auth_url"`
		TokenTTL     time.Duration `yaml:"token_ttl"`
	} `yaml:"zoho"`

	// Redis is optional; an empty Addr keeps tokens process-local
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Sheets struct {
		CredentialsPath string `yaml:"credentials_path"`
	} `yaml:"sheets"`

	Telemetry struct {
		Endpoint    string `yaml:"endpoint"`
		ServiceName string `yaml:"service_name"`
	} `yaml:"telemetry"`
}

// Addr returns host:port for the HTTP listener
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads .env, the optional ATS_CONFIG_FILE and then the environment.
// Environment variables win over file values.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.Telemetry.ServiceName = "unified-ats"

	if path := os.Getenv("ATS_CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	var missingVars []string

	if cfg.Zoho.ClientID == "" {
		missingVars = append(missingVars, "ZOHO_CLIENT_ID")
	}

	if cfg.Zoho.ClientSecret == "" {
		missingVars = append(missingVars, "ZOHO_CLIENT_SECRET")
	}

	if cfg.Zoho.RefreshToken == "" {
		missingVars = append(missingVars, "ZOHO_REFRESH_TOKEN")
	}

	if cfg.Zoho.BaseURL == "" {
		missingVars = append(missingVars, "ZOHO_BASE_URL")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(b))), cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("HOST", &cfg.Host)
	setString("PORT", &cfg.Port)

	setString("ZOHO_CLIENT_ID", &cfg.Zoho.ClientID)
	setString("ZOHO_CLIENT_SECRET", &cfg.Zoho.ClientSecret)
	setString("ZOHO_REFRESH_TOKEN", &cfg.Zoho.RefreshToken)
	setString("ZOHO_BASE_URL", &cfg.Zoho.BaseURL)
	setString("ZOHO_AUTH_URL", &cfg.Zoho.AuthURL)

	if v := os.Getenv("ZOHO_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ZOHO_TOKEN_TTL %q: %w", v, err)
		}
		cfg.Zoho.TokenTTL = ttl
	}

	setString("REDIS_ADDR", &cfg.Redis.Addr)
	setString("REDIS_PASSWORD", &cfg.Redis.Password)
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Redis.DB = db
	}

	setString("GOOGLE_SHEETS_CREDENTIALS_PATH", &cfg.Sheets.CredentialsPath)
	setString("OTEL_EXPORTER_OTLP_ENDPOINT", &cfg.Telemetry.Endpoint)
	setString("OTEL_SERVICE_NAME", &cfg.Telemetry.ServiceName)

	return nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with its value, leaving unknown names untouched
func expandEnvVars(content string) string {
	return envRef.ReplaceAllStringFunc(content, func(match string) string {
		if value := os.Getenv(match[2 : len(match)-1]); value != "" {
			return value
		}
		return match
	})
}
