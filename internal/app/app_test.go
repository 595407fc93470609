package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/honeycarbs/unified-ats/internal/config"
	"github.com/honeycarbs/unified-ats/pkg/logging"
	"github.com/honeycarbs/unified-ats/pkg/zohorecruit"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Host = "127.0.0.1"
	cfg.Port = "0"
	cfg.Zoho.ClientID = "id"
	cfg.Zoho.ClientSecret = "secret"
	cfg.Zoho.RefreshToken = "refresh"
	cfg.Zoho.BaseURL = "http://127.0.0.1:1/recruit/v2"
	return cfg
}

func TestInitializeServer(t *testing.T) {
	srv, cleanup, err := InitializeServer(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("InitializeServer: %v", err)
	}
	defer cleanup()

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("healthz = %d", rec.Code)
	}
}

func TestInitializeServerRejectsMissingCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Zoho.RefreshToken = ""

	_, _, err := InitializeServer(context.Background(), cfg, logging.NewNop())
	if !zohorecruit.IsKind(err, zohorecruit.KindConfiguration) {
		t.Fatalf("err = %v, want %s", err, zohorecruit.KindConfiguration)
	}
}

func TestProvideTokenStoreFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Addr = "127.0.0.1:1"

	store, cleanup := provideTokenStore(context.Background(), cfg, logging.NewNop())
	defer cleanup()
	if store != nil {
		t.Errorf("store = %v, want nil when redis is unreachable", store)
	}
}
