package zohorecruit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func newTestTokenCache(t *testing.T, fv *fakeVendor, clock *fakeClock) *TokenCache {
	t.Helper()
	cfg := fv.config()
	cfg.Clock = clock.Now
	cfg.TokenTTL = 50 * time.Minute
	tc, err := NewTokenCache(cfg)
	if err != nil {
		t.Fatalf("NewTokenCache: %v", err)
	}
	return tc
}

func TestTokenCacheReusesTokenWithinTTL(t *testing.T) {
	fv := newFakeVendor(t)
	clock := newFakeClock()
	tc := newTestTokenCache(t, fv, clock)
	ctx := context.Background()

	first, err := tc.Token(ctx)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if first.Value != "tok-1" {
		t.Fatalf("token = %q, want tok-1", first.Value)
	}
	if want := clock.Now().Add(50 * time.Minute); !first.ExpiresAt.Equal(want) {
		t.Errorf("expiry = %v, want %v", first.ExpiresAt, want)
	}

	for i := 0; i < 5; i++ {
		clock.Advance(9 * time.Minute)
		tok, err := tc.Token(ctx)
		if err != nil {
			t.Fatalf("Token #%d: %v", i, err)
		}
		if tok != first {
			t.Fatalf("Token #%d = %+v, want cached %+v", i, tok, first)
		}
	}

	if got := fv.tokenCount(); got != 1 {
		t.Errorf("exchanges = %d, want 1", got)
	}
}

func TestTokenCacheRefreshesOnceAfterExpiry(t *testing.T) {
	fv := newFakeVendor(t)
	clock := newFakeClock()
	tc := newTestTokenCache(t, fv, clock)
	ctx := context.Background()

	if _, err := tc.Token(ctx); err != nil {
		t.Fatalf("Token: %v", err)
	}

	// expiry instant itself is no longer valid
	clock.Advance(50 * time.Minute)

	tok, err := tc.Token(ctx)
	if err != nil {
		t.Fatalf("Token after expiry: %v", err)
	}
	if tok.Value != "tok-2" {
		t.Errorf("token = %q, want tok-2", tok.Value)
	}
	if _, err := tc.Token(ctx); err != nil {
		t.Fatalf("Token: %v", err)
	}

	if got := fv.tokenCount(); got != 2 {
		t.Errorf("exchanges = %d, want 2", got)
	}
}

func TestTokenCacheConcurrentCallersShareExchange(t *testing.T) {
	fv := newFakeVendor(t)
	tc := newTestTokenCache(t, fv, newFakeClock())

	var wg sync.WaitGroup
	results := make([]AccessToken, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := tc.Token(context.Background())
			if err != nil {
				t.Errorf("Token: %v", err)
			}
			results[i] = tok
		}(i)
	}
	wg.Wait()

	for i, tok := range results {
		if tok.Value != "tok-1" {
			t.Errorf("caller %d got %q", i, tok.Value)
		}
	}
	if got := fv.tokenCount(); got != 1 {
		t.Errorf("exchanges = %d, want 1", got)
	}
}

func TestTokenCacheAuthenticationFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non-success status", status: http.StatusBadRequest, body: `{"error":"invalid_client"}`},
		{name: "error code with 200", status: http.StatusOK, body: `{"error":"invalid_code"}`},
		{name: "missing access token", status: http.StatusOK, body: `{"token_type":"Bearer","expires_in":3600}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := newFakeVendor(t)
			fv.tokenStatus = tt.status
			fv.tokenBody = tt.body
			tc := newTestTokenCache(t, fv, newFakeClock())

			_, err := tc.Token(context.Background())
			if !IsKind(err, KindAuthentication) {
				t.Fatalf("err = %v, want %s", err, KindAuthentication)
			}
		})
	}
}

func TestTokenCacheNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	authURL := srv.URL + "/oauth/v2/token"
	srv.Close()

	tc, err := NewTokenCache(Config{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RefreshToken: "refresh-1",
		AuthURL:      authURL,
	})
	if err != nil {
		t.Fatalf("NewTokenCache: %v", err)
	}

	_, err = tc.Token(context.Background())
	if !IsKind(err, KindNetwork) {
		t.Fatalf("err = %v, want %s", err, KindNetwork)
	}
}

func TestTokenCacheRequiresCredentials(t *testing.T) {
	_, err := NewTokenCache(Config{ClientID: "id"})
	if !IsKind(err, KindConfiguration) {
		t.Fatalf("err = %v, want %s", err, KindConfiguration)
	}
}

type memoryStore struct {
	mu    sync.Mutex
	token AccessToken
	saves int
	fail  error
}

func (s *memoryStore) Load(context.Context) (AccessToken, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return AccessToken{}, false, s.fail
	}
	return s.token, s.token.Value != "", nil
}

func (s *memoryStore) Save(_ context.Context, tok AccessToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.token = tok
	return s.fail
}

func TestTokenCacheSharedStore(t *testing.T) {
	fv := newFakeVendor(t)
	clock := newFakeClock()
	store := &memoryStore{token: AccessToken{Value: "tok-shared", ExpiresAt: clock.Now().Add(10 * time.Minute)}}

	cfg := fv.config()
	cfg.Clock = clock.Now
	cfg.TokenStore = store
	tc, err := NewTokenCache(cfg)
	if err != nil {
		t.Fatalf("NewTokenCache: %v", err)
	}

	tok, err := tc.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok.Value != "tok-shared" || fv.tokenCount() != 0 {
		t.Fatalf("expected shared token without exchange, got %q after %d exchanges", tok.Value, fv.tokenCount())
	}

	clock.Advance(11 * time.Minute)
	tok, err = tc.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok.Value != "tok-1" || store.saves != 1 {
		t.Errorf("expected fresh token saved to store, got %q saves=%d", tok.Value, store.saves)
	}
}

func TestTokenCacheIgnoresBrokenStore(t *testing.T) {
	fv := newFakeVendor(t)
	cfg := fv.config()
	cfg.TokenStore = &memoryStore{fail: errors.New("redis down")}
	tc, err := NewTokenCache(cfg)
	if err != nil {
		t.Fatalf("NewTokenCache: %v", err)
	}

	tok, err := tc.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok.Value != "tok-1" {
		t.Errorf("token = %q, want tok-1", tok.Value)
	}
}
