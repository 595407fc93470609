package zohorecruit

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/honeycarbs/unified-ats/pkg/logging"
)

const (
	defaultAuthURL  = "https://accounts.zoho.in/oauth/v2/token"
	defaultTokenTTL = 50 * time.Minute // Zoho access tokens live 60 minutes
	authTimeout     = 10 * time.Second
	opToken         = "token_exchange"
)

// AccessToken is a bearer token with its absolute expiry
type AccessToken struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the token may still be handed out at now
func (t AccessToken) Valid(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}

// TokenStore shares tokens between processes. Implementations return ok=false
// when nothing usable is stored.
type TokenStore interface {
	Load(ctx context.Context) (AccessToken, bool, error)
	Save(ctx context.Context, token AccessToken) error
}

// TokenCache holds one access token and refreshes it on demand. It is safe for
// concurrent use; callers racing on an expired token share one exchange.
type TokenCache struct {
	mu      sync.Mutex
	current AccessToken

	oauth      *oauth2.Config
	refresh    string
	ttl        time.Duration
	httpClient *http.Client
	store      TokenStore
	logger     *logging.Logger
	clock      func() time.Time
}

// NewTokenCache builds a TokenCache from client settings
func NewTokenCache(cfg Config) (*TokenCache, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, configurationError(opToken, "client id, client secret and refresh token are required")
	}

	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: authTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &TokenCache{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  authURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		refresh:    cfg.RefreshToken,
		ttl:        ttl,
		httpClient: httpClient,
		store:      cfg.TokenStore,
		logger:     logger,
		clock:      clock,
	}, nil
}

// Token returns the cached token or exchanges the refresh token for a new one
func (c *TokenCache) Token(ctx context.Context) (AccessToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current.Valid(c.clock()) {
		return c.current, nil
	}

	if tok, ok := c.loadShared(ctx); ok {
		c.current = tok
		return tok, nil
	}

	tok, err := c.exchange(ctx)
	if err != nil {
		return AccessToken{}, err
	}
	c.current = tok
	c.saveShared(ctx, tok)

	return tok, nil
}

// Invalidate drops the cached token so the next call refreshes
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.current = AccessToken{}
	c.mu.Unlock()
}

func (c *TokenCache) exchange(ctx context.Context) (AccessToken, error) {
	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	src := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: c.refresh})
	tok, err := src.Token()
	if err != nil {
		return AccessToken{}, classifyExchangeError(err)
	}
	if tok.AccessToken == "" {
		return AccessToken{}, authenticationError(opToken, "response has no access_token", nil)
	}

	c.logger.Debug("access token refreshed", "ttl", c.ttl.String())

	return AccessToken{
		Value:     tok.AccessToken,
		ExpiresAt: c.clock().Add(c.ttl),
	}, nil
}

func classifyExchangeError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		e := authenticationError(opToken, "token exchange rejected", err)
		if retrieveErr.Response != nil {
			e.Status = retrieveErr.Response.StatusCode
		}
		e.Code = retrieveErr.ErrorCode
		return e
	}
	if transportFailure(err) {
		return networkError(opToken, err)
	}
	return authenticationError(opToken, "token exchange failed", err)
}

func (c *TokenCache) loadShared(ctx context.Context) (AccessToken, bool) {
	if c.store == nil {
		return AccessToken{}, false
	}
	tok, ok, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("shared token store load failed", "err", err)
		return AccessToken{}, false
	}
	if !ok || !tok.Valid(c.clock()) {
		return AccessToken{}, false
	}
	return tok, true
}

func (c *TokenCache) saveShared(ctx context.Context, tok AccessToken) {
	if c.store == nil {
		return
	}
	if err := c.store.Save(ctx, tok); err != nil {
		c.logger.Warn("shared token store save failed", "err", err)
	}
}
