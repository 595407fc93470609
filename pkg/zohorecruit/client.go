package zohorecruit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/honeycarbs/unified-ats/pkg/logging"
)

const (
	defaultPageSize = 200 // Zoho's maximum per_page
	maxPages        = 100
	callTimeout     = 10 * time.Second
	assocTimeout    = 5 * time.Second
	errorBodyLimit  = 4096
)

var tracer = otel.Tracer("github.com/honeycarbs/unified-ats/pkg/zohorecruit")

// NewClient instantiates a Zoho Recruit API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, configurationError("new_client", "base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, configurationError("new_client", fmt.Sprintf("invalid base url %q", cfg.BaseURL))
	}

	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	tokens, err := NewTokenCache(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		pageSize:   pageSize,
		tokens:     tokens,
		logger:     cfg.Logger,
		clock:      cfg.Clock,
	}, nil
}

// Tokens exposes the client's token cache
func (c *Client) Tokens() *TokenCache {
	return c.tokens
}

// response is a fully read vendor reply
type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (r response) snippet() string {
	b := r.body
	if len(b) > errorBodyLimit {
		b = b[:errorBodyLimit]
	}
	return strings.TrimSpace(string(b))
}

// decode parses the body keeping numbers as json.Number so record ids survive
func (r response) decode(v any) error {
	dec := json.NewDecoder(bytes.NewReader(r.body))
	dec.UseNumber()
	return dec.Decode(v)
}

// call performs one authorized request. Only transport and auth failures are
// returned as errors; any HTTP status comes back in the response.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, payload any, timeout time.Duration) (response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return response{}, err
	}

	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return response{}, fmt.Errorf("zohorecruit: %s: encode payload: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return response{}, fmt.Errorf("zohorecruit: %s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+tok.Value)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, networkError(op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, networkError(op, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// token revoked early; next call refreshes
		c.tokens.Invalidate()
	}

	return response{status: resp.StatusCode, body: raw}, nil
}

func (c *Client) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "zohorecruit."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
