package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/honeycarbs/unified-ats/pkg/zohorecruit"
)

const defaultKey = "unified-ats:zoho:access_token"

// Config holds Redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// Redis shares one Zoho access token between processes
type Redis struct {
	client *redis.Client
	key    string
	clock  func() time.Time
}

var _ zohorecruit.TokenStore = (*Redis)(nil)

// NewRedis connects to Redis; the connection is verified with a ping
func NewRedis(ctx context.Context, cfg Config) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("tokenstore: redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("tokenstore: ping redis: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = defaultKey
	}

	return &Redis{client: client, key: key, clock: time.Now}, nil
}

// Load reads the shared token; a missing key is not an error
func (r *Redis) Load(ctx context.Context) (zohorecruit.AccessToken, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zohorecruit.AccessToken{}, false, nil
	}
	if err != nil {
		return zohorecruit.AccessToken{}, false, err
	}

	var tok zohorecruit.AccessToken
	if err := json.Unmarshal(raw, &tok); err != nil {
		return zohorecruit.AccessToken{}, false, fmt.Errorf("tokenstore: decode token: %w", err)
	}
	return tok, tok.Value != "", nil
}

// Save stores the token until its expiry
func (r *Redis) Save(ctx context.Context, tok zohorecruit.AccessToken) error {
	ttl := tok.ExpiresAt.Sub(r.clock())
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("tokenstore: encode token: %w", err)
	}
	return r.client.Set(ctx, r.key, raw, ttl).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
