package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/unified-ats/internal/config"
	"github.com/honeycarbs/unified-ats/internal/domain/recruiting"
	"github.com/honeycarbs/unified-ats/internal/domain/recruiting/providers/zoho"
	"github.com/honeycarbs/unified-ats/internal/mcp"
	"github.com/honeycarbs/unified-ats/pkg/logging"
	"github.com/honeycarbs/unified-ats/pkg/sheets"
	"github.com/honeycarbs/unified-ats/pkg/tokenstore"
	"github.com/honeycarbs/unified-ats/pkg/zohorecruit"
)

// ProviderSet is every constructor the server graph needs
var ProviderSet = wire.NewSet(
	provideTokenStore,
	provideZohoConfig,
	zohorecruit.NewClient,
	zoho.NewProvider,
	wire.Bind(new(recruiting.Provider), new(*zoho.Provider)),
	recruiting.NewServiceWithDeps,
	provideSheetsClient,
	mcp.NewSheetsExporter,
	mcp.NewResources,
	mcp.NewServer,
)

// provideTokenStore connects the shared Redis token store when configured.
// Redis is optional, so connection failures fall back to a process-local cache.
func provideTokenStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (zohorecruit.TokenStore, func()) {
	if cfg.Redis.Addr == "" {
		return nil, func() {}
	}

	store, err := tokenstore.NewRedis(ctx, tokenstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Warn("redis token store unavailable; caching tokens in process", "addr", cfg.Redis.Addr, "err", err)
		return nil, func() {}
	}

	logger.Info("redis token store connected", "addr", cfg.Redis.Addr)
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing redis token store", "err", err)
		}
	}
}

// provideZohoConfig extracts Zoho Recruit config from main config
func provideZohoConfig(cfg config.Config, store zohorecruit.TokenStore, logger *logging.Logger) zohorecruit.Config {
	return zohorecruit.Config{
		ClientID:     cfg.Zoho.ClientID,
		ClientSecret: cfg.Zoho.ClientSecret,
		RefreshToken: cfg.Zoho.RefreshToken,
		BaseURL:      cfg.Zoho.BaseURL,
		AuthURL:      cfg.Zoho.AuthURL,
		TokenTTL:     cfg.Zoho.TokenTTL,
		TokenStore:   store,
		Logger:       logger.With("component", "zohorecruit"),
	}
}

// provideSheetsClient returns nil when no credentials are configured so the
// export tool can report it instead of failing startup
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) *sheets.Client {
	if cfg.Sheets.CredentialsPath == "" {
		return nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("google sheets client unavailable", "err", err)
		return nil
	}
	return client
}
