//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/unified-ats/internal/config"
	"github.com/honeycarbs/unified-ats/internal/mcp"
	"github.com/honeycarbs/unified-ats/pkg/logging"
)

// InitializeServer builds the HTTP server with every dependency wired up
func InitializeServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*mcp.Server, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
