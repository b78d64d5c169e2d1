//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"collab-filter/internal/api/server"
	"collab-filter/internal/app/loader"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/config"
)

var engineSet = wire.NewSet(
	loader.New,
	provideGrid,
	provideEngineConfig,
	recommend.NewEngine,
)

// InitializeEngine loads the configured feed and returns an engine over it.
func InitializeEngine(ctx context.Context, cfg *config.EngineConfig, logger *zap.Logger) (*recommend.Engine, error) {
	wire.Build(engineSet)
	return &recommend.Engine{}, nil
}

// InitializeServer builds the HTTP API over a freshly loaded engine.
func InitializeServer(ctx context.Context, cfg *config.EngineConfig, logger *zap.Logger) (*server.Server, error) {
	wire.Build(engineSet, provideServerConfig, server.NewServer)
	return &server.Server{}, nil
}
