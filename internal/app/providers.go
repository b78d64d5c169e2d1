package app

import (
	"context"

	"go.uber.org/zap"

	"collab-filter/internal/app/grid"
	"collab-filter/internal/app/loader"
	"collab-filter/internal/app/progress"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/config"
)

func provideGrid(ctx context.Context, l *loader.Loader) (*grid.Grid, error) {
	g, _, err := l.Load(ctx)
	return g, err
}

func provideEngineConfig(cfg *config.EngineConfig, logger *zap.Logger) recommend.EngineConfig {
	return recommend.EngineConfig{
		MatchK:          cfg.Defaults.MatchK,
		RecommendationK: cfg.Defaults.RecommendationK,
		ItemK:           cfg.Defaults.ItemK,
		Metric:          cfg.Metric(),
		Reporter:        progress.ForTerminal(logger, cfg.Progress, "Similar items"),
	}
}

func provideServerConfig(cfg *config.EngineConfig) config.ServerConfig {
	return cfg.Server
}
