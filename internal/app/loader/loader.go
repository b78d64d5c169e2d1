// Package loader builds the rating grid from whichever feed source the
// configuration names.
package loader

import (
	"context"
	"time"

	"go.uber.org/zap"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/feed"
	"collab-filter/internal/app/grid"
	"collab-filter/internal/config"
)

type Loader struct {
	config *config.EngineConfig
	logger *zap.Logger
}

func New(cfg *config.EngineConfig, logger *zap.Logger) *Loader {
	return &Loader{config: cfg, logger: logger}
}

func (l *Loader) options() feed.LoadOptions {
	return feed.LoadOptions{Strict: !l.config.Feed.Lenient}
}

// Load reads the configured feed into a grid of the configured shape.
func (l *Loader) Load(ctx context.Context) (*grid.Grid, feed.Stats, error) {
	start := time.Now()
	kind := l.config.Feed.Kind()
	rows, cols := l.config.Grid.Rows, l.config.Grid.Cols

	var (
		g     *grid.Grid
		stats feed.Stats
		err   error
	)
	switch kind {
	case config.FeedFile:
		g, stats, err = feed.LoadFile(l.config.Feed.Path, rows, cols, l.options())
	case config.FeedObject:
		g, stats, err = l.loadObject(ctx, rows, cols)
	case config.FeedSQL:
		g, stats, err = l.loadSQL(ctx, rows, cols)
	default:
		return nil, feed.Stats{}, errors.Wrap(errors.ErrMissingConfig, "no feed source: set --feed, CFR_FEED or feed.sql")
	}
	if err != nil {
		return nil, stats, err
	}

	l.logger.Info("feed loaded",
		zap.String("source", kind),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("records", stats.Records),
		zap.Int("skipped", stats.Skipped()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if stats.Skipped() > 0 {
		l.logger.Warn("feed records skipped",
			zap.Int("malformed", stats.Malformed),
			zap.Int("out_of_range", stats.OutOfRange),
		)
	}
	return g, stats, nil
}

func (l *Loader) loadObject(ctx context.Context, rows, cols int) (*grid.Grid, feed.Stats, error) {
	bucket, key, err := feed.ParseObjectURL(l.config.Feed.Path)
	if err != nil {
		return nil, feed.Stats{}, err
	}
	object := l.config.Feed.Object
	src, err := feed.NewObjectSource(feed.ObjectConfig{
		Endpoint:  object.Endpoint,
		AccessKey: object.AccessKey,
		SecretKey: object.SecretKey,
		Bucket:    bucket,
		Key:       key,
		UseSSL:    object.UseSSL,
	})
	if err != nil {
		return nil, feed.Stats{}, err
	}
	return src.Load(ctx, rows, cols, l.options())
}

func (l *Loader) loadSQL(ctx context.Context, rows, cols int) (*grid.Grid, feed.Stats, error) {
	db, err := feed.OpenSQL(l.config.Feed.SQL.Driver, l.config.Feed.SQL.DSN)
	if err != nil {
		return nil, feed.Stats{}, err
	}
	src := feed.NewSQLSource(db, l.config.Feed.SQL.Query)
	defer func() {
		if cerr := src.Close(); cerr != nil {
			l.logger.Warn("close feed database", zap.Error(cerr))
		}
	}()
	return src.Load(ctx, rows, cols, l.options())
}
