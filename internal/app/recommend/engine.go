package recommend

import (
	"sync"
	"sync/atomic"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
	"collab-filter/internal/app/progress"
	"collab-filter/internal/app/similarity"
)

// EngineConfig holds the defaults an Engine applies when a caller leaves a
// value unset.
type EngineConfig struct {
	MatchK          int
	RecommendationK int
	ItemK           int
	Metric          similarity.Metric
	// Reporter receives item index progress. Nil means no reporting.
	Reporter progress.Reporter
}

// DefaultEngineConfig mirrors the package defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MatchK:          DefaultMatchK,
		RecommendationK: DefaultRecommendationK,
		ItemK:           DefaultItemK,
		Metric:          similarity.DefaultMetric,
	}
}

// Engine answers user- and item-centric queries over one loaded grid. The
// transposed grid and the item index are derived lazily, once.
type Engine struct {
	users  *grid.Grid
	config EngineConfig

	itemsOnce sync.Once
	items     *grid.Grid

	indexOnce  sync.Once
	startOnce  sync.Once
	indexReady atomic.Bool
	index      ItemIndex
	indexErr   error
}

func NewEngine(users *grid.Grid, config EngineConfig) *Engine {
	defaults := DefaultEngineConfig()
	if config.MatchK <= 0 {
		config.MatchK = defaults.MatchK
	}
	if config.RecommendationK <= 0 {
		config.RecommendationK = defaults.RecommendationK
	}
	if config.ItemK <= 0 {
		config.ItemK = defaults.ItemK
	}
	return &Engine{users: users, config: config}
}

// Users returns the user-centric grid.
func (e *Engine) Users() *grid.Grid {
	return e.users
}

// Items returns the item-centric (transposed) grid.
func (e *Engine) Items() *grid.Grid {
	e.itemsOnce.Do(func() {
		e.items = e.users.Transpose()
	})
	return e.items
}

func (e *Engine) Config() EngineConfig {
	return e.config
}

// Query carries optional per-call overrides. Zero values fall back to the
// engine configuration.
type Query struct {
	K      int
	Metric *similarity.Metric
}

func (e *Engine) options(q Query, defaultK int) Options {
	opts := Options{K: q.K, Metric: e.config.Metric}
	if opts.K <= 0 {
		opts.K = defaultK
	}
	if q.Metric != nil {
		opts.Metric = *q.Metric
	}
	return opts
}

// Similarity scores two users with metric.
func (e *Engine) Similarity(a, b int, metric similarity.Metric) (float64, error) {
	return metric.Calculator().Calculate(e.users, a, b)
}

func (e *Engine) UserMatches(user int, q Query) (Ranked, error) {
	return TopMatches(e.users, user, e.options(q, e.config.MatchK))
}

func (e *Engine) UserRecommendations(user int, q Query) (Ranked, error) {
	return GetRecommendations(e.users, user, e.options(q, e.config.RecommendationK))
}

func (e *Engine) ItemMatches(item int, q Query) (Ranked, error) {
	return TopMatches(e.Items(), item, e.options(q, e.config.MatchK))
}

// ItemRecommendations suggests users for item from the transposed grid.
func (e *Engine) ItemRecommendations(item int, q Query) (Ranked, error) {
	return GetRecommendations(e.Items(), item, e.options(q, e.config.RecommendationK))
}

// ItemIndex builds the item similarity index on first use and returns the
// same index afterwards. It blocks while the index is being built.
func (e *Engine) ItemIndex() (ItemIndex, error) {
	e.indexOnce.Do(func() {
		e.index, e.indexErr = CalculateSimilarItems(e.users, e.config.ItemK, e.config.Reporter)
		e.indexReady.Store(true)
	})
	return e.index, e.indexErr
}

// StartItemIndex builds the item index in the background. Only the first
// call starts a build.
func (e *Engine) StartItemIndex() {
	e.startOnce.Do(func() {
		go e.ItemIndex()
	})
}

// ItemIndexReady reports whether the item index has been built.
func (e *Engine) ItemIndexReady() bool {
	return e.indexReady.Load()
}

// ReadyItemIndex returns the item index without blocking. While the index is
// still being built it starts the build if needed and returns
// ErrIndexNotReady.
func (e *Engine) ReadyItemIndex() (ItemIndex, error) {
	if !e.indexReady.Load() {
		e.StartItemIndex()
		return nil, errors.ErrIndexNotReady
	}
	return e.index, e.indexErr
}

func (e *Engine) SimilarItems(item int) (Ranked, error) {
	return e.similarItems(item, e.ItemIndex)
}

// ReadySimilarItems is SimilarItems for callers that must not wait for the
// index.
func (e *Engine) ReadySimilarItems(item int) (Ranked, error) {
	return e.similarItems(item, e.ReadyItemIndex)
}

func (e *Engine) similarItems(item int, indexFn func() (ItemIndex, error)) (Ranked, error) {
	if err := e.users.CheckCol(item); err != nil {
		return nil, err
	}
	index, err := indexFn()
	if err != nil {
		return nil, err
	}
	return index.Similar(item)
}

// RecommendedItems runs item-based recommendation for user over the index.
func (e *Engine) RecommendedItems(user int, k int) (Ranked, error) {
	return e.recommendedItems(user, k, e.ItemIndex)
}

// ReadyRecommendedItems is RecommendedItems for callers that must not wait
// for the index.
func (e *Engine) ReadyRecommendedItems(user int, k int) (Ranked, error) {
	return e.recommendedItems(user, k, e.ReadyItemIndex)
}

func (e *Engine) recommendedItems(user, k int, indexFn func() (ItemIndex, error)) (Ranked, error) {
	if k <= 0 {
		k = e.config.RecommendationK
	}
	if err := e.users.CheckRow(user); err != nil {
		return nil, err
	}
	index, err := indexFn()
	if err != nil {
		return nil, err
	}
	return GetRecommendedItems(e.users, index, user, k)
}
