package services

import (
	"context"
	"errors"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collab-filter/internal/api/v1/dto"
	apperrors "collab-filter/internal/app/errors"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/app/similarity"
	"collab-filter/internal/app/testutil"
)

func newService(t *testing.T, config recommend.EngineConfig) RecommendationService {
	t.Helper()
	return NewRecommendationService(recommend.NewEngine(testutil.SampleGrid(t), config))
}

func intPtr(v int) *int { return &v }

func TestSimilarity(t *testing.T) {
	s := newService(t, recommend.DefaultEngineConfig())

	resp, err := s.Similarity(context.Background(), dto.SimilarityQuery{A: intPtr(0), B: intPtr(1), Metric: "euclidean"})
	require.NoError(t, err)
	assert.Equal(t, &dto.SimilarityResponse{A: 0, B: 1, Metric: "distance", Score: 0.5}, resp)

	_, err = s.Similarity(context.Background(), dto.SimilarityQuery{A: intPtr(0), B: intPtr(1), Metric: "cosine"})
	assert.True(t, errors.Is(err, apperrors.ErrUnknownMetric))
}

func TestRankingUsesEngineDefaults(t *testing.T) {
	config := recommend.DefaultEngineConfig()
	config.Metric = similarity.MetricDistance
	config.MatchK = 1
	s := newService(t, config)

	resp, err := s.UserMatches(context.Background(), 0, dto.RankQuery{})
	require.NoError(t, err)
	assert.Equal(t, "distance", resp.Metric)
	assert.Equal(t, 1, resp.K)
	assert.Equal(t, "user", resp.Kind)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.Results[0].ID)

	resp, err = s.ItemMatches(context.Background(), 0, dto.RankQuery{K: intPtr(5), Metric: "pearson"})
	require.NoError(t, err)
	assert.Equal(t, "pearson", resp.Metric)
	assert.Equal(t, "item", resp.Kind)
	assert.Len(t, resp.Results, 2)
}

func TestEmptyRankingIsNotNil(t *testing.T) {
	s := newService(t, recommend.DefaultEngineConfig())

	// user 1 has rated every column
	resp, err := s.UserRecommendations(context.Background(), 1, dto.RankQuery{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestItemIndexQueries(t *testing.T) {
	engine := recommend.NewEngine(testutil.SampleGrid(t), recommend.DefaultEngineConfig())
	_, err := engine.ItemIndex()
	require.NoError(t, err)
	s := NewRecommendationService(engine)

	resp, err := s.SimilarItems(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, recommend.Ranked{{ID: 0, Score: 1.0 / 6.0}, {ID: 2, Score: 1.0 / 11.0}}, recommend.Ranked(resp.Results))

	resp, err = s.UserItemRecommendations(context.Background(), 0, dto.RankQuery{K: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.K)
	require.Len(t, resp.Results, 1)
	assert.InDelta(t, 4.375, resp.Results[0].Score, 1e-9)
}

func TestGridInfo(t *testing.T) {
	s := newService(t, recommend.DefaultEngineConfig())

	resp, err := s.GridInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Rows)
	assert.Equal(t, 7, resp.Rated)
}

func TestCancelledContext(t *testing.T) {
	s := newService(t, recommend.DefaultEngineConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	before := promtestutil.ToFloat64(EngineOperationErrors.WithLabelValues("user_matches"))
	_, err := s.UserMatches(ctx, 0, dto.RankQuery{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, before+1, promtestutil.ToFloat64(EngineOperationErrors.WithLabelValues("user_matches")))

	_, err = s.GridInfo(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutOfRangeIsCounted(t *testing.T) {
	s := newService(t, recommend.DefaultEngineConfig())

	before := promtestutil.ToFloat64(EngineOperationErrors.WithLabelValues("item_recommendations"))
	_, err := s.ItemRecommendations(context.Background(), 3, dto.RankQuery{})
	assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))
	assert.Equal(t, before+1, promtestutil.ToFloat64(EngineOperationErrors.WithLabelValues("item_recommendations")))
}

func TestItemIndexQueriesWhileBuilding(t *testing.T) {
	engine := recommend.NewEngine(testutil.SampleGrid(t), recommend.DefaultEngineConfig())
	s := NewRecommendationService(engine)

	_, err := s.SimilarItems(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrIndexNotReady)

	require.Eventually(t, engine.ItemIndexReady, 5*time.Second, 10*time.Millisecond)
	resp, err := s.UserItemRecommendations(context.Background(), 0, dto.RankQuery{})
	require.NoError(t, err)
	assert.Len(t, resp.Results, 1)
}
