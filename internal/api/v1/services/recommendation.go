package services

import (
	"context"
	"time"

	"collab-filter/internal/api/v1/dto"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/app/similarity"
)

const (
	kindUser = "user"
	kindItem = "item"
)

type engineService struct {
	engine *recommend.Engine
}

// NewRecommendationService serves queries from engine.
func NewRecommendationService(engine *recommend.Engine) RecommendationService {
	return &engineService{engine: engine}
}

func (s *engineService) metric(name string) (similarity.Metric, error) {
	if name == "" {
		return s.engine.Config().Metric, nil
	}
	return similarity.ParseMetric(name)
}

type rankFunc func(entity int, q recommend.Query) (recommend.Ranked, error)

func (s *engineService) rank(ctx context.Context, operation, kind string, entity int, q dto.RankQuery, defaultK int, fn rankFunc) (resp *dto.RankingResponse, err error) {
	defer func(start time.Time) { observe(operation, start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	metric, err := s.metric(q.Metric)
	if err != nil {
		return nil, err
	}
	query := recommend.Query{K: defaultK, Metric: &metric}
	if q.K != nil {
		query.K = *q.K
	}

	ranked, err := fn(entity, query)
	if err != nil {
		return nil, err
	}
	return rankingResponse(entity, kind, metric.String(), query.K, ranked), nil
}

func (s *engineService) Similarity(ctx context.Context, q dto.SimilarityQuery) (resp *dto.SimilarityResponse, err error) {
	defer func(start time.Time) { observe("similarity", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	metric, err := s.metric(q.Metric)
	if err != nil {
		return nil, err
	}
	score, err := s.engine.Similarity(*q.A, *q.B, metric)
	if err != nil {
		return nil, err
	}
	return &dto.SimilarityResponse{A: *q.A, B: *q.B, Metric: metric.String(), Score: score}, nil
}

func (s *engineService) UserMatches(ctx context.Context, user int, q dto.RankQuery) (*dto.RankingResponse, error) {
	return s.rank(ctx, "user_matches", kindUser, user, q, s.engine.Config().MatchK, s.engine.UserMatches)
}

func (s *engineService) UserRecommendations(ctx context.Context, user int, q dto.RankQuery) (*dto.RankingResponse, error) {
	return s.rank(ctx, "user_recommendations", kindUser, user, q, s.engine.Config().RecommendationK, s.engine.UserRecommendations)
}

func (s *engineService) ItemMatches(ctx context.Context, item int, q dto.RankQuery) (*dto.RankingResponse, error) {
	return s.rank(ctx, "item_matches", kindItem, item, q, s.engine.Config().MatchK, s.engine.ItemMatches)
}

func (s *engineService) ItemRecommendations(ctx context.Context, item int, q dto.RankQuery) (*dto.RankingResponse, error) {
	return s.rank(ctx, "item_recommendations", kindItem, item, q, s.engine.Config().RecommendationK, s.engine.ItemRecommendations)
}

func (s *engineService) SimilarItems(ctx context.Context, item int) (resp *dto.RankingResponse, err error) {
	defer func(start time.Time) { observe("similar_items", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	ranked, err := s.engine.ReadySimilarItems(item)
	if err != nil {
		return nil, err
	}
	return rankingResponse(item, kindItem, "", s.engine.Config().ItemK, ranked), nil
}

func (s *engineService) UserItemRecommendations(ctx context.Context, user int, q dto.RankQuery) (resp *dto.RankingResponse, err error) {
	defer func(start time.Time) { observe("user_item_recommendations", start, err) }(time.Now())

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	k := s.engine.Config().RecommendationK
	if q.K != nil {
		k = *q.K
	}
	ranked, err := s.engine.ReadyRecommendedItems(user, k)
	if err != nil {
		return nil, err
	}
	return rankingResponse(user, kindUser, "", k, ranked), nil
}

func (s *engineService) GridInfo(ctx context.Context) (*dto.GridResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g := s.engine.Users()
	rated := g.RatedCount()
	return &dto.GridResponse{
		Rows:    g.Rows(),
		Cols:    g.Cols(),
		Rated:   rated,
		Density: float64(rated) / float64(g.Rows()*g.Cols()),
	}, nil
}

func rankingResponse(entity int, kind, metric string, k int, ranked recommend.Ranked) *dto.RankingResponse {
	if ranked == nil {
		ranked = recommend.Ranked{}
	}
	return &dto.RankingResponse{
		Entity:  entity,
		Kind:    kind,
		Metric:  metric,
		K:       k,
		Results: ranked,
	}
}
