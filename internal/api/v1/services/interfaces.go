package services

import (
	"context"

	"collab-filter/internal/api/v1/dto"
)

// RecommendationService defines the operations served under /api/v1
type RecommendationService interface {
	Similarity(ctx context.Context, query dto.SimilarityQuery) (*dto.SimilarityResponse, error)
	UserMatches(ctx context.Context, user int, query dto.RankQuery) (*dto.RankingResponse, error)
	UserRecommendations(ctx context.Context, user int, query dto.RankQuery) (*dto.RankingResponse, error)
	ItemMatches(ctx context.Context, item int, query dto.RankQuery) (*dto.RankingResponse, error)
	ItemRecommendations(ctx context.Context, item int, query dto.RankQuery) (*dto.RankingResponse, error)
	SimilarItems(ctx context.Context, item int) (*dto.RankingResponse, error)
	UserItemRecommendations(ctx context.Context, user int, query dto.RankQuery) (*dto.RankingResponse, error)
	GridInfo(ctx context.Context) (*dto.GridResponse, error)
}
