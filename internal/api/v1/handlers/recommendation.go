package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"collab-filter/internal/api/middleware"
	"collab-filter/internal/api/v1/dto"
	"collab-filter/internal/api/v1/services"
)

// RecommendationHandler handles similarity and ranking endpoints
type RecommendationHandler struct {
	service services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(service services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
	}
}

// Similarity handles GET /api/v1/similarity?a=&b=&metric=
func (h *RecommendationHandler) Similarity(c *gin.Context) {
	var query dto.SimilarityQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Similarity(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

type rankedCall func(ctx context.Context, entity int, query dto.RankQuery) (*dto.RankingResponse, error)

// ranked binds :id plus k/metric and serves call's result.
func (h *RecommendationHandler) ranked(call rankedCall) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri dto.EntityURI
		if err := middleware.ValidateURI(c, &uri); err != nil {
			middleware.HandleError(c, err)
			return
		}
		var query dto.RankQuery
		if err := middleware.ValidateQuery(c, &query); err != nil {
			middleware.HandleError(c, err)
			return
		}

		response, err := call(c.Request.Context(), uri.ID, query)
		if err != nil {
			middleware.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, response)
	}
}

// UserMatches handles GET /api/v1/users/:id/matches
func (h *RecommendationHandler) UserMatches(c *gin.Context) {
	h.ranked(h.service.UserMatches)(c)
}

// UserRecommendations handles GET /api/v1/users/:id/recommendations
func (h *RecommendationHandler) UserRecommendations(c *gin.Context) {
	h.ranked(h.service.UserRecommendations)(c)
}

// ItemMatches handles GET /api/v1/items/:id/matches
func (h *RecommendationHandler) ItemMatches(c *gin.Context) {
	h.ranked(h.service.ItemMatches)(c)
}

// ItemRecommendations handles GET /api/v1/items/:id/recommendations
func (h *RecommendationHandler) ItemRecommendations(c *gin.Context) {
	h.ranked(h.service.ItemRecommendations)(c)
}

// UserItemRecommendations handles GET /api/v1/users/:id/item-recommendations
func (h *RecommendationHandler) UserItemRecommendations(c *gin.Context) {
	h.ranked(h.service.UserItemRecommendations)(c)
}

// SimilarItems handles GET /api/v1/items/:id/similar
func (h *RecommendationHandler) SimilarItems(c *gin.Context) {
	var uri dto.EntityURI
	if err := middleware.ValidateURI(c, &uri); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.SimilarItems(c.Request.Context(), uri.ID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Grid handles GET /api/v1/grid
func (h *RecommendationHandler) Grid(c *gin.Context) {
	response, err := h.service.GridInfo(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
