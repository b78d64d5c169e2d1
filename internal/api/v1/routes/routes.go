package routes

import (
	"github.com/gin-gonic/gin"

	"collab-filter/internal/api/v1/handlers"
	"collab-filter/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	RecommendationService services.RecommendationService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	h := handlers.NewRecommendationHandler(container.RecommendationService)

	router.GET("/similarity", h.Similarity)
	router.GET("/grid", h.Grid)

	users := router.Group("/users")
	{
		users.GET("/:id/matches", h.UserMatches)
		users.GET("/:id/recommendations", h.UserRecommendations)
		users.GET("/:id/item-recommendations", h.UserItemRecommendations)
	}

	items := router.Group("/items")
	{
		items.GET("/:id/matches", h.ItemMatches)
		items.GET("/:id/recommendations", h.ItemRecommendations)
		items.GET("/:id/similar", h.SimilarItems)
	}
}
