// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// ReviewHandler exposes product review endpoints.
type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// ListByProduct handles GET /api/reviews/:productId
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, err := h.reviews.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListResponse(c, "Reviews retrieved successfully", len(reviews), reviews)
}

// Create handles POST /api/reviews/:productId
func (h *ReviewHandler) Create(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), c.Param("productId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Review submitted successfully", review)
}
