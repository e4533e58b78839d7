// internal/services/review_service.go
package services

import (
	"context"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

type ReviewService struct {
	reviews store.ReviewStore
}

func NewReviewService(reviews store.ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return nil, Internal("Error fetching reviews", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (s *ReviewService) Create(ctx context.Context, productID string, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	review := &models.Review{
		ProductID: productID,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, Internal("Error creating review", err)
	}
	return review, nil
}
