// internal/services/product_service.go
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

type ProductService struct {
	products store.ProductStore
}

func NewProductService(products store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

type CreateProductRequest struct {
	Title            string                 `json:"title" validate:"required"`
	Price            float64                `json:"price" validate:"required,gt=0"`
	ShortDescription string                 `json:"shortDescription"`
	Details          string                 `json:"details"`
	FAQ              []models.FAQItem       `json:"faq"`
	Features         []string               `json:"features"`
	TechnicalDetails map[string]interface{} `json:"technicalDetails"`
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, Internal("Error fetching products", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Product not found")
		}
		return nil, Internal("Error fetching product", err)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	product := &models.Product{
		Title:            req.Title,
		Price:            req.Price,
		ShortDescription: req.ShortDescription,
		Details:          req.Details,
		FAQ:              models.FAQList(req.FAQ),
		Features:         req.Features,
		TechnicalDetails: models.JSONB(req.TechnicalDetails),
	}
	if product.FAQ == nil {
		product.FAQ = models.FAQList{}
	}
	if product.Features == nil {
		product.Features = []string{}
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, Internal("Error creating product", err)
	}
	return product, nil
}
