// internal/store/postgres/simple.go
package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
)

type productStore struct {
	db *gorm.DB
}

func (s *productStore) Create(ctx context.Context, product *models.Product) error {
	return translate(s.db.WithContext(ctx).Create(product).Error)
}

func (s *productStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *productStore) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

type reviewStore struct {
	db *gorm.DB
}

func (s *reviewStore) Create(ctx context.Context, review *models.Review) error {
	return translate(s.db.WithContext(ctx).Create(review).Error)
}

func (s *reviewStore) FindByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

type orderStore struct {
	db *gorm.DB
}

func (s *orderStore) Create(ctx context.Context, order *models.Order) error {
	return translate(s.db.WithContext(ctx).Create(order).Error)
}
