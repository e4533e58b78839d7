// internal/store/memory/simple.go
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

// The remaining entities are plain append-and-scan collections.

type productStore struct {
	mtx      sync.RWMutex
	products []models.Product
}

func (s *productStore) Create(ctx context.Context, product *models.Product) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stamp(&product.BaseModel)
	s.products = append(s.products, *product)
	return nil
}

func (s *productStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]
			return &product, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *productStore) FindAll(ctx context.Context) ([]models.Product, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	results := make([]models.Product, len(s.products))
	copy(results, s.products)
	return results, nil
}

type reviewStore struct {
	mtx     sync.RWMutex
	reviews []models.Review
}

func (s *reviewStore) Create(ctx context.Context, review *models.Review) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stamp(&review.BaseModel)
	s.reviews = append(s.reviews, *review)
	return nil
}

func (s *reviewStore) FindByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	var results []models.Review
	for _, review := range s.reviews {
		if review.ProductID == productID {
			results = append(results, review)
		}
	}
	return results, nil
}

type orderStore struct {
	mtx    sync.Mutex
	orders []models.Order
}

func (s *orderStore) Create(ctx context.Context, order *models.Order) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stamp(&order.BaseModel)
	s.orders = append(s.orders, *order)
	return nil
}
