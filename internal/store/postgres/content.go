// internal/store/postgres/content.go
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

type contentStore struct {
	db *gorm.DB
}

func (s *contentStore) Create(ctx context.Context, content *models.AdvertiseContent) error {
	return translate(s.db.WithContext(ctx).Create(content).Error)
}

func (s *contentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseContent, error) {
	var content models.AdvertiseContent
	if err := s.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &content, nil
}

func (s *contentStore) FindBySlug(ctx context.Context, slug string) (*models.AdvertiseContent, error) {
	var content models.AdvertiseContent
	if err := s.db.WithContext(ctx).First(&content, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &content, nil
}

func (s *contentStore) FindMany(ctx context.Context, q store.ContentQuery) ([]models.AdvertiseContent, error) {
	query := s.db.WithContext(ctx).Model(&models.AdvertiseContent{})

	switch q.Status {
	case store.ContentStatusActive:
		query = query.Where("offer_end_time > ?", time.Now())
	case store.ContentStatusExpired:
		query = query.Where("offer_end_time <= ?", time.Now())
	}

	switch q.Sort {
	case store.ContentSortOldest:
		query = query.Order("created_at ASC")
	case store.ContentSortEndingSoon:
		query = query.Order("offer_end_time ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var contents []models.AdvertiseContent
	if err := query.Find(&contents).Error; err != nil {
		return nil, translate(err)
	}
	return contents, nil
}

// Search does relevance-ranked full-text search over titles, backed by
// the GIN tsvector index. Ranking differs from the in-memory substring
// match; see the ContentStore contract.
func (s *contentStore) Search(ctx context.Context, query string) ([]models.AdvertiseContent, error) {
	var contents []models.AdvertiseContent
	err := s.db.WithContext(ctx).
		Model(&models.AdvertiseContent{}).
		Select("*, ts_rank(to_tsvector('english', title), plainto_tsquery('english', ?)) AS rank", query).
		Where("to_tsvector('english', title) @@ plainto_tsquery('english', ?)", query).
		Order("rank DESC").
		Find(&contents).Error
	if err != nil {
		return nil, translate(err)
	}
	return contents, nil
}

func (s *contentStore) Update(ctx context.Context, content *models.AdvertiseContent) error {
	res := s.db.WithContext(ctx).Save(content)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *contentStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.AdvertiseContent{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
