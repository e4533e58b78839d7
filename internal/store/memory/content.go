// internal/store/memory/content.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

type contentStore struct {
	mtx      sync.RWMutex
	contents []models.AdvertiseContent
}

func (s *contentStore) Create(ctx context.Context, content *models.AdvertiseContent) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.contents {
		if existing.Slug == content.Slug {
			return store.ErrDuplicate
		}
	}

	stamp(&content.BaseModel)
	s.contents = append(s.contents, *content)
	return nil
}

func (s *contentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseContent, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for i := range s.contents {
		if s.contents[i].ID == id {
			content := s.contents[i]
			return &content, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *contentStore) FindBySlug(ctx context.Context, slug string) (*models.AdvertiseContent, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for i := range s.contents {
		if s.contents[i].Slug == slug {
			content := s.contents[i]
			return &content, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *contentStore) FindMany(ctx context.Context, q store.ContentQuery) ([]models.AdvertiseContent, error) {
	s.mtx.RLock()
	results := make([]models.AdvertiseContent, 0, len(s.contents))
	now := time.Now()
	for _, content := range s.contents {
		switch q.Status {
		case store.ContentStatusActive:
			if !content.OfferEndTime.After(now) {
				continue
			}
		case store.ContentStatusExpired:
			if content.OfferEndTime.After(now) {
				continue
			}
		}
		results = append(results, content)
	}
	s.mtx.RUnlock()

	sortContents(results, q.Sort)
	return results, nil
}

func (s *contentStore) Search(ctx context.Context, query string) ([]models.AdvertiseContent, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	needle := strings.ToLower(query)
	var results []models.AdvertiseContent
	for _, content := range s.contents {
		if strings.Contains(strings.ToLower(content.Title), needle) {
			results = append(results, content)
		}
	}
	return results, nil
}

func (s *contentStore) Update(ctx context.Context, content *models.AdvertiseContent) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.contents {
		if existing.Slug == content.Slug && existing.ID != content.ID {
			return store.ErrDuplicate
		}
	}

	for i := range s.contents {
		if s.contents[i].ID == content.ID {
			content.CreatedAt = s.contents[i].CreatedAt
			content.UpdatedAt = time.Now()
			s.contents[i] = *content
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *contentStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.contents {
		if s.contents[i].ID == id {
			s.contents = append(s.contents[:i], s.contents[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func sortContents(contents []models.AdvertiseContent, by store.ContentSort) {
	switch by {
	case store.ContentSortOldest:
		sort.SliceStable(contents, func(i, j int) bool {
			return contents[i].CreatedAt.Before(contents[j].CreatedAt)
		})
	case store.ContentSortEndingSoon:
		sort.SliceStable(contents, func(i, j int) bool {
			return contents[i].OfferEndTime.Before(contents[j].OfferEndTime)
		})
	default: // newest
		sort.SliceStable(contents, func(i, j int) bool {
			return contents[i].CreatedAt.After(contents[j].CreatedAt)
		})
	}
}
