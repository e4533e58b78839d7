// internal/store/memory/user.go
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

type userStore struct {
	mtx   sync.RWMutex
	users []models.User
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return store.ErrDuplicate
		}
	}

	stamp(&user.BaseModel)
	s.users = append(s.users, *user)
	return nil
}

func (s *userStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) FindAll(ctx context.Context) ([]models.User, error) {
	s.mtx.RLock()
	results := make([]models.User, len(s.users))
	copy(results, s.users)
	s.mtx.RUnlock()

	// Newest first, matching the persistent backend.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (s *userStore) Update(ctx context.Context, user *models.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) && existing.ID != user.ID {
			return store.ErrDuplicate
		}
	}

	for i := range s.users {
		if s.users[i].ID == user.ID {
			user.CreatedAt = s.users[i].CreatedAt
			user.UpdatedAt = time.Now()
			s.users[i] = *user
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *userStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
