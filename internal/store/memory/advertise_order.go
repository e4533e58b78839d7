// internal/store/memory/advertise_order.go
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

type advertiseOrderStore struct {
	mtx    sync.RWMutex
	orders []models.AdvertiseOrder
}

func (s *advertiseOrderStore) Create(ctx context.Context, order *models.AdvertiseOrder) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stamp(&order.BaseModel)
	s.orders = append(s.orders, *order)
	return nil
}

func (s *advertiseOrderStore) FindByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseOrder, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *advertiseOrderStore) FindMany(ctx context.Context, q store.AdvertiseOrderQuery) ([]models.AdvertiseOrder, error) {
	s.mtx.RLock()
	results := make([]models.AdvertiseOrder, 0, len(s.orders))
	for _, order := range s.orders {
		if q.Status != "" && order.Status != q.Status {
			continue
		}
		if q.ContentID != uuid.Nil && order.ContentID != q.ContentID {
			continue
		}
		if q.Phone != "" && order.Phone != q.Phone {
			continue
		}
		results = append(results, order)
	}
	s.mtx.RUnlock()

	if q.Sort == store.ContentSortOldest {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.Before(results[j].CreatedAt)
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	}
	return results, nil
}

func (s *advertiseOrderStore) Update(ctx context.Context, order *models.AdvertiseOrder) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			order.CreatedAt = s.orders[i].CreatedAt
			order.UpdatedAt = time.Now()
			s.orders[i] = *order
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *advertiseOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *advertiseOrderStore) Stats(ctx context.Context) (*models.AdvertiseOrderStats, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stats := &models.AdvertiseOrderStats{
		ByStatus: make(map[models.OrderStatus]models.AdvertiseOrderStatusStat),
	}
	for _, order := range s.orders {
		stats.TotalOrders++
		stats.TotalRevenue += order.TotalPrice

		byStatus := stats.ByStatus[order.Status]
		byStatus.Count++
		byStatus.TotalRevenue += order.TotalPrice
		stats.ByStatus[order.Status] = byStatus
	}
	return stats, nil
}
