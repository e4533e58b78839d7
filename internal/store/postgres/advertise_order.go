// internal/store/postgres/advertise_order.go
package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

type advertiseOrderStore struct {
	db *gorm.DB
}

func (s *advertiseOrderStore) Create(ctx context.Context, order *models.AdvertiseOrder) error {
	return translate(s.db.WithContext(ctx).Create(order).Error)
}

func (s *advertiseOrderStore) FindByID(ctx context.Context, id uuid.UUID) (*models.AdvertiseOrder, error) {
	var order models.AdvertiseOrder
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *advertiseOrderStore) FindMany(ctx context.Context, q store.AdvertiseOrderQuery) ([]models.AdvertiseOrder, error) {
	query := s.db.WithContext(ctx).Model(&models.AdvertiseOrder{})

	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.ContentID != uuid.Nil {
		query = query.Where("content_id = ?", q.ContentID)
	}
	if q.Phone != "" {
		query = query.Where("phone = ?", q.Phone)
	}

	if q.Sort == store.ContentSortOldest {
		query = query.Order("created_at ASC")
	} else {
		query = query.Order("created_at DESC")
	}

	var orders []models.AdvertiseOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (s *advertiseOrderStore) Update(ctx context.Context, order *models.AdvertiseOrder) error {
	res := s.db.WithContext(ctx).Save(order)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *advertiseOrderStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.AdvertiseOrder{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *advertiseOrderStore) Stats(ctx context.Context) (*models.AdvertiseOrderStats, error) {
	var rows []struct {
		Status  models.OrderStatus
		Count   int64
		Revenue float64
	}

	err := s.db.WithContext(ctx).
		Model(&models.AdvertiseOrder{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS revenue").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	stats := &models.AdvertiseOrderStats{
		ByStatus: make(map[models.OrderStatus]models.AdvertiseOrderStatusStat),
	}
	for _, row := range rows {
		stats.TotalOrders += row.Count
		stats.TotalRevenue += row.Revenue
		stats.ByStatus[row.Status] = models.AdvertiseOrderStatusStat{
			Count:        row.Count,
			TotalRevenue: row.Revenue,
		}
	}
	return stats, nil
}
