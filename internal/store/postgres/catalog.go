// internal/store/postgres/catalog.go
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
)

type catalogStore struct {
	db *gorm.DB
}

func (s *catalogStore) ListColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := s.db.WithContext(ctx).Find(&colors).Error; err != nil {
		return nil, translate(err)
	}
	return colors, nil
}

func (s *catalogStore) CreateColor(ctx context.Context, color *models.Color) error {
	return translate(s.db.WithContext(ctx).Create(color).Error)
}

func (s *catalogStore) ListDeviceModels(ctx context.Context) ([]models.DeviceModel, error) {
	var deviceModels []models.DeviceModel
	if err := s.db.WithContext(ctx).Find(&deviceModels).Error; err != nil {
		return nil, translate(err)
	}
	return deviceModels, nil
}

func (s *catalogStore) CreateDeviceModel(ctx context.Context, deviceModel *models.DeviceModel) error {
	return translate(s.db.WithContext(ctx).Create(deviceModel).Error)
}

func (s *catalogStore) ListSims(ctx context.Context) ([]models.Sim, error) {
	var sims []models.Sim
	if err := s.db.WithContext(ctx).Find(&sims).Error; err != nil {
		return nil, translate(err)
	}
	return sims, nil
}

func (s *catalogStore) CreateSim(ctx context.Context, sim *models.Sim) error {
	return translate(s.db.WithContext(ctx).Create(sim).Error)
}

func (s *catalogStore) ListStorages(ctx context.Context) ([]models.Storage, error) {
	var storages []models.Storage
	if err := s.db.WithContext(ctx).Find(&storages).Error; err != nil {
		return nil, translate(err)
	}
	return storages, nil
}

func (s *catalogStore) CreateStorage(ctx context.Context, storage *models.Storage) error {
	return translate(s.db.WithContext(ctx).Create(storage).Error)
}

func (s *catalogStore) ListWarranties(ctx context.Context) ([]models.Warranty, error) {
	var warranties []models.Warranty
	if err := s.db.WithContext(ctx).Find(&warranties).Error; err != nil {
		return nil, translate(err)
	}
	return warranties, nil
}

func (s *catalogStore) CreateWarranty(ctx context.Context, warranty *models.Warranty) error {
	return translate(s.db.WithContext(ctx).Create(warranty).Error)
}

func (s *catalogStore) ListDeviceConditions(ctx context.Context) ([]models.DeviceCondition, error) {
	var conditions []models.DeviceCondition
	if err := s.db.WithContext(ctx).Find(&conditions).Error; err != nil {
		return nil, translate(err)
	}
	return conditions, nil
}

func (s *catalogStore) CreateDeviceCondition(ctx context.Context, condition *models.DeviceCondition) error {
	return translate(s.db.WithContext(ctx).Create(condition).Error)
}
