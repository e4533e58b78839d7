// internal/store/memory/catalog.go
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
)

type catalogStore struct {
	mtx              sync.RWMutex
	colors           []models.Color
	deviceModels     []models.DeviceModel
	sims             []models.Sim
	storages         []models.Storage
	warranties       []models.Warranty
	deviceConditions []models.DeviceCondition
}

func (s *catalogStore) ListColors(ctx context.Context) ([]models.Color, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	results := make([]models.Color, len(s.colors))
	copy(results, s.colors)
	return results, nil
}

func (s *catalogStore) CreateColor(ctx context.Context, color *models.Color) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.colors {
		if strings.EqualFold(existing.Name, color.Name) {
			return store.ErrDuplicate
		}
	}
	stamp(&color.BaseModel)
	s.colors = append(s.colors, *color)
	return nil
}

func (s *catalogStore) ListDeviceModels(ctx context.Context) ([]models.DeviceModel, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	results := make([]models.DeviceModel, len(s.deviceModels))
	copy(results, s.deviceModels)
	return results, nil
}

func (s *catalogStore) CreateDeviceModel(ctx context.Context, deviceModel *models.DeviceModel) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stamp(&deviceModel.BaseModel)
	s.deviceModels = append(s.deviceModels, *deviceModel)
	return nil
}

func (s *catalogStore) ListSims(ctx context.Context) ([]models.Sim, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	results := make([]models.Sim, len(s.sims))
	copy(results, s.sims)
	return results, nil
}

func (s *catalogStore) CreateSim(ctx context.Context, sim *models.Sim) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.sims {
		if strings.EqualFold(existing.Type, sim.Type) {
			return store.ErrDuplicate
		}
	}
	stamp(&sim.BaseModel)
	s.sims = append(s.sims, *sim)
	return nil
}

func (s *catalogStore) ListStorages(ctx context.Context) ([]models.Storage, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	results := make([]models.Storage, len(s.storages))
	copy(results, s.storages)
	return results, nil
}

func (s *catalogStore) CreateStorage(ctx context.Context, storage *models.Storage) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stamp(&storage.BaseModel)
	s.storages = append(s.storages, *storage)
	return nil
}

func (s *catalogStore) ListWarranties(ctx context.Context) ([]models.Warranty, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	results := make([]models.Warranty, len(s.warranties))
	copy(results, s.warranties)
	return results, nil
}

func (s *catalogStore) CreateWarranty(ctx context.Context, warranty *models.Warranty) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stamp(&warranty.BaseModel)
	s.warranties = append(s.warranties, *warranty)
	return nil
}

func (s *catalogStore) ListDeviceConditions(ctx context.Context) ([]models.DeviceCondition, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	results := make([]models.DeviceCondition, len(s.deviceConditions))
	copy(results, s.deviceConditions)
	return results, nil
}

func (s *catalogStore) CreateDeviceCondition(ctx context.Context, condition *models.DeviceCondition) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.deviceConditions {
		if strings.EqualFold(existing.Condition, condition.Condition) {
			return store.ErrDuplicate
		}
	}
	stamp(&condition.BaseModel)
	s.deviceConditions = append(s.deviceConditions, *condition)
	return nil
}
