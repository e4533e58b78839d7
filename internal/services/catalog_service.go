// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// CatalogService manages the device-listing taxonomies. All of these
// are shallow records; the only rule is uniqueness on natural keys.
type CatalogService struct {
	catalog store.CatalogStore
}

func NewCatalogService(catalog store.CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

type CreateColorRequest struct {
	Name    string `json:"name" validate:"required"`
	HexCode string `json:"hexCode"`
}

type CreateDeviceModelRequest struct {
	Name           string                 `json:"name" validate:"required"`
	BrandID        string                 `json:"brandId" validate:"required"`
	ReleaseYear    int                    `json:"releaseYear"`
	Specifications map[string]interface{} `json:"specifications"`
}

type CreateSimRequest struct {
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
}

type CreateStorageRequest struct {
	RAM string `json:"ram" validate:"required"`
	ROM string `json:"rom" validate:"required"`
}

type CreateWarrantyRequest struct {
	Duration    string `json:"duration" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
}

type CreateDeviceConditionRequest struct {
	Condition   string `json:"condition" validate:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) ListColors(ctx context.Context) ([]models.Color, error) {
	colors, err := s.catalog.ListColors(ctx)
	if err != nil {
		return nil, Internal("Error fetching colors", err)
	}
	return colors, nil
}

func (s *CatalogService) CreateColor(ctx context.Context, req *CreateColorRequest) (*models.Color, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	color := &models.Color{Name: req.Name, HexCode: req.HexCode, IsActive: true}
	if err := s.catalog.CreateColor(ctx, color); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Conflict("Color already exists")
		}
		return nil, Internal("Error creating color", err)
	}
	return color, nil
}

func (s *CatalogService) ListDeviceModels(ctx context.Context) ([]models.DeviceModel, error) {
	deviceModels, err := s.catalog.ListDeviceModels(ctx)
	if err != nil {
		return nil, Internal("Error fetching device models", err)
	}
	return deviceModels, nil
}

func (s *CatalogService) CreateDeviceModel(ctx context.Context, req *CreateDeviceModelRequest) (*models.DeviceModel, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	deviceModel := &models.DeviceModel{
		Name:           req.Name,
		BrandID:        req.BrandID,
		ReleaseYear:    req.ReleaseYear,
		Specifications: models.JSONB(req.Specifications),
		IsActive:       true,
	}
	if err := s.catalog.CreateDeviceModel(ctx, deviceModel); err != nil {
		return nil, Internal("Error creating device model", err)
	}
	return deviceModel, nil
}

func (s *CatalogService) ListSims(ctx context.Context) ([]models.Sim, error) {
	sims, err := s.catalog.ListSims(ctx)
	if err != nil {
		return nil, Internal("Error fetching sim types", err)
	}
	return sims, nil
}

func (s *CatalogService) CreateSim(ctx context.Context, req *CreateSimRequest) (*models.Sim, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	sim := &models.Sim{Type: req.Type, Description: req.Description, IsActive: true}
	if err := s.catalog.CreateSim(ctx, sim); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Conflict("Sim type already exists")
		}
		return nil, Internal("Error creating sim type", err)
	}
	return sim, nil
}

func (s *CatalogService) ListStorages(ctx context.Context) ([]models.Storage, error) {
	storages, err := s.catalog.ListStorages(ctx)
	if err != nil {
		return nil, Internal("Error fetching storage options", err)
	}
	return storages, nil
}

func (s *CatalogService) CreateStorage(ctx context.Context, req *CreateStorageRequest) (*models.Storage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	storage := &models.Storage{RAM: req.RAM, ROM: req.ROM}
	if err := s.catalog.CreateStorage(ctx, storage); err != nil {
		return nil, Internal("Error creating storage option", err)
	}
	return storage, nil
}

func (s *CatalogService) ListWarranties(ctx context.Context) ([]models.Warranty, error) {
	warranties, err := s.catalog.ListWarranties(ctx)
	if err != nil {
		return nil, Internal("Error fetching warranties", err)
	}
	return warranties, nil
}

func (s *CatalogService) CreateWarranty(ctx context.Context, req *CreateWarrantyRequest) (*models.Warranty, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	warranty := &models.Warranty{
		Duration:    req.Duration,
		Type:        req.Type,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.catalog.CreateWarranty(ctx, warranty); err != nil {
		return nil, Internal("Error creating warranty", err)
	}
	return warranty, nil
}

func (s *CatalogService) ListDeviceConditions(ctx context.Context) ([]models.DeviceCondition, error) {
	conditions, err := s.catalog.ListDeviceConditions(ctx)
	if err != nil {
		return nil, Internal("Error fetching device conditions", err)
	}
	return conditions, nil
}

func (s *CatalogService) CreateDeviceCondition(ctx context.Context, req *CreateDeviceConditionRequest) (*models.DeviceCondition, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	condition := &models.DeviceCondition{
		Condition:   req.Condition,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.catalog.CreateDeviceCondition(ctx, condition); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, Conflict("Device condition already exists")
		}
		return nil, Internal("Error creating device condition", err)
	}
	return condition, nil
}
