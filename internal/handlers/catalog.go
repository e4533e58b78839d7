// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// CatalogHandler exposes the device taxonomy endpoints used by the
// product listing form.
type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListColors(c *gin.Context) {
	colors, err := h.catalog.ListColors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.ListResponse(c, "Colors retrieved successfully", len(colors), colors)
}

func (h *CatalogHandler) CreateColor(c *gin.Context) {
	var req services.CreateColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	color, err := h.catalog.CreateColor(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Color created successfully", color)
}

func (h *CatalogHandler) ListDeviceModels(c *gin.Context) {
	modelsList, err := h.catalog.ListDeviceModels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.ListResponse(c, "Models retrieved successfully", len(modelsList), modelsList)
}

func (h *CatalogHandler) CreateDeviceModel(c *gin.Context) {
	var req services.CreateDeviceModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	model, err := h.catalog.CreateDeviceModel(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Model created successfully", model)
}

func (h *CatalogHandler) ListSims(c *gin.Context) {
	sims, err := h.catalog.ListSims(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.ListResponse(c, "Sims retrieved successfully", len(sims), sims)
}

func (h *CatalogHandler) CreateSim(c *gin.Context) {
	var req services.CreateSimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	sim, err := h.catalog.CreateSim(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Sim created successfully", sim)
}

func (h *CatalogHandler) ListStorages(c *gin.Context) {
	storages, err := h.catalog.ListStorages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.ListResponse(c, "Storages retrieved successfully", len(storages), storages)
}

func (h *CatalogHandler) CreateStorage(c *gin.Context) {
	var req services.CreateStorageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	storage, err := h.catalog.CreateStorage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Storage created successfully", storage)
}

func (h *CatalogHandler) ListWarranties(c *gin.Context) {
	warranties, err := h.catalog.ListWarranties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.ListResponse(c, "Warranties retrieved successfully", len(warranties), warranties)
}

func (h *CatalogHandler) CreateWarranty(c *gin.Context) {
	var req services.CreateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	warranty, err := h.catalog.CreateWarranty(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Warranty created successfully", warranty)
}

func (h *CatalogHandler) ListDeviceConditions(c *gin.Context) {
	conditions, err := h.catalog.ListDeviceConditions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.ListResponse(c, "Conditions retrieved successfully", len(conditions), conditions)
}

func (h *CatalogHandler) CreateDeviceCondition(c *gin.Context) {
	var req services.CreateDeviceConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	condition, err := h.catalog.CreateDeviceCondition(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "Condition created successfully", condition)
}
