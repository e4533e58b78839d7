// internal/handlers/advertise_content.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// AdvertiseContentHandler exposes the offer catalogue endpoints.
type AdvertiseContentHandler struct {
	contents *services.AdvertiseContentService
}

func NewAdvertiseContentHandler(contents *services.AdvertiseContentService) *AdvertiseContentHandler {
	return &AdvertiseContentHandler{contents: contents}
}

// Create handles POST /api/advertise-contents
func (h *AdvertiseContentHandler) Create(c *gin.Context) {
	var req services.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	content, err := h.contents.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Advertise content created successfully", content)
}

// List handles GET /api/advertise-contents?status=&sort=
func (h *AdvertiseContentHandler) List(c *gin.Context) {
	contents, err := h.contents.List(c.Request.Context(), c.Query("status"), c.Query("sort"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListResponse(c, "Advertise contents retrieved successfully", len(contents), contents)
}

// ActiveOffers handles GET /api/advertise-contents/active
func (h *AdvertiseContentHandler) ActiveOffers(c *gin.Context) {
	contents, err := h.contents.ActiveOffers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListResponse(c, "Active offers retrieved successfully", len(contents), contents)
}

// Search handles GET /api/advertise-contents/search?q=
func (h *AdvertiseContentHandler) Search(c *gin.Context) {
	contents, err := h.contents.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListResponse(c, "Search results retrieved successfully", len(contents), contents)
}

// GetByID handles GET /api/advertise-contents/:id
func (h *AdvertiseContentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	content, err := h.contents.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Advertise content retrieved successfully", content)
}

// GetBySlug handles GET /api/advertise-contents/slug/:slug
func (h *AdvertiseContentHandler) GetBySlug(c *gin.Context) {
	content, err := h.contents.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Advertise content retrieved successfully", content)
}

// Update handles PUT /api/advertise-contents/:id
func (h *AdvertiseContentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	content, err := h.contents.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Advertise content updated successfully", content)
}

// Delete handles DELETE /api/advertise-contents/:id
func (h *AdvertiseContentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contents.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Advertise content deleted successfully")
}
