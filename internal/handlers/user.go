// internal/handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/middleware"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// UserHandler exposes the admin user-management endpoints.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListResponse(c, "Users retrieved successfully", len(users), users)
}

// GetByID handles GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "User updated successfully", user)
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actorID, err := actorFromContext(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.users.Delete(c.Request.Context(), id, actorID); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "User deleted successfully")
}

// UpdatePassword handles PUT /api/users/:id/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.users.UpdatePassword(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Password updated successfully")
}

func actorFromContext(c *gin.Context) (uuid.UUID, error) {
	raw, ok := middleware.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return uuid.Parse(raw)
}
