// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/middleware"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// AuthHandler exposes registration, login, and session endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "User registered successfully", resp)
}

// RegisterAdmin handles POST /api/auth/register-admin (super admin only).
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.auth.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Admin created successfully", user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Login successful", resp)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.auth.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}

// AdminOnly handles GET /api/auth/admin-only, a probe endpoint for
// verifying admin credentials from the dashboard.
func (h *AuthHandler) AdminOnly(c *gin.Context) {
	utils.MessageResponse(c, "Welcome, admin")
}
