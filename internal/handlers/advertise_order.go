// internal/handlers/advertise_order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/services"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// AdvertiseOrderHandler exposes offer order endpoints.
type AdvertiseOrderHandler struct {
	orders *services.AdvertiseOrderService
}

func NewAdvertiseOrderHandler(orders *services.AdvertiseOrderService) *AdvertiseOrderHandler {
	return &AdvertiseOrderHandler{orders: orders}
}

// Create handles POST /api/advertise-orders
func (h *AdvertiseOrderHandler) Create(c *gin.Context) {
	var req services.CreateAdvertiseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Order placed successfully", order)
}

// List handles GET /api/advertise-orders?status=&contentId=&phone=&sort=
func (h *AdvertiseOrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(
		c.Request.Context(),
		c.Query("status"),
		c.Query("contentId"),
		c.Query("phone"),
		c.Query("sort"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.ListResponse(c, "Orders retrieved successfully", len(orders), orders)
}

// Stats handles GET /api/advertise-orders/stats
func (h *AdvertiseOrderHandler) Stats(c *gin.Context) {
	stats, err := h.orders.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Order statistics retrieved successfully", stats)
}

// GetByID handles GET /api/advertise-orders/:id
func (h *AdvertiseOrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Order retrieved successfully", order)
}

// Update handles PUT /api/advertise-orders/:id
func (h *AdvertiseOrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateAdvertiseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.orders.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Order updated successfully", order)
}

// Delete handles DELETE /api/advertise-orders/:id
func (h *AdvertiseOrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Order deleted successfully")
}
