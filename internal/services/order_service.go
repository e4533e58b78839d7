// internal/services/order_service.go
package services

import (
	"context"

	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/models"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/store"
	"github.com/Shahariarshadhin/shobkisu-ecommerce-backend/internal/utils"
)

// OrderService records storefront checkout orders.
type OrderService struct {
	orders store.OrderStore
}

func NewOrderService(orders store.OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

type CreateOrderRequest struct {
	Name    string             `json:"name" validate:"required"`
	Phone   string             `json:"phone" validate:"required"`
	Address string             `json:"address" validate:"required"`
	Items   []models.OrderItem `json:"items" validate:"required,min=1"`
	Total   float64            `json:"total" validate:"required,gt=0"`
}

func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, Invalid(utils.ValidationMessage(err))
	}

	order := &models.Order{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Items:   models.OrderItems(req.Items),
		Total:   req.Total,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, Internal("Error creating order", err)
	}
	return order, nil
}
